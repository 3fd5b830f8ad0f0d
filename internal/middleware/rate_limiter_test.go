package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{
		Rate:            1,
		Burst:           3,
		CleanupInterval: time.Minute,
		ClientTTL:       time.Minute,
	})
	defer limiter.Stop()

	// 突发容量内放行
	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d should pass", i)
	}

	// 超出突发容量拒绝
	assert.False(t, limiter.Allow("10.0.0.1"))

	// 不同客户端互不影响
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{
		Rate:            1,
		Burst:           1,
		CleanupInterval: time.Hour,
		ClientTTL:       time.Millisecond,
	})
	defer limiter.Stop()

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.2")
	assert.Equal(t, 2, limiter.ClientCount())

	time.Sleep(5 * time.Millisecond)
	limiter.cleanup()
	assert.Zero(t, limiter.ClientCount())
}
