package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/common"
)

// RateLimiterConfig 限流配置
type RateLimiterConfig struct {
	// Rate 每秒允许的请求数
	Rate float64
	// Burst 突发容量
	Burst int
	// CleanupInterval 空闲客户端清理间隔
	CleanupInterval time.Duration
	// ClientTTL 客户端状态保留时长
	ClientTTL time.Duration
}

// DefaultRateLimiterConfig 默认限流配置
// 登录接口用：每秒 1 次，突发 5 次
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Rate:            1,
		Burst:           5,
		CleanupInterval: 5 * time.Minute,
		ClientTTL:       10 * time.Minute,
	}
}

// clientState 单个客户端的令牌桶状态
type clientState struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter 基于令牌桶的内存限流器
// 按客户端 IP 维护独立的令牌桶
type RateLimiter struct {
	config  RateLimiterConfig
	mu      sync.Mutex
	clients map[string]*clientState
	stop    chan struct{}
}

// NewRateLimiter 创建限流器并启动后台清理
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:  config,
		clients: make(map[string]*clientState),
		stop:    make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow 判断该客户端当前是否放行
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	state, ok := rl.clients[key]
	if !ok {
		state = &clientState{tokens: float64(rl.config.Burst)}
		rl.clients[key] = state
	} else {
		// 按流逝时间补充令牌，封顶突发容量
		elapsed := now.Sub(state.lastSeen).Seconds()
		state.tokens += elapsed * rl.config.Rate
		if state.tokens > float64(rl.config.Burst) {
			state.tokens = float64(rl.config.Burst)
		}
	}
	state.lastSeen = now

	if state.tokens < 1 {
		return false
	}
	state.tokens--
	return true
}

// cleanupLoop 定期清理长时间未访问的客户端状态
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

// cleanup 移除过期的客户端状态
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.config.ClientTTL)
	for key, state := range rl.clients {
		if state.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// Stop 停止后台清理
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// ClientCount 当前跟踪的客户端数
func (rl *RateLimiter) ClientCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// RateLimitMiddleware 限流中间件
// 超出限额返回 429
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    common.CodeInvalidRequest,
				"message": "请求过于频繁，请稍后再试",
			})
			return
		}
		c.Next()
	}
}
