package infra

import (
	"context"
	"testing"
	"time"

	"contactcenter/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormLogger "gorm.io/gorm/logger"
)

// newObservedSQLLogger 创建带日志捕获的 SQL 日志器
func newObservedSQLLogger(cfg *config.DatabaseConfig) (*sqlLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return newSQLLogger(cfg, zap.New(core)), logs
}

// TestParseSQLLogLevel 测试配置级别名的映射
func TestParseSQLLogLevel(t *testing.T) {
	assert.Equal(t, gormLogger.Silent, parseSQLLogLevel("silent"))
	assert.Equal(t, gormLogger.Error, parseSQLLogLevel("error"))
	assert.Equal(t, gormLogger.Warn, parseSQLLogLevel("warn"))
	assert.Equal(t, gormLogger.Info, parseSQLLogLevel("info"))
	// 未识别的值回落到 warn
	assert.Equal(t, gormLogger.Warn, parseSQLLogLevel(""))
	assert.Equal(t, gormLogger.Warn, parseSQLLogLevel("verbose"))
}

// TestSQLLoggerSlowQueryThreshold 测试慢查询阈值取自配置
func TestSQLLoggerSlowQueryThreshold(t *testing.T) {
	l, logs := newObservedSQLLogger(&config.DatabaseConfig{SlowQueryMs: 100})
	assert.Equal(t, 100*time.Millisecond, l.slowThreshold)

	// 超过阈值的查询输出 Warn
	l.Trace(context.Background(), time.Now().Add(-300*time.Millisecond), func() (string, int64) {
		return "SELECT * FROM contacts", 10
	}, nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, "SQL 慢查询", entries[0].Message)

	// 未配置时使用默认阈值
	fallback := newSQLLogger(&config.DatabaseConfig{}, zap.NewNop())
	assert.Equal(t, defaultSlowQueryThreshold, fallback.slowThreshold)
}

// TestSQLLoggerErrorOutput 测试执行失败输出错误日志
func TestSQLLoggerErrorOutput(t *testing.T) {
	l, logs := newObservedSQLLogger(&config.DatabaseConfig{SlowQueryMs: 1000})

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO contacts", 0
	}, assert.AnError)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.Equal(t, "SQL 执行失败", entries[0].Message)
}

// TestSQLLoggerIgnoresRecordNotFound 测试查询未命中不输出错误
func TestSQLLoggerIgnoresRecordNotFound(t *testing.T) {
	l, logs := newObservedSQLLogger(&config.DatabaseConfig{SlowQueryMs: 1000})

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM contacts WHERE id = 404", 0
	}, gormLogger.ErrRecordNotFound)

	assert.Empty(t, logs.All())
}

// TestSQLLoggerSilent 测试静默级别不输出任何日志
func TestSQLLoggerSilent(t *testing.T) {
	l, logs := newObservedSQLLogger(&config.DatabaseConfig{SQLLogLevel: "silent"})

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, assert.AnError)

	assert.Empty(t, logs.All())
}
