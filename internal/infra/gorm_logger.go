package infra

import (
	"context"
	"errors"
	"time"

	"contactcenter/internal/config"

	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"
)

// defaultSlowQueryThreshold 未配置阈值时的慢查询判定线
const defaultSlowQueryThreshold = 200 * time.Millisecond

// sqlLogger 把 GORM 日志接到 Zap 上
// 查询未命中（ErrRecordNotFound）是正常业务分支，不作为错误输出
type sqlLogger struct {
	zl            *zap.Logger
	level         gormLogger.LogLevel
	slowThreshold time.Duration
}

// newSQLLogger 按数据库配置构建 GORM 日志器
func newSQLLogger(cfg *config.DatabaseConfig, zl *zap.Logger) *sqlLogger {
	threshold := defaultSlowQueryThreshold
	if cfg.SlowQueryMs > 0 {
		threshold = time.Duration(cfg.SlowQueryMs) * time.Millisecond
	}

	return &sqlLogger{
		zl:            zl,
		level:         parseSQLLogLevel(cfg.SQLLogLevel),
		slowThreshold: threshold,
	}
}

// parseSQLLogLevel 把配置里的级别名映射为 GORM 日志级别，未识别时取 warn
func parseSQLLogLevel(level string) gormLogger.LogLevel {
	switch level {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

// LogMode 返回指定级别的日志器副本
func (l *sqlLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info 日志
func (l *sqlLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Info {
		l.zl.Sugar().Infof(msg, args...)
	}
}

// Warn 日志
func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Warn {
		l.zl.Sugar().Warnf(msg, args...)
	}
}

// Error 日志
func (l *sqlLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Error {
		l.zl.Sugar().Errorf(msg, args...)
	}
}

// Trace 输出单条 SQL 的执行情况：失败、慢查询或普通执行
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormLogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gormLogger.ErrRecordNotFound):
		if l.level >= gormLogger.Error {
			l.zl.Error("SQL 执行失败",
				zap.String("sql", sql),
				zap.Int64("rows", rows),
				zap.Duration("elapsed", elapsed),
				zap.Error(err),
			)
		}
	case elapsed >= l.slowThreshold:
		if l.level >= gormLogger.Warn {
			l.zl.Warn("SQL 慢查询",
				zap.String("sql", sql),
				zap.Int64("rows", rows),
				zap.Duration("elapsed", elapsed),
				zap.Duration("threshold", l.slowThreshold),
			)
		}
	default:
		if l.level >= gormLogger.Info {
			l.zl.Debug("SQL 执行",
				zap.String("sql", sql),
				zap.Int64("rows", rows),
				zap.Duration("elapsed", elapsed),
			)
		}
	}
}
