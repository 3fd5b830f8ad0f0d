package metrics

import (
	"database/sql"
	"time"
)

// dbStatsInterval 连接池指标采样间隔
const dbStatsInterval = 15 * time.Second

// DBStatsCollector 数据库连接池指标采集器
type DBStatsCollector struct {
	db *sql.DB
}

// NewDBStatsCollector 创建采集器并启动后台采样
func NewDBStatsCollector(db *sql.DB) *DBStatsCollector {
	c := &DBStatsCollector{db: db}
	go c.run()
	return c
}

// run 周期采样连接池状态
func (c *DBStatsCollector) run() {
	ticker := time.NewTicker(dbStatsInterval)
	defer ticker.Stop()

	for range ticker.C {
		recordDBStats(c.db.Stats())
	}
}

// recordDBStats 把连接池状态写入指标
func recordDBStats(stats sql.DBStats) {
	DBConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	DBConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	DBConnections.WithLabelValues("idle").Set(float64(stats.Idle))
}
