package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API 指标
var (
	// APIRequestsTotal API 请求总数
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contactcenter_api_requests_total",
			Help: "API 请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// APIRequestDuration API 请求延迟（秒）
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contactcenter_api_request_duration_seconds",
			Help:    "API 请求延迟分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// APIResponseSize API 响应体大小（字节）
	APIResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contactcenter_api_response_size_bytes",
			Help:    "API 响应体大小分布",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000},
		},
		[]string{"method", "path"},
	)
)

// 变更历史指标
var (
	// HistoryAppendsTotal 变更历史写入总数
	HistoryAppendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contactcenter_history_appends_total",
			Help: "变更历史写入总数",
		},
		[]string{"subject_type", "action", "status"}, // status: ok, error
	)
)

// 活动日志指标
var (
	// ActivityLogWritesTotal 活动日志写入总数
	ActivityLogWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contactcenter_activity_log_writes_total",
			Help: "活动日志写入总数",
		},
		[]string{"status"},
	)

	// ActivityLogPrunedTotal 活动日志清理删除总数
	ActivityLogPrunedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contactcenter_activity_log_pruned_total",
			Help: "保留策略清理的活动日志总数",
		},
	)
)

// 认证指标
var (
	// LoginAttemptsTotal 登录尝试总数
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contactcenter_login_attempts_total",
			Help: "登录尝试总数",
		},
		[]string{"status"}, // status: success, failed
	)
)

// 数据库指标
var (
	// DBConnections 数据库连接数
	DBConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "contactcenter_db_connections",
			Help: "数据库连接数",
		},
		[]string{"state"}, // state: open, in_use, idle
	)
)

// 系统指标
var (
	// BuildInfo 构建信息
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "contactcenter_build_info",
			Help: "构建信息",
		},
		[]string{"version", "go_version"},
	)
)

// RecordBuildInfo 记录构建信息
func RecordBuildInfo(version, goVersion string) {
	BuildInfo.WithLabelValues(version, goVersion).Set(1)
}
