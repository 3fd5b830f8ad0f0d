package tasks

// Task Types
const (
	TypePruneActivityLogs = "retention:prune_activity_logs"
)

// PruneActivityLogsPayload 活动日志清理任务载荷
type PruneActivityLogsPayload struct {
	RetentionDays int `json:"retention_days"`
}
