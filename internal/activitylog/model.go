package activitylog

import "time"

// ActivityLog 操作活动日志
// 与变更历史不同：这里记录的是请求级别的操作轨迹，允许按保留策略清理
type ActivityLog struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *uint64   `gorm:"index" json:"user_id"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Module     string    `gorm:"type:varchar(50);index" json:"module"`
	Path       string    `gorm:"type:varchar(255)" json:"path"`
	Method     string    `gorm:"type:varchar(10)" json:"method"`
	StatusCode int       `json:"status_code"`
	IPAddress  string    `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent  string    `gorm:"type:varchar(500)" json:"user_agent"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

// TableName 指定表名
func (ActivityLog) TableName() string {
	return "activity_logs"
}
