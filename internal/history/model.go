package history

import (
	"time"

	"gorm.io/datatypes"
)

// 变更动作
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeHistory 变更历史记录
// 追加账本：只允许插入，服务层不提供更新或删除操作
type ChangeHistory struct {
	ID          uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	SubjectType string            `gorm:"type:varchar(50);not null;index:idx_change_histories_subject" json:"subject_type"`
	SubjectID   uint64            `gorm:"not null;index:idx_change_histories_subject" json:"subject_id"`
	Action      string            `gorm:"type:varchar(20);not null" json:"action"`
	OldValues   datatypes.JSONMap `gorm:"type:jsonb" json:"old_values"`
	NewValues   datatypes.JSONMap `gorm:"type:jsonb" json:"new_values"`
	ActorID     *uint64           `gorm:"index" json:"user_id"`
	IPAddress   string            `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent   string            `gorm:"type:varchar(500)" json:"user_agent"`
	CreatedAt   time.Time         `gorm:"not null;autoCreateTime;index:idx_change_histories_created_at" json:"created_at"`
}

// TableName 指定表名
func (ChangeHistory) TableName() string {
	return "change_histories"
}
