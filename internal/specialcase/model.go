package specialcase

import "contactcenter/internal/common"

// 特殊案件状态
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

// SpecialCase 特殊案件（需要跟进处理的升级工单）
type SpecialCase struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ContactID    uint64  `gorm:"not null;index" json:"contact_id"`
	ManagementID *uint64 `gorm:"index" json:"management_id"`
	Reason       string  `gorm:"type:varchar(255);not null" json:"reason"`
	Status       string  `gorm:"type:varchar(20);not null;default:open" json:"status"`
	Comments     string  `gorm:"type:text" json:"comments"`
	common.TimestampModel
}

// TableName 指定表名
func (SpecialCase) TableName() string {
	return "special_cases"
}

// Snapshot 业务字段快照，用于变更历史
func (sc *SpecialCase) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"contact_id":    sc.ContactID,
		"management_id": sc.ManagementID,
		"reason":        sc.Reason,
		"status":        sc.Status,
		"comments":      sc.Comments,
	}
}

// Input 特殊案件创建/更新入参
type Input struct {
	ContactID    uint64  `json:"contact_id" form:"contact_id"`
	ManagementID *uint64 `json:"management_id" form:"management_id"`
	Reason       string  `json:"reason" form:"reason"`
	Status       string  `json:"status" form:"status"`
	Comments     string  `json:"comments" form:"comments"`
}
