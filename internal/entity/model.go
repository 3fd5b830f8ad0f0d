package entity

import "contactcenter/internal/common"

// Entity 合作机构
type Entity struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Phone       string `gorm:"type:varchar(50)" json:"phone"`
	Email       string `gorm:"type:varchar(255)" json:"email"`
	NIT         string `gorm:"type:varchar(50);column:nit" json:"nit"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	common.TimestampModel
}

// TableName 指定表名
func (Entity) TableName() string {
	return "entities"
}

// Snapshot 业务字段快照，用于变更历史
func (e *Entity) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"name":        e.Name,
		"phone":       e.Phone,
		"email":       e.Email,
		"nit":         e.NIT,
		"description": e.Description,
		"is_active":   e.IsActive,
	}
}

// Input 机构创建/更新入参
type Input struct {
	Name        string `json:"name" form:"name"`
	Phone       string `json:"phone" form:"phone"`
	Email       string `json:"email" form:"email"`
	NIT         string `json:"nit" form:"nit"`
	Description string `json:"description" form:"description"`
}
