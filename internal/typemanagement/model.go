package typemanagement

import "contactcenter/internal/common"

// TypeManagement 处理类型（来电、回访、外呼等处理记录的分类）
type TypeManagement struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
	common.TimestampModel
}

// TableName 指定表名
func (TypeManagement) TableName() string {
	return "type_managements"
}

// Input 处理类型入参
type Input struct {
	Name string `json:"name" form:"name"`
}
