package monitoring

import "contactcenter/internal/common"

// Monitoring 质检项（处理记录关联的质检/跟进结果）
type Monitoring struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	common.TimestampModel
}

// TableName 指定表名
func (Monitoring) TableName() string {
	return "monitorings"
}

// Input 质检项入参
type Input struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}
