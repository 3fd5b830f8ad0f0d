package payroll

import "contactcenter/internal/common"

// Payroll 发薪单位（客户所属的工资发放机构）
type Payroll struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
	common.TimestampModel
}

// TableName 指定表名
func (Payroll) TableName() string {
	return "payrolls"
}

// Input 发薪单位入参
type Input struct {
	Name string `json:"name" form:"name"`
}
