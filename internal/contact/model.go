package contact

import "contactcenter/internal/common"

// Contact 客户联系人
type Contact struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Document    string `gorm:"type:varchar(50);index" json:"document"`
	Phone       string `gorm:"type:varchar(50)" json:"phone"`
	Email       string `gorm:"type:varchar(255)" json:"email"`
	Address     string `gorm:"type:varchar(255)" json:"address"`
	PayrollName string `gorm:"type:varchar(255)" json:"payroll_name"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	common.TimestampModel
}

// TableName 指定表名
func (Contact) TableName() string {
	return "contacts"
}

// Snapshot 业务字段快照，用于变更历史
func (c *Contact) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"name":         c.Name,
		"document":     c.Document,
		"phone":        c.Phone,
		"email":        c.Email,
		"address":      c.Address,
		"payroll_name": c.PayrollName,
		"is_active":    c.IsActive,
	}
}

// Input 联系人创建/更新入参
type Input struct {
	Name        string `json:"name" form:"name"`
	Document    string `json:"document" form:"document"`
	Phone       string `json:"phone" form:"phone"`
	Email       string `json:"email" form:"email"`
	Address     string `json:"address" form:"address"`
	PayrollName string `json:"payroll_name" form:"payroll_name"`
}
