package management

import (
	"time"

	"contactcenter/internal/common"
)

// Management 客服处理记录（一次客户交互的完整处置）
type Management struct {
	ID               uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint64     `gorm:"not null;index" json:"user_id"`
	ContactID        uint64     `gorm:"not null;index" json:"contact_id"`
	PayrollID        *uint64    `gorm:"index" json:"payroll_id"`
	ConsultationID   *uint64    `gorm:"index" json:"consultation_id"`
	SpecificID       *uint64    `gorm:"index" json:"specific_id"`
	TypeManagementID *uint64    `json:"type_management_id"`
	MonitoringID     *uint64    `json:"monitoring_id"`
	Solution         string     `gorm:"type:text" json:"solution"`
	Comments         string     `gorm:"type:text" json:"comments"`
	SolutionDate     *time.Time `json:"solution_date"`
	SMS              bool       `gorm:"not null;default:false" json:"sms"`
	WSP              bool       `gorm:"not null;default:false;column:wsp" json:"wsp"`
	WolkvoxID        string     `gorm:"type:varchar(100);column:wolkvox_id" json:"wolkvox_id"`
	common.TimestampModel
}

// TableName 指定表名
func (Management) TableName() string {
	return "managements"
}

// Snapshot 业务字段快照，用于变更历史
func (m *Management) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"user_id":            m.UserID,
		"contact_id":         m.ContactID,
		"payroll_id":         m.PayrollID,
		"consultation_id":    m.ConsultationID,
		"specific_id":        m.SpecificID,
		"type_management_id": m.TypeManagementID,
		"monitoring_id":      m.MonitoringID,
		"solution":           m.Solution,
		"comments":           m.Comments,
		"solution_date":      m.SolutionDate,
		"sms":                m.SMS,
		"wsp":                m.WSP,
		"wolkvox_id":         m.WolkvoxID,
	}
}

// Input 处理记录创建/更新入参
type Input struct {
	UserID           uint64     `json:"user_id" form:"user_id"`
	ContactID        uint64     `json:"contact_id" form:"contact_id"`
	PayrollID        *uint64    `json:"payroll_id" form:"payroll_id"`
	ConsultationID   *uint64    `json:"consultation_id" form:"consultation_id"`
	SpecificID       *uint64    `json:"specific_id" form:"specific_id"`
	TypeManagementID *uint64    `json:"type_management_id" form:"type_management_id"`
	MonitoringID     *uint64    `json:"monitoring_id" form:"monitoring_id"`
	Solution         string     `json:"solution" form:"solution"`
	Comments         string     `json:"comments" form:"comments"`
	SolutionDate     *time.Time `json:"solution_date" form:"solution_date"`
	SMS              bool       `json:"sms" form:"sms"`
	WSP              bool       `json:"wsp" form:"wsp"`
	WolkvoxID        string     `json:"wolkvox_id" form:"wolkvox_id"`
}
