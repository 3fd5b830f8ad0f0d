package consultation

import "contactcenter/internal/common"

// Consultation 咨询大类
type Consultation struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
	common.TimestampModel

	Specifics []Specific `gorm:"foreignKey:ConsultationID" json:"specifics,omitempty"`
}

// TableName 指定表名
func (Consultation) TableName() string {
	return "consultations"
}

// Specific 咨询细项，挂在某个咨询大类下
type Specific struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	ConsultationID uint64 `gorm:"not null;index" json:"consultation_id"`
	IsActive       bool   `gorm:"not null;default:true" json:"is_active"`
	common.TimestampModel
}

// TableName 指定表名
func (Specific) TableName() string {
	return "specifics"
}

// ConsultationInput 咨询大类入参
type ConsultationInput struct {
	Name string `json:"name" form:"name"`
}

// SpecificInput 咨询细项入参
type SpecificInput struct {
	Name           string `json:"name" form:"name"`
	ConsultationID uint64 `json:"consultation_id" form:"consultation_id"`
}
