package consultation

import (
	"context"
	"errors"
	"strings"

	"contactcenter/internal/common"

	"gorm.io/gorm"
)

// DefaultPageSize 咨询配置列表默认每页数量
const DefaultPageSize = 10

// Service 咨询分类服务（大类 + 细项）
// 配置型数据，不纳入变更历史
type Service struct {
	*common.BaseService
}

// NewService 创建咨询分类服务
func NewService(db *gorm.DB) *Service {
	return &Service{BaseService: common.NewBaseService(db)}
}

// ============================================================================
// 咨询大类
// ============================================================================

// ListConsultations 分页查询咨询大类
func (s *Service) ListConsultations(ctx context.Context, page, pageSize int) ([]*Consultation, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&Consultation{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*Consultation, 0)
	err := s.ApplyPagination(query.Order("name ASC"), page, pageSize).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListActiveConsultations 查询启用的咨询大类，带各自启用的细项
func (s *Service) ListActiveConsultations(ctx context.Context) ([]*Consultation, error) {
	items := make([]*Consultation, 0)
	err := s.GetDBWithContext(ctx).
		Scopes(common.Active()).
		Preload("Specifics", "is_active = ?", true).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// GetConsultation 根据ID查询咨询大类
func (s *Service) GetConsultation(ctx context.Context, id uint64) (*Consultation, error) {
	var c Consultation
	if err := s.FindByID(ctx, &c, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// CreateConsultation 创建咨询大类
func (s *Service) CreateConsultation(ctx context.Context, input ConsultationInput) (*Consultation, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	c := &Consultation{
		Name:     strings.TrimSpace(input.Name),
		IsActive: true,
	}
	if err := s.BaseService.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateConsultation 更新咨询大类
func (s *Service) UpdateConsultation(ctx context.Context, id uint64, input ConsultationInput) (*Consultation, error) {
	c, err := s.GetConsultation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	c.Name = strings.TrimSpace(input.Name)
	if err := s.BaseService.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ToggleConsultation 切换咨询大类启用状态
func (s *Service) ToggleConsultation(ctx context.Context, id uint64) (*Consultation, error) {
	c, err := s.GetConsultation(ctx, id)
	if err != nil {
		return nil, err
	}

	c.IsActive = !c.IsActive
	if err := s.BaseService.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ============================================================================
// 咨询细项
// ============================================================================

// ListSpecifics 分页查询咨询细项，可按大类过滤
func (s *Service) ListSpecifics(ctx context.Context, consultationID uint64, page, pageSize int) ([]*Specific, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&Specific{})
	if consultationID > 0 {
		query = query.Where("consultation_id = ?", consultationID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*Specific, 0)
	err := s.ApplyPagination(query.Order("name ASC"), page, pageSize).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListActiveSpecifics 查询启用的咨询细项，可按大类过滤
func (s *Service) ListActiveSpecifics(ctx context.Context, consultationID uint64) ([]*Specific, error) {
	query := s.GetDBWithContext(ctx).Scopes(common.Active())
	if consultationID > 0 {
		query = query.Where("consultation_id = ?", consultationID)
	}

	items := make([]*Specific, 0)
	err := query.Order("name ASC").Find(&items).Error
	return items, err
}

// GetSpecific 根据ID查询咨询细项
func (s *Service) GetSpecific(ctx context.Context, id uint64) (*Specific, error) {
	var sp Specific
	if err := s.FindByID(ctx, &sp, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &sp, nil
}

// CreateSpecific 创建咨询细项，必须挂在已存在的大类下
func (s *Service) CreateSpecific(ctx context.Context, input SpecificInput) (*Specific, error) {
	if err := validateSpecificInput(input); err != nil {
		return nil, err
	}

	// 大类必须存在
	if _, err := s.GetConsultation(ctx, input.ConsultationID); err != nil {
		return nil, err
	}

	sp := &Specific{
		Name:           strings.TrimSpace(input.Name),
		ConsultationID: input.ConsultationID,
		IsActive:       true,
	}
	if err := s.BaseService.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// UpdateSpecific 更新咨询细项
func (s *Service) UpdateSpecific(ctx context.Context, id uint64, input SpecificInput) (*Specific, error) {
	sp, err := s.GetSpecific(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateSpecificInput(input); err != nil {
		return nil, err
	}
	if input.ConsultationID != sp.ConsultationID {
		if _, err := s.GetConsultation(ctx, input.ConsultationID); err != nil {
			return nil, err
		}
	}

	sp.Name = strings.TrimSpace(input.Name)
	sp.ConsultationID = input.ConsultationID
	if err := s.BaseService.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// ToggleSpecific 切换咨询细项启用状态
func (s *Service) ToggleSpecific(ctx context.Context, id uint64) (*Specific, error) {
	sp, err := s.GetSpecific(ctx, id)
	if err != nil {
		return nil, err
	}

	sp.IsActive = !sp.IsActive
	if err := s.BaseService.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// validateName 校验名称
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		ve := common.NewValidationError()
		ve.Add("name", "名称不能为空")
		return ve
	}
	return nil
}

// validateSpecificInput 校验咨询细项入参
func validateSpecificInput(input SpecificInput) error {
	ve := common.NewValidationError()

	if strings.TrimSpace(input.Name) == "" {
		ve.Add("name", "名称不能为空")
	}
	if input.ConsultationID == 0 {
		ve.Add("consultation_id", "咨询大类不能为空")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
