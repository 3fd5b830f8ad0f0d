package monitoring

import (
	"context"
	"errors"
	"strings"

	"contactcenter/internal/common"

	"gorm.io/gorm"
)

// DefaultPageSize 质检项列表默认每页数量
const DefaultPageSize = 10

// Service 质检项服务
// 配置型数据，不纳入变更历史
type Service struct {
	*common.BaseService
}

// NewService 创建质检项服务
func NewService(db *gorm.DB) *Service {
	return &Service{BaseService: common.NewBaseService(db)}
}

// List 分页查询质检项
func (s *Service) List(ctx context.Context, page, pageSize int) ([]*Monitoring, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&Monitoring{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*Monitoring, 0)
	err := s.ApplyPagination(query.Order("name ASC"), page, pageSize).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListActive 查询启用的质检项
func (s *Service) ListActive(ctx context.Context) ([]*Monitoring, error) {
	items := make([]*Monitoring, 0)
	err := s.GetDBWithContext(ctx).
		Scopes(common.Active()).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// Get 根据ID查询质检项
func (s *Service) Get(ctx context.Context, id uint64) (*Monitoring, error) {
	var m Monitoring
	if err := s.FindByID(ctx, &m, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create 创建质检项
func (s *Service) Create(ctx context.Context, input Input) (*Monitoring, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	m := &Monitoring{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		IsActive:    true,
	}
	if err := s.BaseService.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update 更新质检项
func (s *Service) Update(ctx context.Context, id uint64, input Input) (*Monitoring, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	m.Name = strings.TrimSpace(input.Name)
	m.Description = strings.TrimSpace(input.Description)
	if err := s.BaseService.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Toggle 切换质检项启用状态
// 被处理记录引用，不做物理删除
func (s *Service) Toggle(ctx context.Context, id uint64) (*Monitoring, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	m.IsActive = !m.IsActive
	if err := s.BaseService.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// validateInput 校验质检项入参
func validateInput(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		ve := common.NewValidationError()
		ve.Add("name", "名称不能为空")
		return ve
	}
	return nil
}
