package typemanagement

import (
	"context"
	"errors"
	"strings"

	"contactcenter/internal/common"

	"gorm.io/gorm"
)

// DefaultPageSize 处理类型列表默认每页数量
const DefaultPageSize = 10

// Service 处理类型服务
// 配置型数据，不纳入变更历史
type Service struct {
	*common.BaseService
}

// NewService 创建处理类型服务
func NewService(db *gorm.DB) *Service {
	return &Service{BaseService: common.NewBaseService(db)}
}

// List 分页查询处理类型
func (s *Service) List(ctx context.Context, page, pageSize int) ([]*TypeManagement, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&TypeManagement{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*TypeManagement, 0)
	err := s.ApplyPagination(query.Order("name ASC"), page, pageSize).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListActive 查询启用的处理类型
func (s *Service) ListActive(ctx context.Context) ([]*TypeManagement, error) {
	items := make([]*TypeManagement, 0)
	err := s.GetDBWithContext(ctx).
		Scopes(common.Active()).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// CountAll 统计处理类型总数
func (s *Service) CountAll(ctx context.Context) (int64, error) {
	return s.Count(ctx, &TypeManagement{}, "")
}

// Get 根据ID查询处理类型
func (s *Service) Get(ctx context.Context, id uint64) (*TypeManagement, error) {
	var tm TypeManagement
	if err := s.FindByID(ctx, &tm, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &tm, nil
}

// Create 创建处理类型
func (s *Service) Create(ctx context.Context, input Input) (*TypeManagement, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tm := &TypeManagement{
		Name:     strings.TrimSpace(input.Name),
		IsActive: true,
	}
	if err := s.BaseService.Create(ctx, tm); err != nil {
		return nil, err
	}
	return tm, nil
}

// Update 更新处理类型
func (s *Service) Update(ctx context.Context, id uint64, input Input) (*TypeManagement, error) {
	tm, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tm.Name = strings.TrimSpace(input.Name)
	if err := s.BaseService.Update(ctx, tm); err != nil {
		return nil, err
	}
	return tm, nil
}

// Toggle 切换处理类型启用状态
func (s *Service) Toggle(ctx context.Context, id uint64) (*TypeManagement, error) {
	tm, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tm.IsActive = !tm.IsActive
	if err := s.BaseService.Update(ctx, tm); err != nil {
		return nil, err
	}
	return tm, nil
}

// validateInput 校验处理类型入参
func validateInput(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		ve := common.NewValidationError()
		ve.Add("name", "名称不能为空")
		return ve
	}
	return nil
}
