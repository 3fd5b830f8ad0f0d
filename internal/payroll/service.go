package payroll

import (
	"context"
	"errors"
	"strings"

	"contactcenter/internal/common"

	"gorm.io/gorm"
)

// DefaultPageSize 发薪单位列表默认每页数量
const DefaultPageSize = 10

// Service 发薪单位服务
// 配置型数据，不纳入变更历史
type Service struct {
	*common.BaseService
}

// NewService 创建发薪单位服务
func NewService(db *gorm.DB) *Service {
	return &Service{BaseService: common.NewBaseService(db)}
}

// List 分页查询发薪单位
func (s *Service) List(ctx context.Context, page, pageSize int) ([]*Payroll, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&Payroll{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*Payroll, 0)
	err := s.ApplyPagination(query.Order("name ASC"), page, pageSize).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListActive 查询启用的发薪单位
func (s *Service) ListActive(ctx context.Context) ([]*Payroll, error) {
	items := make([]*Payroll, 0)
	err := s.GetDBWithContext(ctx).
		Scopes(common.Active()).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// CountAll 统计发薪单位总数
func (s *Service) CountAll(ctx context.Context) (int64, error) {
	return s.Count(ctx, &Payroll{}, "")
}

// Get 根据ID查询发薪单位
func (s *Service) Get(ctx context.Context, id uint64) (*Payroll, error) {
	var p Payroll
	if err := s.FindByID(ctx, &p, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create 创建发薪单位
func (s *Service) Create(ctx context.Context, input Input) (*Payroll, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p := &Payroll{
		Name:     strings.TrimSpace(input.Name),
		IsActive: true,
	}
	if err := s.BaseService.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update 更新发薪单位
func (s *Service) Update(ctx context.Context, id uint64, input Input) (*Payroll, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p.Name = strings.TrimSpace(input.Name)
	if err := s.BaseService.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Toggle 切换发薪单位启用状态
// 被处理记录引用，不做物理删除
func (s *Service) Toggle(ctx context.Context, id uint64) (*Payroll, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.IsActive = !p.IsActive
	if err := s.BaseService.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// validateInput 校验发薪单位入参
func validateInput(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		ve := common.NewValidationError()
		ve.Add("name", "名称不能为空")
		return ve
	}
	return nil
}
