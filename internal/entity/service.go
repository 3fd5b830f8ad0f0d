package entity

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"contactcenter/internal/common"
	"contactcenter/internal/history"

	"gorm.io/gorm"
)

// DefaultPageSize 机构列表默认每页数量
const DefaultPageSize = 10

// 机构列表的搜索字段
var searchFields = []string{"name", "phone", "email", "nit", "description"}

var (
	phonePattern = regexp.MustCompile(`^[0-9]+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ListResult 机构分页查询结果
// 统计口径是整张表，与当前页和搜索条件无关
type ListResult struct {
	Entities       []*Entity
	Total          int64
	CountActives   int64
	CountInactives int64
}

// Service 机构服务
type Service struct {
	*common.BaseService
	recorder *history.Recorder
}

// NewService 创建机构服务
func NewService(db *gorm.DB, recorder *history.Recorder) *Service {
	return &Service{
		BaseService: common.NewBaseService(db),
		recorder:    recorder,
	}
}

// List 分页查询机构
// search 对 name/phone/email/nit/description 做不区分大小写的子串匹配
func (s *Service) List(ctx context.Context, search string, page, pageSize int) (*ListResult, error) {
	if page < 1 || pageSize < 1 {
		return nil, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&Entity{})
	query = s.ApplyKeywordSearch(query, search, searchFields)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	entities := make([]*Entity, 0)
	err := s.ApplyPagination(query.Order("id DESC"), page, pageSize).Find(&entities).Error
	if err != nil {
		return nil, err
	}

	// 全表启用/停用统计，不受搜索与分页影响
	countActives, err := s.Count(ctx, &Entity{}, "is_active = ?", true)
	if err != nil {
		return nil, err
	}
	countInactives, err := s.Count(ctx, &Entity{}, "is_active = ?", false)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Entities:       entities,
		Total:          total,
		CountActives:   countActives,
		CountInactives: countInactives,
	}, nil
}

// ListActive 查询全部启用状态的机构（不分页）
func (s *Service) ListActive(ctx context.Context) ([]*Entity, error) {
	entities := make([]*Entity, 0)
	err := s.GetDBWithContext(ctx).
		Scopes(common.Active()).
		Order("name ASC").
		Find(&entities).Error
	return entities, err
}

// Get 根据ID查询机构
func (s *Service) Get(ctx context.Context, id uint64) (*Entity, error) {
	var e Entity
	if err := s.FindByID(ctx, &e, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Create 创建机构并记录变更历史
func (s *Service) Create(ctx context.Context, input Input, meta history.Meta) (*Entity, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	e := &Entity{
		Name:        strings.TrimSpace(input.Name),
		Phone:       input.Phone,
		Email:       input.Email,
		NIT:         input.NIT,
		Description: input.Description,
		IsActive:    true,
	}

	if err := s.BaseService.Create(ctx, e); err != nil {
		return nil, err
	}

	s.recorder.OnCreated(ctx, history.SubjectEntity, e.ID, e.Snapshot(), meta)
	return e, nil
}

// Update 更新机构并记录变更历史
func (s *Service) Update(ctx context.Context, id uint64, input Input, meta history.Meta) (*Entity, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	before := e.Snapshot()

	e.Name = strings.TrimSpace(input.Name)
	e.Phone = input.Phone
	e.Email = input.Email
	e.NIT = input.NIT
	e.Description = input.Description

	if err := s.BaseService.Update(ctx, e); err != nil {
		return nil, err
	}

	s.recorder.OnUpdated(ctx, history.SubjectEntity, e.ID, before, e.Snapshot(), meta)
	return e, nil
}

// ToggleActive 切换机构启用状态并记录变更历史
// 机构不存在物理删除，停用即下线
func (s *Service) ToggleActive(ctx context.Context, id uint64, meta history.Meta) (*Entity, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	before := e.Snapshot()
	e.IsActive = !e.IsActive

	if err := s.BaseService.Update(ctx, e); err != nil {
		return nil, err
	}

	s.recorder.OnUpdated(ctx, history.SubjectEntity, e.ID, before, e.Snapshot(), meta)
	return e, nil
}

// validateInput 校验机构入参
func validateInput(input Input) error {
	ve := common.NewValidationError()

	if strings.TrimSpace(input.Name) == "" {
		ve.Add("name", "名称不能为空")
	}
	if input.Phone != "" && !phonePattern.MatchString(input.Phone) {
		ve.Add("phone", "电话必须为纯数字")
	}
	if input.Email != "" && !emailPattern.MatchString(input.Email) {
		ve.Add("email", "邮箱格式不正确")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
