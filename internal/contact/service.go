package contact

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"contactcenter/internal/common"
	"contactcenter/internal/history"

	"gorm.io/gorm"
)

// DefaultPageSize 联系人列表默认每页数量
const DefaultPageSize = 10

var searchFields = []string{"name", "document", "phone", "email"}

var (
	phonePattern = regexp.MustCompile(`^[0-9]+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Service 联系人服务
type Service struct {
	*common.BaseService
	recorder *history.Recorder
}

// NewService 创建联系人服务
func NewService(db *gorm.DB, recorder *history.Recorder) *Service {
	return &Service{
		BaseService: common.NewBaseService(db),
		recorder:    recorder,
	}
}

// List 分页查询联系人
func (s *Service) List(ctx context.Context, search string, page, pageSize int) ([]*Contact, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&Contact{})
	query = s.ApplyKeywordSearch(query, search, searchFields)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	contacts := make([]*Contact, 0)
	err := s.ApplyPagination(query.Order("id DESC"), page, pageSize).Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// ListActive 查询全部启用状态的联系人
func (s *Service) ListActive(ctx context.Context) ([]*Contact, error) {
	contacts := make([]*Contact, 0)
	err := s.GetDBWithContext(ctx).
		Scopes(common.Active()).
		Order("name ASC").
		Find(&contacts).Error
	return contacts, err
}

// CountAll 统计联系人总数
func (s *Service) CountAll(ctx context.Context) (int64, error) {
	return s.Count(ctx, &Contact{}, "")
}

// Get 根据ID查询联系人
func (s *Service) Get(ctx context.Context, id uint64) (*Contact, error) {
	var c Contact
	if err := s.FindByID(ctx, &c, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create 创建联系人并记录变更历史
func (s *Service) Create(ctx context.Context, input Input, meta history.Meta) (*Contact, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	c := &Contact{
		Name:        strings.TrimSpace(input.Name),
		Document:    input.Document,
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     input.Address,
		PayrollName: input.PayrollName,
		IsActive:    true,
	}

	if err := s.BaseService.Create(ctx, c); err != nil {
		return nil, err
	}

	s.recorder.OnCreated(ctx, history.SubjectContact, c.ID, c.Snapshot(), meta)
	return c, nil
}

// Update 更新联系人并记录变更历史
func (s *Service) Update(ctx context.Context, id uint64, input Input, meta history.Meta) (*Contact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	before := c.Snapshot()

	c.Name = strings.TrimSpace(input.Name)
	c.Document = input.Document
	c.Phone = input.Phone
	c.Email = input.Email
	c.Address = input.Address
	c.PayrollName = input.PayrollName

	if err := s.BaseService.Update(ctx, c); err != nil {
		return nil, err
	}

	s.recorder.OnUpdated(ctx, history.SubjectContact, c.ID, before, c.Snapshot(), meta)
	return c, nil
}

// ToggleActive 切换联系人启用状态并记录变更历史
func (s *Service) ToggleActive(ctx context.Context, id uint64, meta history.Meta) (*Contact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	before := c.Snapshot()
	c.IsActive = !c.IsActive

	if err := s.BaseService.Update(ctx, c); err != nil {
		return nil, err
	}

	s.recorder.OnUpdated(ctx, history.SubjectContact, c.ID, before, c.Snapshot(), meta)
	return c, nil
}

// validateInput 校验联系人入参
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
