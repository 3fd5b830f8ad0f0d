package specialcase

import (
	"context"
	"errors"
	"strings"

	"contactcenter/internal/common"
	"contactcenter/internal/history"

	"gorm.io/gorm"
)

// DefaultPageSize 特殊案件列表默认每页数量
const DefaultPageSize = 10

var validStatuses = map[string]struct{}{
	StatusOpen:       {},
	StatusInProgress: {},
	StatusClosed:     {},
}

// Service 特殊案件服务
type Service struct {
	*common.BaseService
	recorder *history.Recorder
}

// NewService 创建特殊案件服务
func NewService(db *gorm.DB, recorder *history.Recorder) *Service {
	return &Service{
		BaseService: common.NewBaseService(db),
		recorder:    recorder,
	}
}

// List 分页查询特殊案件，可按状态过滤
func (s *Service) List(ctx context.Context, status string, page, pageSize int) ([]*SpecialCase, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&SpecialCase{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	cases := make([]*SpecialCase, 0)
	err := s.ApplyPagination(query.Order("id DESC"), page, pageSize).Find(&cases).Error
	if err != nil {
		return nil, 0, err
	}
	return cases, total, nil
}

// CountAll 统计特殊案件总数
func (s *Service) CountAll(ctx context.Context) (int64, error) {
	return s.Count(ctx, &SpecialCase{}, "")
}

// Get 根据ID查询特殊案件
func (s *Service) Get(ctx context.Context, id uint64) (*SpecialCase, error) {
	var sc SpecialCase
	if err := s.FindByID(ctx, &sc, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &sc, nil
}

// Create 创建特殊案件并记录变更历史
func (s *Service) Create(ctx context.Context, input Input, meta history.Meta) (*SpecialCase, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = StatusOpen
	}

	sc := &SpecialCase{
		ContactID:    input.ContactID,
		ManagementID: input.ManagementID,
		Reason:       strings.TrimSpace(input.Reason),
		Status:       status,
		Comments:     input.Comments,
	}

	if err := s.BaseService.Create(ctx, sc); err != nil {
		return nil, err
	}

	s.recorder.OnCreated(ctx, history.SubjectSpecialCase, sc.ID, sc.Snapshot(), meta)
	return sc, nil
}

// Update 更新特殊案件并记录变更历史
func (s *Service) Update(ctx context.Context, id uint64, input Input, meta history.Meta) (*SpecialCase, error) {
	sc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	before := sc.Snapshot()

	sc.ContactID = input.ContactID
	sc.ManagementID = input.ManagementID
	sc.Reason = strings.TrimSpace(input.Reason)
	if input.Status != "" {
		sc.Status = input.Status
	}
	sc.Comments = input.Comments

	if err := s.BaseService.Update(ctx, sc); err != nil {
		return nil, err
	}

	s.recorder.OnUpdated(ctx, history.SubjectSpecialCase, sc.ID, before, sc.Snapshot(), meta)
	return sc, nil
}

// Delete 物理删除特殊案件，变更历史保存删除前的完整快照
func (s *Service) Delete(ctx context.Context, id uint64, meta history.Meta) error {
	sc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	snapshot := sc.Snapshot()
	if err := s.BaseService.Delete(ctx, sc); err != nil {
		return err
	}

	s.recorder.OnDeleted(ctx, history.SubjectSpecialCase, id, snapshot, meta)
	return nil
}

// validateInput 校验特殊案件入参
func validateInput(input Input) error {
	ve := common.NewValidationError()

	if input.ContactID == 0 {
		ve.Add("contact_id", "联系人不能为空")
	}
	if strings.TrimSpace(input.Reason) == "" {
		ve.Add("reason", "原因不能为空")
	}
	if input.Status != "" {
		if _, ok := validStatuses[input.Status]; !ok {
			ve.Add("status", "状态取值无效")
		}
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
