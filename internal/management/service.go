package management

import (
	"context"
	"errors"

	"contactcenter/internal/common"
	"contactcenter/internal/history"

	"gorm.io/gorm"
)

// DefaultPageSize 处理记录列表默认每页数量
const DefaultPageSize = 10

// Service 处理记录服务
type Service struct {
	*common.BaseService
	recorder *history.Recorder
}

// NewService 创建处理记录服务
func NewService(db *gorm.DB, recorder *history.Recorder) *Service {
	return &Service{
		BaseService: common.NewBaseService(db),
		recorder:    recorder,
	}
}

// List 分页查询处理记录，可按联系人过滤
func (s *Service) List(ctx context.Context, contactID uint64, page, pageSize int) ([]*Management, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&Management{})
	if contactID > 0 {
		query = query.Where("contact_id = ?", contactID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := make([]*Management, 0)
	err := s.ApplyPagination(query.Order("id DESC"), page, pageSize).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// CountAll 统计处理记录总数
func (s *Service) CountAll(ctx context.Context) (int64, error) {
	return s.Count(ctx, &Management{}, "")
}

// Get 根据ID查询处理记录
func (s *Service) Get(ctx context.Context, id uint64) (*Management, error) {
	var m Management
	if err := s.FindByID(ctx, &m, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create 创建处理记录并记录变更历史
func (s *Service) Create(ctx context.Context, input Input, meta history.Meta) (*Management, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	m := &Management{
		UserID:           input.UserID,
		ContactID:        input.ContactID,
		PayrollID:        input.PayrollID,
		ConsultationID:   input.ConsultationID,
		SpecificID:       input.SpecificID,
		TypeManagementID: input.TypeManagementID,
		MonitoringID:     input.MonitoringID,
		Solution:         input.Solution,
		Comments:         input.Comments,
		SolutionDate:     input.SolutionDate,
		SMS:              input.SMS,
		WSP:              input.WSP,
		WolkvoxID:        input.WolkvoxID,
	}

	if err := s.BaseService.Create(ctx, m); err != nil {
		return nil, err
	}

	s.recorder.OnCreated(ctx, history.SubjectManagement, m.ID, m.Snapshot(), meta)
	return m, nil
}

// Update 更新处理记录并记录变更历史
func (s *Service) Update(ctx context.Context, id uint64, input Input, meta history.Meta) (*Management, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	before := m.Snapshot()

	m.UserID = input.UserID
	m.ContactID = input.ContactID
	m.PayrollID = input.PayrollID
	m.ConsultationID = input.ConsultationID
	m.SpecificID = input.SpecificID
	m.TypeManagementID = input.TypeManagementID
	m.MonitoringID = input.MonitoringID
	m.Solution = input.Solution
	m.Comments = input.Comments
	m.SolutionDate = input.SolutionDate
	m.SMS = input.SMS
	m.WSP = input.WSP
	m.WolkvoxID = input.WolkvoxID

	if err := s.BaseService.Update(ctx, m); err != nil {
		return nil, err
	}

	s.recorder.OnUpdated(ctx, history.SubjectManagement, m.ID, before, m.Snapshot(), meta)
	return m, nil
}

// UpdateMonitoring 仅更新质检关联并记录变更历史
func (s *Service) UpdateMonitoring(ctx context.Context, id uint64, monitoringID uint64, meta history.Meta) (*Management, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	before := m.Snapshot()
	m.MonitoringID = &monitoringID

	if err := s.BaseService.Update(ctx, m); err != nil {
		return nil, err
	}

	s.recorder.OnUpdated(ctx, history.SubjectManagement, m.ID, before, m.Snapshot(), meta)
	return m, nil
}

// Delete 物理删除处理记录，变更历史保存删除前的完整快照
func (s *Service) Delete(ctx context.Context, id uint64, meta history.Meta) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	snapshot := m.Snapshot()
	if err := s.BaseService.Delete(ctx, m); err != nil {
		return err
	}

	s.recorder.OnDeleted(ctx, history.SubjectManagement, id, snapshot, meta)
	return nil
}

// validateInput 校验处理记录入参
func validateInput(input Input) error {
	ve := common.NewValidationError()

	if input.UserID == 0 {
		ve.Add("user_id", "处理人不能为空")
	}
	if input.ContactID == 0 {
		ve.Add("contact_id", "联系人不能为空")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
