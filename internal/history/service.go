package history

import (
	"context"
	"fmt"

	"contactcenter/internal/common"
	"contactcenter/internal/metrics"

	"gorm.io/gorm"
)

// DefaultPageSize 变更历史默认每页数量
const DefaultPageSize = 15

// Service 变更历史服务
type Service struct {
	*common.BaseService
}

// NewService 创建变更历史服务
func NewService(db *gorm.DB) *Service {
	return &Service{BaseService: common.NewBaseService(db)}
}

// Append 追加一条变更历史
// 主体类型必须已注册；存储错误统一包装为 ErrStorageUnavailable
func (s *Service) Append(ctx context.Context, record *ChangeHistory) error {
	if !IsValidSubjectType(record.SubjectType) {
		return ErrUnknownSubjectType
	}

	if err := s.GetDBWithContext(ctx).Create(record).Error; err != nil {
		metrics.HistoryAppendsTotal.WithLabelValues(record.SubjectType, record.Action, "error").Inc()
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	metrics.HistoryAppendsTotal.WithLabelValues(record.SubjectType, record.Action, "ok").Inc()
	return nil
}

// QueryBySubject 查询某个主体的变更历史
// 按创建时间升序排列（时间相同按ID升序），空结果返回空切片
func (s *Service) QueryBySubject(ctx context.Context, subjectType string, subjectID uint64, page, pageSize int) ([]*ChangeHistory, *common.PaginationMeta, error) {
	if err := validatePagination(page, pageSize); err != nil {
		return nil, nil, err
	}
	if !IsValidSubjectType(subjectType) {
		return nil, nil, ErrUnknownSubjectType
	}

	query := s.GetDBWithContext(ctx).
		Model(&ChangeHistory{}).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID)

	return s.paginate(ctx, query, page, pageSize, true)
}

// QueryBySubjectType 查询某类主体的全部变更历史（最新在前）
func (s *Service) QueryBySubjectType(ctx context.Context, subjectType string, page, pageSize int) ([]*ChangeHistory, *common.PaginationMeta, error) {
	if err := validatePagination(page, pageSize); err != nil {
		return nil, nil, err
	}
	if !IsValidSubjectType(subjectType) {
		return nil, nil, ErrUnknownSubjectType
	}

	query := s.GetDBWithContext(ctx).
		Model(&ChangeHistory{}).
		Where("subject_type = ?", subjectType)

	return s.paginate(ctx, query, page, pageSize, false)
}

// Query 查询全部变更历史（最新在前）
func (s *Service) Query(ctx context.Context, page, pageSize int) ([]*ChangeHistory, *common.PaginationMeta, error) {
	if err := validatePagination(page, pageSize); err != nil {
		return nil, nil, err
	}

	query := s.GetDBWithContext(ctx).Model(&ChangeHistory{})
	return s.paginate(ctx, query, page, pageSize, false)
}

// paginate 统计总数并返回指定页
func (s *Service) paginate(ctx context.Context, query *gorm.DB, page, pageSize int, ascending bool) ([]*ChangeHistory, *common.PaginationMeta, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	if ascending {
		query = query.Scopes(common.ByCreationOrder())
	} else {
		query = query.Scopes(common.ByCreationOrderDesc())
	}
	query = s.ApplyPagination(query, page, pageSize)

	records := make([]*ChangeHistory, 0)
	if err := query.Find(&records).Error; err != nil {
		return nil, nil, err
	}

	meta := common.NewPaginationMeta(page, pageSize, total)
	return records, &meta, nil
}

// validatePagination 校验分页参数
func validatePagination(page, pageSize int) error {
	if page < 1 || pageSize < 1 {
		return common.ErrInvalidPagination
	}
	return nil
}
