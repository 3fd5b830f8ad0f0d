package activitylog

import (
	"context"
	"time"

	"contactcenter/internal/common"

	"gorm.io/gorm"
)

// DefaultPageSize 活动日志默认每页数量
const DefaultPageSize = 15

// Service 活动日志服务
type Service struct {
	*common.BaseService
}

// NewService 创建活动日志服务
func NewService(db *gorm.DB) *Service {
	return &Service{BaseService: common.NewBaseService(db)}
}

// Record 写入一条活动日志
func (s *Service) Record(ctx context.Context, log *ActivityLog) error {
	return s.GetDBWithContext(ctx).Create(log).Error
}

// Query 活动日志查询条件
type Query struct {
	UserID *uint64
	Module string
	Action string
	common.PaginationRequest
}

// List 分页查询活动日志（最新在前）
func (s *Service) List(ctx context.Context, q Query) ([]*ActivityLog, *common.PaginationMeta, error) {
	if q.Page < 1 || q.PageSize < 1 {
		return nil, nil, common.ErrInvalidPagination
	}

	query := s.GetDBWithContext(ctx).Model(&ActivityLog{})
	if q.UserID != nil {
		query = query.Where("user_id = ?", *q.UserID)
	}
	if q.Module != "" {
		query = query.Where("module = ?", q.Module)
	}
	if q.Action != "" {
		query = query.Where("action = ?", q.Action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	logs := make([]*ActivityLog, 0)
	err := s.ApplyPaginationRequest(query.Scopes(common.ByCreationOrderDesc()), q.PaginationRequest).
		Find(&logs).Error
	if err != nil {
		return nil, nil, err
	}

	meta := common.NewPaginationMeta(q.Page, q.PageSize, total)
	return logs, &meta, nil
}

// PruneOlderThan 清理早于保留期的活动日志，返回删除行数
// 只作用于活动日志，变更历史永不清理
func (s *Service) PruneOlderThan(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.GetDBWithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&ActivityLog{})

	return result.RowsAffected, result.Error
}
