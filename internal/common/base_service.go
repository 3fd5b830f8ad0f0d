package common

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// BaseService 服务基类，封装通用的数据库操作方法
// 所有业务Service可以嵌入此基类来复用通用功能
type BaseService struct {
	DB *gorm.DB
}

// NewBaseService 创建BaseService实例
func NewBaseService(db *gorm.DB) *BaseService {
	return &BaseService{DB: db}
}

// ============================================================================
// 启用状态过滤
// ============================================================================

// ApplyActiveFilter 应用启用状态过滤条件
// active 为 nil 时不过滤
func (s *BaseService) ApplyActiveFilter(query *gorm.DB, active *bool) *gorm.DB {
	if active != nil {
		return query.Where("is_active = ?", *active)
	}
	return query
}

// ============================================================================
// 分页
// ============================================================================

// ApplyPagination 应用分页条件
// page: 页码（从1开始）
// pageSize: 每页数量（调用方负责填充默认值）
func (s *BaseService) ApplyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 15
	}

	offset := (page - 1) * pageSize
	return query.Offset(offset).Limit(pageSize)
}

// ApplyPaginationRequest 应用分页请求参数
func (s *BaseService) ApplyPaginationRequest(query *gorm.DB, req PaginationRequest) *gorm.DB {
	return s.ApplyPagination(query, req.Page, req.PageSize)
}

// ============================================================================
// 关键词搜索
// ============================================================================

// ApplyKeywordSearch 应用关键词模糊搜索（不区分大小写）
// keyword: 搜索关键词
// fields: 搜索字段列表
// 示例: ApplyKeywordSearch(query, "acme", []string{"name", "email"})
func (s *BaseService) ApplyKeywordSearch(query *gorm.DB, keyword string, fields []string) *gorm.DB {
	if keyword == "" || len(fields) == 0 {
		return query
	}

	// 构建OR条件
	var conditions []string
	var args []interface{}
	for _, field := range fields {
		conditions = append(conditions, fmt.Sprintf("LOWER(%s) LIKE ?", field))
		args = append(args, "%"+strings.ToLower(keyword)+"%")
	}

	whereClause := "(" + strings.Join(conditions, " OR ") + ")"
	return query.Where(whereClause, args...)
}

// ============================================================================
// 通用CRUD操作
// ============================================================================

// Create 创建记录
func (s *BaseService) Create(ctx context.Context, model interface{}) error {
	return s.DB.WithContext(ctx).Create(model).Error
}

// Update 更新记录
func (s *BaseService) Update(ctx context.Context, model interface{}) error {
	return s.DB.WithContext(ctx).Save(model).Error
}

// Delete 删除记录（物理删除）
func (s *BaseService) Delete(ctx context.Context, model interface{}) error {
	return s.DB.WithContext(ctx).Delete(model).Error
}

// FindByID 根据ID查询单条记录
func (s *BaseService) FindByID(ctx context.Context, model interface{}, id uint64) error {
	return s.DB.WithContext(ctx).Where("id = ?", id).First(model).Error
}

// Exists 检查记录是否存在
func (s *BaseService) Exists(ctx context.Context, model interface{}, condition string, args ...interface{}) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(model).Where(condition, args...).Count(&count).Error
	return count > 0, err
}

// ============================================================================
// 事务支持
// ============================================================================

// Transaction 执行事务
func (s *BaseService) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.DB.WithContext(ctx).Transaction(fn)
}

// WithTransaction 使用指定的事务对象创建新的BaseService
func (s *BaseService) WithTransaction(tx *gorm.DB) *BaseService {
	return &BaseService{DB: tx}
}

// ============================================================================
// 计数与统计
// ============================================================================

// Count 统计记录数
func (s *BaseService) Count(ctx context.Context, model interface{}, condition string, args ...interface{}) (int64, error) {
	var count int64
	query := s.DB.WithContext(ctx).Model(model)
	if condition != "" {
		query = query.Where(condition, args...)
	}
	err := query.Count(&count).Error
	return count, err
}

// CountWithQuery 使用自定义查询统计
func (s *BaseService) CountWithQuery(ctx context.Context, query *gorm.DB) (int64, error) {
	var count int64
	err := query.WithContext(ctx).Count(&count).Error
	return count, err
}

// ============================================================================
// 工具方法
// ============================================================================

// GetDB 获取数据库实例
func (s *BaseService) GetDB() *gorm.DB {
	return s.DB
}

// GetDBWithContext 获取带上下文的数据库实例
func (s *BaseService) GetDBWithContext(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx)
}
