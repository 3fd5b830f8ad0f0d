package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestModel 测试用的模型
type TestModel struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	Email     string `gorm:"size:255"`
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// setupTestDB 创建测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	err = db.AutoMigrate(&TestModel{})
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

// seedTestData 插入测试数据
func seedTestData(t *testing.T, db *gorm.DB) {
	models := []TestModel{
		{Name: "Acme Corp", Phone: "3001234567", Email: "contact@acme.com", IsActive: true},
		{Name: "Globex", Phone: "3017654321", Email: "info@globex.com", IsActive: true},
		{Name: "Initech", Phone: "3020001111", Email: "hello@initech.com", IsActive: false},
		{Name: "Umbrella", Phone: "3045556666", Email: "corp@umbrella.com", IsActive: false},
	}

	for _, model := range models {
		if err := db.Create(&model).Error; err != nil {
			t.Fatalf("Failed to seed data: %v", err)
		}
	}
}

// TestApplyActiveFilter 测试启用状态过滤
func TestApplyActiveFilter(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	service := NewBaseService(db)

	active := true
	inactive := false

	tests := []struct {
		name        string
		active      *bool
		expectCount int64
	}{
		{"Filter active", &active, 2},
		{"Filter inactive", &inactive, 2},
		{"No filter", nil, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := db.Model(&TestModel{})
			query = service.ApplyActiveFilter(query, tt.active)

			var count int64
			err := query.Count(&count).Error
			assert.NoError(t, err)
			assert.Equal(t, tt.expectCount, count)
		})
	}
}

// TestApplyKeywordSearch 测试关键词搜索
func TestApplyKeywordSearch(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	service := NewBaseService(db)

	tests := []struct {
		name        string
		keyword     string
		fields      []string
		expectCount int
	}{
		{"Match by name", "Acme", []string{"name"}, 1},
		{"Case insensitive", "aCmE", []string{"name"}, 1},
		{"Match across fields", "umbrella", []string{"name", "email"}, 1},
		{"Match by phone", "300", []string{"name", "phone", "email"}, 1},
		{"No match", "nonexistent", []string{"name", "phone", "email"}, 0},
		{"Empty keyword returns all", "", []string{"name"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := db.Model(&TestModel{})
			query = service.ApplyKeywordSearch(query, tt.keyword, tt.fields)

			var models []TestModel
			err := query.Find(&models).Error
			assert.NoError(t, err)
			assert.Equal(t, tt.expectCount, len(models))
		})
	}
}

// TestPagination 测试分页
func TestPagination(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	service := NewBaseService(db)

	tests := []struct {
		name        string
		page        int
		pageSize    int
		expectCount int
	}{
		{"Page 1, size 2", 1, 2, 2},
		{"Page 2, size 2", 2, 2, 2},
		{"Page 3, size 2", 3, 2, 0}, // 超出范围
		{"Page 1, size 10", 1, 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := db.Model(&TestModel{})
			query = service.ApplyPagination(query, tt.page, tt.pageSize)

			var models []TestModel
			err := query.Find(&models).Error
			assert.NoError(t, err)
			assert.Equal(t, tt.expectCount, len(models))
		})
	}
}

// TestPaginationRequestNormalize 测试分页参数默认值
func TestPaginationRequestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		req            PaginationRequest
		defaultSize    int
		expectPage     int
		expectPageSize int
	}{
		{"Empty request", PaginationRequest{}, 15, 1, 15},
		{"Page only", PaginationRequest{Page: 3}, 10, 3, 10},
		{"Full request", PaginationRequest{Page: 2, PageSize: 5}, 15, 2, 5},
		{"Oversized page size clamped", PaginationRequest{Page: 1, PageSize: 500}, 15, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(tt.defaultSize)
			assert.Equal(t, tt.expectPage, tt.req.Page)
			assert.Equal(t, tt.expectPageSize, tt.req.PageSize)
		})
	}
}

// TestNewPaginationMeta 测试分页元信息计算
func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		pageSize       int
		total          int64
		expectLastPage int
	}{
		{"Exact pages", 1, 15, 30, 2},
		{"Partial last page", 1, 15, 37, 3},
		{"Empty result", 1, 15, 0, 1},
		{"Single record", 1, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPaginationMeta(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.page, meta.CurrentPage)
			assert.Equal(t, tt.pageSize, meta.PerPage)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.expectLastPage, meta.LastPage)
		})
	}
}

// TestCreate 测试创建记录
func TestCreate(t *testing.T) {
	db := setupTestDB(t)
	service := NewBaseService(db)
	ctx := context.Background()

	model := &TestModel{
		Name:     "New Corp",
		Phone:    "3120000000",
		Email:    "new@corp.com",
		IsActive: true,
	}

	err := service.Create(ctx, model)
	assert.NoError(t, err)
	assert.NotZero(t, model.ID)
	assert.NotZero(t, model.CreatedAt)
}

// TestUpdate 测试更新记录
func TestUpdate(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	service := NewBaseService(db)
	ctx := context.Background()

	var model TestModel
	db.First(&model)

	model.Name = "Updated Name"
	err := service.Update(ctx, &model)
	assert.NoError(t, err)

	var updated TestModel
	db.First(&updated, model.ID)
	assert.Equal(t, "Updated Name", updated.Name)
}

// TestDelete 测试物理删除
func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	service := NewBaseService(db)
	ctx := context.Background()

	var model TestModel
	db.First(&model)
	id := model.ID

	err := service.Delete(ctx, &model)
	assert.NoError(t, err)

	var deleted TestModel
	err = db.First(&deleted, id).Error
	assert.Error(t, err)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

// TestFindByID 测试根据ID查询
func TestFindByID(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	service := NewBaseService(db)
	ctx := context.Background()

	var firstModel TestModel
	db.First(&firstModel)

	var model TestModel
	err := service.FindByID(ctx, &model, firstModel.ID)
	assert.NoError(t, err)
	assert.Equal(t, firstModel.Name, model.Name)

	// 不存在的ID
	var missing TestModel
	err = service.FindByID(ctx, &missing, 99999)
	assert.Error(t, err)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

// TestExists 测试记录存在性检查
func TestExists(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	service := NewBaseService(db)
	ctx := context.Background()

	tests := []struct {
		name      string
		condition string
		args      []interface{}
		expect    bool
	}{
		{"Exists - by name", "name = ?", []interface{}{"Acme Corp"}, true},
		{"Exists - active", "is_active = ?", []interface{}{true}, true},
		{"Not exists - unknown name", "name = ?", []interface{}{"Nope Inc"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := service.Exists(ctx, &TestModel{}, tt.condition, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, exists)
		})
	}
}

// TestTransaction 测试事务
func TestTransaction(t *testing.T) {
	db := setupTestDB(t)
	service := NewBaseService(db)
	ctx := context.Background()

	t.Run("Successful transaction", func(t *testing.T) {
		err := service.Transaction(ctx, func(tx *gorm.DB) error {
			model1 := &TestModel{Name: "TX Test 1", IsActive: true}
			model2 := &TestModel{Name: "TX Test 2", IsActive: true}

			if err := tx.Create(model1).Error; err != nil {
				return err
			}
			if err := tx.Create(model2).Error; err != nil {
				return err
			}

			return nil
		})

		assert.NoError(t, err)

		// 验证记录已创建
		var count int64
		db.Model(&TestModel{}).Where("name LIKE ?", "TX Test%").Count(&count)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Failed transaction (rollback)", func(t *testing.T) {
		var countBefore int64
		db.Model(&TestModel{}).Count(&countBefore)

		err := service.Transaction(ctx, func(tx *gorm.DB) error {
			model := &TestModel{Name: "Rollback Test", IsActive: true}
			if err := tx.Create(model).Error; err != nil {
				return err
			}

			// 模拟错误，触发回滚
			return gorm.ErrInvalidTransaction
		})

		assert.Error(t, err)

		// 验证记录未创建（已回滚）
		var countAfter int64
		db.Model(&TestModel{}).Count(&countAfter)
		assert.Equal(t, countBefore, countAfter)
	})
}

// TestCount 测试计数
func TestCount(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	service := NewBaseService(db)
	ctx := context.Background()

	tests := []struct {
		name      string
		condition string
		args      []interface{}
		expect    int64
	}{
		{"Count all", "", nil, 4},
		{"Count active", "is_active = ?", []interface{}{true}, 2},
		{"Count inactive", "is_active = ?", []interface{}{false}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := service.Count(ctx, &TestModel{}, tt.condition, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, count)
		})
	}
}
