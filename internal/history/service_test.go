package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"contactcenter/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB 创建测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&ChangeHistory{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

// TestAppend 测试追加变更历史
func TestAppend(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	record := &ChangeHistory{
		SubjectType: SubjectEntity,
		SubjectID:   1,
		Action:      ActionCreated,
		OldValues:   map[string]interface{}{},
		NewValues:   map[string]interface{}{"name": "Acme Corp"},
		ActorID:     uint64Ptr(7),
		IPAddress:   "10.0.0.1",
		UserAgent:   "test-agent",
	}

	err := service.Append(ctx, record)
	assert.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.NotZero(t, record.CreatedAt)

	// 验证落库内容
	var stored ChangeHistory
	require.NoError(t, db.First(&stored, record.ID).Error)
	assert.Equal(t, SubjectEntity, stored.SubjectType)
	assert.Equal(t, ActionCreated, stored.Action)
	assert.Equal(t, "Acme Corp", stored.NewValues["name"])
	assert.Equal(t, uint64(7), *stored.ActorID)
}

// TestAppendUnknownSubjectType 测试未注册的主体类型被拒绝
func TestAppendUnknownSubjectType(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	record := &ChangeHistory{
		SubjectType: "invoice",
		SubjectID:   1,
		Action:      ActionCreated,
	}

	err := service.Append(ctx, record)
	assert.ErrorIs(t, err, ErrUnknownSubjectType)

	// 未写入任何记录
	var count int64
	db.Model(&ChangeHistory{}).Count(&count)
	assert.Zero(t, count)
}

// TestAppendStorageError 测试存储错误统一包装
func TestAppendStorageError(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	// 删表模拟存储不可用
	require.NoError(t, db.Migrator().DropTable(&ChangeHistory{}))

	err := service.Append(ctx, &ChangeHistory{
		SubjectType: SubjectEntity,
		SubjectID:   1,
		Action:      ActionCreated,
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStorageUnavailable))
}

// TestQueryBySubject 测试按主体查询
func TestQueryBySubject(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// 同一主体的三条记录 + 另一主体的干扰记录
	records := []*ChangeHistory{
		{SubjectType: SubjectEntity, SubjectID: 5, Action: ActionCreated, CreatedAt: base},
		{SubjectType: SubjectEntity, SubjectID: 5, Action: ActionUpdated, CreatedAt: base.Add(time.Minute)},
		{SubjectType: SubjectEntity, SubjectID: 5, Action: ActionUpdated, CreatedAt: base.Add(2 * time.Minute)},
		{SubjectType: SubjectEntity, SubjectID: 9, Action: ActionCreated, CreatedAt: base},
		{SubjectType: SubjectContact, SubjectID: 5, Action: ActionCreated, CreatedAt: base},
	}
	for _, r := range records {
		require.NoError(t, service.Append(ctx, r))
	}

	result, meta, err := service.QueryBySubject(ctx, SubjectEntity, 5, 1, DefaultPageSize)
	require.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, int64(3), meta.Total)
	assert.Equal(t, 1, meta.LastPage)

	// 按创建时间升序
	assert.Equal(t, ActionCreated, result[0].Action)
	assert.Equal(t, ActionUpdated, result[1].Action)
	assert.True(t, result[0].CreatedAt.Before(result[1].CreatedAt) || result[0].CreatedAt.Equal(result[1].CreatedAt))
	assert.True(t, result[0].ID < result[1].ID)
}

// TestQueryBySubjectSameTimestampOrdering 测试时间相同按ID升序
func TestQueryBySubjectSameTimestampOrdering(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, service.Append(ctx, &ChangeHistory{
			SubjectType: SubjectManagement,
			SubjectID:   1,
			Action:      ActionUpdated,
			CreatedAt:   ts,
		}))
	}

	result, _, err := service.QueryBySubject(ctx, SubjectManagement, 1, 1, DefaultPageSize)
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.True(t, result[0].ID < result[1].ID)
	assert.True(t, result[1].ID < result[2].ID)
}

// TestQueryBySubjectEmpty 测试无历史的主体返回空结果
func TestQueryBySubjectEmpty(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	result, meta, err := service.QueryBySubject(ctx, SubjectEntity, 404, 1, DefaultPageSize)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result, 0)
	assert.Equal(t, int64(0), meta.Total)
	assert.Equal(t, 1, meta.LastPage)
}

// TestQueryBySubjectPagination 测试分页切分
func TestQueryBySubjectPagination(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 37; i++ {
		require.NoError(t, service.Append(ctx, &ChangeHistory{
			SubjectType: SubjectEntity,
			SubjectID:   1,
			Action:      ActionUpdated,
			NewValues:   map[string]interface{}{"seq": fmt.Sprintf("%d", i)},
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	tests := []struct {
		page        int
		expectCount int
	}{
		{1, 15},
		{2, 15},
		{3, 7},
		{4, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("Page %d", tt.page), func(t *testing.T) {
			result, meta, err := service.QueryBySubject(ctx, SubjectEntity, 1, tt.page, DefaultPageSize)
			require.NoError(t, err)
			assert.Len(t, result, tt.expectCount)
			assert.Equal(t, int64(37), meta.Total)
			assert.Equal(t, 3, meta.LastPage)
			assert.Equal(t, tt.page, meta.CurrentPage)
		})
	}

	// 跨页连续且不重复：第2页第一条紧跟第1页最后一条
	page1, _, err := service.QueryBySubject(ctx, SubjectEntity, 1, 1, DefaultPageSize)
	require.NoError(t, err)
	page2, _, err := service.QueryBySubject(ctx, SubjectEntity, 1, 2, DefaultPageSize)
	require.NoError(t, err)
	assert.True(t, page1[len(page1)-1].ID < page2[0].ID)
}

// TestQueryInvalidPagination 测试非法分页参数
func TestQueryInvalidPagination(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		page     int
		pageSize int
	}{
		{"Zero page", 0, 15},
		{"Negative page", -1, 15},
		{"Zero page size", 1, 0},
		{"Negative page size", 1, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.QueryBySubject(ctx, SubjectEntity, 1, tt.page, tt.pageSize)
			assert.ErrorIs(t, err, common.ErrInvalidPagination)

			_, _, err = service.QueryBySubjectType(ctx, SubjectEntity, tt.page, tt.pageSize)
			assert.ErrorIs(t, err, common.ErrInvalidPagination)

			_, _, err = service.Query(ctx, tt.page, tt.pageSize)
			assert.ErrorIs(t, err, common.ErrInvalidPagination)
		})
	}
}

// TestQueryBySubjectTypeUnknown 测试查询未注册主体类型
func TestQueryBySubjectTypeUnknown(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	_, _, err := service.QueryBySubjectType(ctx, "invoice", 1, DefaultPageSize)
	assert.ErrorIs(t, err, ErrUnknownSubjectType)

	_, _, err = service.QueryBySubject(ctx, "invoice", 1, 1, DefaultPageSize)
	assert.ErrorIs(t, err, ErrUnknownSubjectType)
}

// TestQueryAll 测试全量查询（最新在前）
func TestQueryAll(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, service.Append(ctx, &ChangeHistory{
		SubjectType: SubjectEntity, SubjectID: 1, Action: ActionCreated, CreatedAt: base,
	}))
	require.NoError(t, service.Append(ctx, &ChangeHistory{
		SubjectType: SubjectContact, SubjectID: 2, Action: ActionCreated, CreatedAt: base.Add(time.Hour),
	}))

	result, meta, err := service.Query(ctx, 1, DefaultPageSize)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(2), meta.Total)
	// 最新在前
	assert.Equal(t, SubjectContact, result[0].SubjectType)
	assert.Equal(t, SubjectEntity, result[1].SubjectType)
}
