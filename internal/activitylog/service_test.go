package activitylog

import (
	"context"
	"testing"
	"time"

	"contactcenter/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestService 创建测试服务（内存数据库）
func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&ActivityLog{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return NewService(db), db
}

// TestRecordAndList 测试写入与分页查询
func TestRecordAndList(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	userID := uint64(3)
	logs := []*ActivityLog{
		{UserID: &userID, Module: "entities", Action: "entities.create", Method: "POST", StatusCode: 201},
		{UserID: &userID, Module: "entities", Action: "entities.view", Method: "GET", StatusCode: 200},
		{Module: "auth", Action: "auth.login", Method: "POST", StatusCode: 200},
	}
	for _, log := range logs {
		require.NoError(t, service.Record(ctx, log))
	}

	t.Run("All", func(t *testing.T) {
		result, meta, err := service.List(ctx, Query{
			PaginationRequest: common.PaginationRequest{Page: 1, PageSize: DefaultPageSize},
		})
		require.NoError(t, err)
		assert.Len(t, result, 3)
		assert.Equal(t, int64(3), meta.Total)
	})

	t.Run("Filter by module", func(t *testing.T) {
		result, _, err := service.List(ctx, Query{
			Module:            "entities",
			PaginationRequest: common.PaginationRequest{Page: 1, PageSize: DefaultPageSize},
		})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Filter by user", func(t *testing.T) {
		result, _, err := service.List(ctx, Query{
			UserID:            &userID,
			PaginationRequest: common.PaginationRequest{Page: 1, PageSize: DefaultPageSize},
		})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Invalid pagination", func(t *testing.T) {
		_, _, err := service.List(ctx, Query{})
		assert.ErrorIs(t, err, common.ErrInvalidPagination)
	})
}

// TestPruneOlderThan 测试按保留期清理
func TestPruneOlderThan(t *testing.T) {
	service, db := setupTestService(t)
	ctx := context.Background()

	old := &ActivityLog{Action: "entities.view", CreatedAt: time.Now().AddDate(0, 0, -100)}
	recent := &ActivityLog{Action: "entities.view", CreatedAt: time.Now().AddDate(0, 0, -1)}
	require.NoError(t, db.Create(old).Error)
	require.NoError(t, db.Create(recent).Error)

	deleted, err := service.PruneOlderThan(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var count int64
	db.Model(&ActivityLog{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// 保留期为0表示永久保留
	deleted, err = service.PruneOlderThan(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

// TestInferAction 测试模块与动作推断
func TestInferAction(t *testing.T) {
	tests := []struct {
		method       string
		path         string
		expectModule string
		expectAction string
	}{
		{"POST", "/api/entities", "entities", "entities.create"},
		{"GET", "/api/entities/5", "entities", "entities.view"},
		{"PUT", "/api/contacts/2", "contacts", "contacts.update"},
		{"DELETE", "/api/management/9", "management", "management.delete"},
		{"PUT", "/api/managementmonitoring/9", "managementmonitoring", "managementmonitoring.update"},
		{"POST", "/api/config/payrolls", "payrolls", "payrolls.create"},
		{"PUT", "/api/config/typemanagements/4", "typemanagements", "typemanagements.update"},
		{"GET", "/api/monitorings/active", "monitorings", "monitorings.view"},
		{"DELETE", "/api/config/users/3", "users", "users.delete"},
		{"POST", "/api/login", "auth", "auth.login"},
		{"GET", "/api/change-histories/entity/entity/3", "change-histories", "change-histories.view"},
		{"GET", "/health", "general", "general.view"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			module, action := inferAction(tt.method, tt.path)
			assert.Equal(t, tt.expectModule, module)
			assert.Equal(t, tt.expectAction, action)
		})
	}
}
