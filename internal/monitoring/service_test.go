package monitoring

import (
	"context"
	"testing"

	"contactcenter/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestService 创建测试服务（内存数据库）
func setupTestService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&Monitoring{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return NewService(db)
}

// TestMonitoringCRUD 测试质检项的增删改查
func TestMonitoringCRUD(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	m, err := service.Create(ctx, Input{Name: "First follow-up", Description: "初次回访"})
	require.NoError(t, err)
	assert.True(t, m.IsActive)
	assert.Equal(t, "初次回访", m.Description)

	updated, err := service.Update(ctx, m.ID, Input{Name: "Second follow-up"})
	require.NoError(t, err)
	assert.Equal(t, "Second follow-up", updated.Name)
	assert.Empty(t, updated.Description)

	toggled, err := service.Toggle(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	_, err = service.Get(ctx, 404)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = service.Create(ctx, Input{Name: " "})
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Fields["name"])
}

// TestMonitoringActiveList 测试启用过滤
func TestMonitoringActiveList(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	closed, err := service.Create(ctx, Input{Name: "Closed"})
	require.NoError(t, err)
	_, err = service.Create(ctx, Input{Name: "Pending"})
	require.NoError(t, err)

	_, err = service.Toggle(ctx, closed.ID)
	require.NoError(t, err)

	actives, err := service.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, actives, 1)
	assert.Equal(t, "Pending", actives[0].Name)

	items, total, err := service.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), total)
}
