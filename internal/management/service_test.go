package management

import (
	"context"
	"testing"

	"contactcenter/internal/common"
	"contactcenter/internal/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestService 创建测试服务（内存数据库）
func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&Management{}, &history.ChangeHistory{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	recorder := history.NewRecorder(history.NewService(db), zap.NewNop())
	return NewService(db, recorder), db
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

// TestCreate 测试创建处理记录
func TestCreate(t *testing.T) {
	service, db := setupTestService(t)
	ctx := context.Background()

	m, err := service.Create(ctx, Input{
		UserID:         1,
		ContactID:      2,
		ConsultationID: uint64Ptr(3),
		SpecificID:     uint64Ptr(4),
		Solution:       "password reset",
		SMS:            true,
	}, history.Meta{ActorID: uint64Ptr(1)})

	require.NoError(t, err)
	assert.NotZero(t, m.ID)

	var record history.ChangeHistory
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, history.SubjectManagement, record.SubjectType)
	assert.Equal(t, history.ActionCreated, record.Action)
	assert.Equal(t, "password reset", record.NewValues["solution"])
	assert.Equal(t, uint64(1), *record.ActorID)
}

// TestCreateValidation 测试入参校验
func TestCreateValidation(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, Input{}, history.Meta{})
	require.Error(t, err)

	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Fields["user_id"])
	assert.NotEmpty(t, ve.Fields["contact_id"])
}

// TestUpdateMonitoring 测试质检关联更新只产生单字段差异
func TestUpdateMonitoring(t *testing.T) {
	service, db := setupTestService(t)
	ctx := context.Background()

	m, err := service.Create(ctx, Input{UserID: 1, ContactID: 2}, history.Meta{})
	require.NoError(t, err)

	updated, err := service.UpdateMonitoring(ctx, m.ID, 77, history.Meta{})
	require.NoError(t, err)
	require.NotNil(t, updated.MonitoringID)
	assert.Equal(t, uint64(77), *updated.MonitoringID)

	var records []history.ChangeHistory
	require.NoError(t, db.Order("id ASC").Find(&records).Error)
	require.Len(t, records, 2)
	assert.Equal(t, history.ActionUpdated, records[1].Action)
	assert.Len(t, records[1].OldValues, 1)
	assert.Nil(t, records[1].OldValues["monitoring_id"])
	assert.EqualValues(t, 77, records[1].NewValues["monitoring_id"])
}

// TestDeleteEmitsHistory 测试物理删除保存完整末态快照
func TestDeleteEmitsHistory(t *testing.T) {
	service, db := setupTestService(t)
	ctx := context.Background()

	m, err := service.Create(ctx, Input{
		UserID:    1,
		ContactID: 2,
		Solution:  "final answer",
	}, history.Meta{})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, m.ID, history.Meta{}))

	// 行已物理删除
	_, err = service.Get(ctx, m.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	var records []history.ChangeHistory
	require.NoError(t, db.Order("id ASC").Find(&records).Error)
	require.Len(t, records, 2)

	deleted := records[1]
	assert.Equal(t, history.ActionDeleted, deleted.Action)
	assert.Equal(t, m.ID, deleted.SubjectID)
	assert.Equal(t, "final answer", deleted.OldValues["solution"])
	assert.Empty(t, deleted.NewValues)
}

// TestDeleteNotFound 测试删除不存在的记录
func TestDeleteNotFound(t *testing.T) {
	service, _ := setupTestService(t)
	err := service.Delete(context.Background(), 404, history.Meta{})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

// TestListByContact 测试按联系人过滤
func TestListByContact(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	for _, contactID := range []uint64{2, 2, 9} {
		_, err := service.Create(ctx, Input{UserID: 1, ContactID: contactID}, history.Meta{})
		require.NoError(t, err)
	}

	records, total, err := service.List(ctx, 2, 1, DefaultPageSize)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, int64(2), total)

	records, total, err = service.List(ctx, 0, 1, DefaultPageSize)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, int64(3), total)

	count, err := service.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
