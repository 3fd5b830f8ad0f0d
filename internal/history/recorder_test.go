package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestDiff 测试前后快照的对称差异计算
func TestDiff(t *testing.T) {
	tests := []struct {
		name      string
		before    map[string]interface{}
		after     map[string]interface{}
		expectOld map[string]interface{}
		expectNew map[string]interface{}
	}{
		{
			name:      "Single field changed",
			before:    map[string]interface{}{"name": "Acme", "phone": "3001112222"},
			after:     map[string]interface{}{"name": "Acme", "phone": "3009998888"},
			expectOld: map[string]interface{}{"phone": "3001112222"},
			expectNew: map[string]interface{}{"phone": "3009998888"},
		},
		{
			name:      "No changes",
			before:    map[string]interface{}{"name": "Acme", "is_active": true},
			after:     map[string]interface{}{"name": "Acme", "is_active": true},
			expectOld: map[string]interface{}{},
			expectNew: map[string]interface{}{},
		},
		{
			name:      "Field added",
			before:    map[string]interface{}{"name": "Acme"},
			after:     map[string]interface{}{"name": "Acme", "email": "hi@acme.com"},
			expectOld: map[string]interface{}{"email": nil},
			expectNew: map[string]interface{}{"email": "hi@acme.com"},
		},
		{
			name:      "Field removed",
			before:    map[string]interface{}{"name": "Acme", "email": "hi@acme.com"},
			after:     map[string]interface{}{"name": "Acme"},
			expectOld: map[string]interface{}{"email": "hi@acme.com"},
			expectNew: map[string]interface{}{"email": nil},
		},
		{
			name:      "Multiple fields changed",
			before:    map[string]interface{}{"name": "Acme", "is_active": true, "nit": "900123"},
			after:     map[string]interface{}{"name": "Acme SA", "is_active": false, "nit": "900123"},
			expectOld: map[string]interface{}{"name": "Acme", "is_active": true},
			expectNew: map[string]interface{}{"name": "Acme SA", "is_active": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldValues, newValues := Diff(tt.before, tt.after)
			assert.Equal(t, tt.expectOld, oldValues)
			assert.Equal(t, tt.expectNew, newValues)

			// 键集合必须对称
			assert.Equal(t, len(oldValues), len(newValues))
			for key := range oldValues {
				_, ok := newValues[key]
				assert.True(t, ok, "key %s missing from new values", key)
			}
		})
	}
}

// TestRecorderOnCreated 测试创建动作的记录
func TestRecorderOnCreated(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	recorder := NewRecorder(service, zap.NewNop())
	ctx := context.Background()

	meta := Meta{
		ActorID:   uint64Ptr(3),
		IPAddress: "10.0.0.9",
		UserAgent: "test-agent",
	}
	recorder.OnCreated(ctx, SubjectEntity, 12, map[string]interface{}{
		"name":      "Acme",
		"is_active": true,
	}, meta)

	var record ChangeHistory
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, ActionCreated, record.Action)
	assert.Equal(t, SubjectEntity, record.SubjectType)
	assert.Equal(t, uint64(12), record.SubjectID)
	assert.Empty(t, record.OldValues)
	assert.Equal(t, "Acme", record.NewValues["name"])
	assert.Equal(t, uint64(3), *record.ActorID)
	assert.Equal(t, "10.0.0.9", record.IPAddress)
	assert.Equal(t, "test-agent", record.UserAgent)
}

// TestRecorderOnUpdated 测试更新动作只记录变化字段
func TestRecorderOnUpdated(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	recorder := NewRecorder(service, zap.NewNop())
	ctx := context.Background()

	before := map[string]interface{}{"name": "Acme", "phone": "3001112222", "is_active": true}
	after := map[string]interface{}{"name": "Acme", "phone": "3009998888", "is_active": true}

	recorder.OnUpdated(ctx, SubjectContact, 4, before, after, Meta{})

	var record ChangeHistory
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, ActionUpdated, record.Action)
	assert.Len(t, record.OldValues, 1)
	assert.Len(t, record.NewValues, 1)
	assert.Equal(t, "3001112222", record.OldValues["phone"])
	assert.Equal(t, "3009998888", record.NewValues["phone"])
}

// TestRecorderOnUpdatedEmptyDiff 测试无变化的更新仍写入记录
func TestRecorderOnUpdatedEmptyDiff(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	recorder := NewRecorder(service, zap.NewNop())
	ctx := context.Background()

	snapshot := map[string]interface{}{"name": "Acme"}
	recorder.OnUpdated(ctx, SubjectEntity, 1, snapshot, snapshot, Meta{})

	var count int64
	db.Model(&ChangeHistory{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var record ChangeHistory
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, ActionUpdated, record.Action)
	assert.Empty(t, record.OldValues)
	assert.Empty(t, record.NewValues)
}

// TestRecorderOnDeleted 测试删除动作保存完整末态快照
func TestRecorderOnDeleted(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	recorder := NewRecorder(service, zap.NewNop())
	ctx := context.Background()

	snapshot := map[string]interface{}{
		"reason": "billing dispute",
		"status": "closed",
	}
	recorder.OnDeleted(ctx, SubjectSpecialCase, 8, snapshot, Meta{ActorID: uint64Ptr(2)})

	var record ChangeHistory
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, ActionDeleted, record.Action)
	assert.Equal(t, "billing dispute", record.OldValues["reason"])
	assert.Empty(t, record.NewValues)
}

// TestRecorderSwallowsStorageErrors 测试写入失败不影响调用方
func TestRecorderSwallowsStorageErrors(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	recorder := NewRecorder(service, zap.NewNop())
	ctx := context.Background()

	// 删表模拟存储不可用，调用不应 panic
	require.NoError(t, db.Migrator().DropTable(&ChangeHistory{}))

	assert.NotPanics(t, func() {
		recorder.OnCreated(ctx, SubjectEntity, 1, map[string]interface{}{"name": "Acme"}, Meta{})
		recorder.OnUpdated(ctx, SubjectEntity, 1, nil, nil, Meta{})
		recorder.OnDeleted(ctx, SubjectEntity, 1, nil, Meta{})
	})
}

// TestRecorderUnknownSubjectType 测试未注册类型不产生记录
func TestRecorderUnknownSubjectType(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	recorder := NewRecorder(service, zap.NewNop())
	ctx := context.Background()

	recorder.OnCreated(ctx, "invoice", 1, map[string]interface{}{"name": "x"}, Meta{})

	var count int64
	db.Model(&ChangeHistory{}).Count(&count)
	assert.Zero(t, count)
}
