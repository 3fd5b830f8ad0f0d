package consultation

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

	if err := db.AutoMigrate(&Consultation{}, &Specific{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return NewService(db)
}

// TestConsultationCRUD 测试咨询大类的增删改查
func TestConsultationCRUD(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	c, err := service.CreateConsultation(ctx, ConsultationInput{Name: "Billing"})
	require.NoError(t, err)
	assert.True(t, c.IsActive)

	updated, err := service.UpdateConsultation(ctx, c.ID, ConsultationInput{Name: "Billing & Payments"})
	require.NoError(t, err)
	assert.Equal(t, "Billing & Payments", updated.Name)

	toggled, err := service.ToggleConsultation(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	_, err = service.GetConsultation(ctx, 404)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = service.CreateConsultation(ctx, ConsultationInput{Name: "  "})
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Fields["name"])
}

// TestSpecificRequiresConsultation 测试细项必须挂在已存在的大类下
func TestSpecificRequiresConsultation(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	_, err := service.CreateSpecific(ctx, SpecificInput{Name: "Refund", ConsultationID: 404})
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = service.CreateSpecific(ctx, SpecificInput{Name: "Refund"})
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Fields["consultation_id"])
}

// TestActiveTaxonomy 测试启用分类树查询
func TestActiveTaxonomy(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	billing, err := service.CreateConsultation(ctx, ConsultationInput{Name: "Billing"})
	require.NoError(t, err)
	support, err := service.CreateConsultation(ctx, ConsultationInput{Name: "Support"})
	require.NoError(t, err)

	refund, err := service.CreateSpecific(ctx, SpecificInput{Name: "Refund", ConsultationID: billing.ID})
	require.NoError(t, err)
	_, err = service.CreateSpecific(ctx, SpecificInput{Name: "Invoice copy", ConsultationID: billing.ID})
	require.NoError(t, err)

	// 停用一个细项和一个大类
	_, err = service.ToggleSpecific(ctx, refund.ID)
	require.NoError(t, err)
	_, err = service.ToggleConsultation(ctx, support.ID)
	require.NoError(t, err)

	actives, err := service.ListActiveConsultations(ctx)
	require.NoError(t, err)
	require.Len(t, actives, 1)
	assert.Equal(t, "Billing", actives[0].Name)
	// 只带启用的细项
	require.Len(t, actives[0].Specifics, 1)
	assert.Equal(t, "Invoice copy", actives[0].Specifics[0].Name)

	specifics, err := service.ListActiveSpecifics(ctx, billing.ID)
	require.NoError(t, err)
	assert.Len(t, specifics, 1)
}

// TestListPagination 测试分页查询
func TestListPagination(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := service.CreateConsultation(ctx, ConsultationInput{Name: name})
		require.NoError(t, err)
	}

	items, total, err := service.ListConsultations(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "Alpha", items[0].Name)

	_, _, err = service.ListConsultations(ctx, 0, 2)
	assert.ErrorIs(t, err, common.ErrInvalidPagination)

	_, _, err = service.ListSpecifics(ctx, 0, -1, 10)
	assert.ErrorIs(t, err, common.ErrInvalidPagination)
}
