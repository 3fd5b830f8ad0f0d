package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"contactcenter/internal/entity"
	"contactcenter/internal/history"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestRouter 创建挂好机构路由的测试路由器
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Entity{}, &history.ChangeHistory{}))

	recorder := history.NewRecorder(history.NewService(db), zap.NewNop())
	handler := NewHandler(entity.NewService(db, recorder))

	router := gin.New()
	router.GET("/api/entities", handler.List)
	router.GET("/api/entities/active", handler.ListActive)
	router.GET("/api/entities/:id", handler.Get)
	router.POST("/api/entities", handler.Create)
	router.PUT("/api/entities/:id", handler.Update)
	router.DELETE("/api/entities/:id", handler.Toggle)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// TestCreateEntityHTTP 测试创建机构接口
func TestCreateEntityHTTP(t *testing.T) {
	router, db := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/entities", entity.Input{
		Name:  "北方合作社",
		Phone: "3001234567",
		Email: "north@example.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "机构创建成功", resp["message"])

	data := resp["data"].(map[string]any)
	assert.Equal(t, "北方合作社", data["name"])
	assert.Equal(t, true, data["is_active"])

	// 创建应同步写入变更历史
	var historyCount int64
	db.Model(&history.ChangeHistory{}).
		Where("subject_type = ? AND action = ?", history.SubjectEntity, history.ActionCreated).
		Count(&historyCount)
	assert.Equal(t, int64(1), historyCount)
}

// TestCreateEntityValidationHTTP 测试创建机构参数校验
func TestCreateEntityValidationHTTP(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/entities", entity.Input{
		Phone: "abc",
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "数据验证失败", resp["message"])

	errs := resp["errors"].(map[string]any)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "phone")
}

// TestListEntitiesHTTP 测试机构列表接口的分页与统计
func TestListEntitiesHTTP(t *testing.T) {
	router, _ := setupTestRouter(t)

	for i := 0; i < 12; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/entities", entity.Input{
			Name: fmt.Sprintf("机构-%02d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	// 停用一个
	w := doJSON(t, router, http.MethodDelete, "/api/entities/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/entities?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)

	data := resp["data"].([]any)
	assert.Len(t, data, 2)

	pagination := resp["pagination"].(map[string]any)
	assert.EqualValues(t, 2, pagination["current_page"])
	assert.EqualValues(t, 2, pagination["total_pages"])
	assert.EqualValues(t, 10, pagination["per_page"])
	assert.EqualValues(t, 12, pagination["total_entities"])
	assert.EqualValues(t, 11, pagination["count_actives"])
	assert.EqualValues(t, 1, pagination["count_inactives"])
}

// TestGetEntityNotFoundHTTP 测试机构不存在返回404
func TestGetEntityNotFoundHTTP(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/entities/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestInvalidIDHTTP 测试非数字ID返回400
func TestInvalidIDHTTP(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/entities/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestUpdateEntityHTTP 测试更新机构接口
func TestUpdateEntityHTTP(t *testing.T) {
	router, db := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/entities", entity.Input{Name: "旧名称"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/entities/1", entity.Input{Name: "新名称"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "机构更新成功", resp["message"])

	var record history.ChangeHistory
	require.NoError(t, db.Where("action = ?", history.ActionUpdated).First(&record).Error)
	assert.Equal(t, "旧名称", record.OldValues["name"])
	assert.Equal(t, "新名称", record.NewValues["name"])
}

// TestListActiveEntitiesHTTP 测试启用机构列表接口
func TestListActiveEntitiesHTTP(t *testing.T) {
	router, _ := setupTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/entities", entity.Input{Name: "甲"})
	doJSON(t, router, http.MethodPost, "/api/entities", entity.Input{Name: "乙"})
	doJSON(t, router, http.MethodDelete, "/api/entities/2", nil)

	w := doJSON(t, router, http.MethodGet, "/api/entities/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)

	data := resp["data"].([]any)
	assert.Len(t, data, 1)
}
