package histories

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/common"
	"contactcenter/internal/history"
)

// Handler 变更历史处理器
type Handler struct {
	service *history.Service
}

// NewHandler 创建变更历史处理器
func NewHandler(service *history.Service) *Handler {
	return &Handler{service: service}
}

// List 查询全部变更历史（最新在前）
// @Summary 变更历史列表
// @Tags ChangeHistories
// @Security BearerAuth
// @Produce json
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/change-histories [get]
func (h *Handler) List(c *gin.Context) {
	page, pageSize, ok := bindPagination(c)
	if !ok {
		return
	}

	records, meta, err := h.service.Query(c.Request.Context(), page, pageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", records, meta)
}

// ListBySubjectType 查询某类主体的变更历史（最新在前）
// @Summary 按主体类型查询变更历史
// @Tags ChangeHistories
// @Security BearerAuth
// @Produce json
// @Param type path string true "主体类型"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/change-histories/entity/{type} [get]
func (h *Handler) ListBySubjectType(c *gin.Context) {
	page, pageSize, ok := bindPagination(c)
	if !ok {
		return
	}

	records, meta, err := h.service.QueryBySubjectType(c.Request.Context(), c.Param("type"), page, pageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", records, meta)
}

// ListBySubject 查询单个主体的变更历史（时间升序）
// @Summary 按主体查询变更历史
// @Tags ChangeHistories
// @Security BearerAuth
// @Produce json
// @Param type path string true "主体类型"
// @Param id path int true "主体 ID"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/change-histories/entity/{type}/{id} [get]
func (h *Handler) ListBySubject(c *gin.Context) {
	page, pageSize, ok := bindPagination(c)
	if !ok {
		return
	}

	subjectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || subjectID == 0 {
		common.RespondBadRequest(c, "无效的主体 ID")
		return
	}

	records, meta, err := h.service.QueryBySubject(c.Request.Context(), c.Param("type"), subjectID, page, pageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", records, meta)
}

// bindPagination 解析分页查询参数并填充默认值
func bindPagination(c *gin.Context) (int, int, bool) {
	var q common.PaginationRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return 0, 0, false
	}
	q.Normalize(history.DefaultPageSize)
	return q.Page, q.PageSize, true
}
