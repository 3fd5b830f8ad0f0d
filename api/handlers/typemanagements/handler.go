package typemanagements

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/common"
	"contactcenter/internal/typemanagement"
)

// Handler 处理类型处理器
type Handler struct {
	service *typemanagement.Service
}

// NewHandler 创建处理类型处理器
func NewHandler(service *typemanagement.Service) *Handler {
	return &Handler{service: service}
}

// List 分页查询处理类型
// @Summary 处理类型列表
// @Tags TypeManagements
// @Security BearerAuth
// @Produce json
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/config/typemanagements [get]
func (h *Handler) List(c *gin.Context) {
	var q common.PaginationRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return
	}
	q.Normalize(typemanagement.DefaultPageSize)

	items, total, err := h.service.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", items, common.NewResourceMeta(q.Page, q.PageSize, total))
}

// ListActive 查询启用的处理类型
// @Summary 启用的处理类型
// @Tags TypeManagements
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /api/config/typemanagements/active [get]
func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", items)
}

// Count 统计处理类型总数
// @Summary 处理类型总数
// @Tags TypeManagements
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /api/config/typemanagements/count [get]
func (h *Handler) Count(c *gin.Context) {
	total, err := h.service.CountAll(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", gin.H{"count": total})
}

// Get 处理类型详情
// @Summary 处理类型详情
// @Tags TypeManagements
// @Security BearerAuth
// @Produce json
// @Param id path int true "处理类型 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/typemanagements/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", item)
}

// Create 创建处理类型
// @Summary 创建处理类型
// @Tags TypeManagements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body typemanagement.Input true "处理类型信息"
// @Success 201 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/typemanagements [post]
func (h *Handler) Create(c *gin.Context) {
	var input typemanagement.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondCreated(c, "处理类型创建成功", item)
}

// Update 更新处理类型
// @Summary 更新处理类型
// @Tags TypeManagements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "处理类型 ID"
// @Param request body typemanagement.Input true "处理类型信息"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/typemanagements/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input typemanagement.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "处理类型更新成功", item)
}

// Toggle 切换处理类型启用状态
// @Summary 切换处理类型启用状态
// @Tags TypeManagements
// @Security BearerAuth
// @Produce json
// @Param id path int true "处理类型 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/typemanagements/{id} [delete]
func (h *Handler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.Toggle(c.Request.Context(), id)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	message := "处理类型已停用"
	if item.IsActive {
		message = "处理类型已启用"
	}
	common.RespondData(c, message, item)
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		common.RespondBadRequest(c, "无效的 ID")
		return 0, false
	}
	return id, true
}
