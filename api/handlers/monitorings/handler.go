package monitorings

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/common"
	"contactcenter/internal/monitoring"
)

// Handler 质检项处理器
type Handler struct {
	service *monitoring.Service
}

// NewHandler 创建质检项处理器
func NewHandler(service *monitoring.Service) *Handler {
	return &Handler{service: service}
}

// List 分页查询质检项
// @Summary 质检项列表
// @Tags Monitorings
// @Security BearerAuth
// @Produce json
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/config/monitorings [get]
func (h *Handler) List(c *gin.Context) {
	var q common.PaginationRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return
	}
	q.Normalize(monitoring.DefaultPageSize)

	items, total, err := h.service.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", items, common.NewResourceMeta(q.Page, q.PageSize, total))
}

// ListActive 查询启用的质检项
// @Summary 启用的质检项
// @Tags Monitorings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /api/monitorings/active [get]
func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", items)
}

// Get 质检项详情
// @Summary 质检项详情
// @Tags Monitorings
// @Security BearerAuth
// @Produce json
// @Param id path int true "质检项 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/monitorings/{id} [get]
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

// Create 创建质检项
// @Summary 创建质检项
// @Tags Monitorings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body monitoring.Input true "质检项信息"
// @Success 201 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/monitorings [post]
func (h *Handler) Create(c *gin.Context) {
	var input monitoring.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondCreated(c, "质检项创建成功", item)
}

// Update 更新质检项
// @Summary 更新质检项
// @Tags Monitorings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "质检项 ID"
// @Param request body monitoring.Input true "质检项信息"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/monitorings/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input monitoring.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "质检项更新成功", item)
}

// Toggle 切换质检项启用状态
// @Summary 切换质检项启用状态
// @Tags Monitorings
// @Security BearerAuth
// @Produce json
// @Param id path int true "质检项 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/monitorings/{id} [delete]
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

	message := "质检项已停用"
	if item.IsActive {
		message = "质检项已启用"
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
