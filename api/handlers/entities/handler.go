package entities

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/auth"
	"contactcenter/internal/common"
	"contactcenter/internal/entity"
)

// Handler 机构处理器
type Handler struct {
	service *entity.Service
}

// NewHandler 创建机构处理器
func NewHandler(service *entity.Service) *Handler {
	return &Handler{service: service}
}

// ListQuery 机构列表查询参数
type ListQuery struct {
	Search string `form:"search"`
	common.PaginationRequest
}

// EntityMeta 机构列表分页元信息，附带全表统计
type EntityMeta struct {
	CurrentPage    int   `json:"current_page"`
	TotalPages     int   `json:"total_pages"`
	PerPage        int   `json:"per_page"`
	TotalEntities  int64 `json:"total_entities"`
	CountInactives int64 `json:"count_inactives"`
	CountActives   int64 `json:"count_actives"`
}

// List 分页查询机构
// @Summary 机构列表
// @Tags Entities
// @Security BearerAuth
// @Produce json
// @Param search query string false "搜索关键字"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/entities [get]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return
	}
	q.Normalize(entity.DefaultPageSize)

	result, err := h.service.List(c.Request.Context(), q.Search, q.Page, q.PageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	meta := common.NewResourceMeta(q.Page, q.PageSize, result.Total)
	common.RespondList(c, "查询成功", result.Entities, EntityMeta{
		CurrentPage:    meta.CurrentPage,
		TotalPages:     meta.TotalPages,
		PerPage:        meta.PerPage,
		TotalEntities:  result.Total,
		CountInactives: result.CountInactives,
		CountActives:   result.CountActives,
	})
}

// ListActive 查询全部启用机构
// @Summary 启用机构列表
// @Tags Entities
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /api/entities/active [get]
func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", items)
}

// Get 机构详情
// @Summary 机构详情
// @Tags Entities
// @Security BearerAuth
// @Produce json
// @Param id path int true "机构 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/entities/{id} [get]
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

// Create 创建机构
// @Summary 创建机构
// @Tags Entities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body entity.Input true "机构信息"
// @Success 201 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/entities [post]
func (h *Handler) Create(c *gin.Context) {
	var input entity.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), input, auth.RequestMeta(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondCreated(c, "机构创建成功", item)
}

// Update 更新机构
// @Summary 更新机构
// @Tags Entities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "机构 ID"
// @Param request body entity.Input true "机构信息"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/entities/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input entity.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, input, auth.RequestMeta(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "机构更新成功", item)
}

// Toggle 切换机构启用状态
// 机构没有物理删除，DELETE 即启用/停用切换
// @Summary 切换机构启用状态
// @Tags Entities
// @Security BearerAuth
// @Produce json
// @Param id path int true "机构 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/entities/{id} [delete]
func (h *Handler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleActive(c.Request.Context(), id, auth.RequestMeta(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	message := "机构已停用"
	if item.IsActive {
		message = "机构已启用"
	}
	common.RespondData(c, message, item)
}

// parseID 解析路径中的机构 ID
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		common.RespondBadRequest(c, "无效的 ID")
		return 0, false
	}
	return id, true
}
