package specialcases

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/auth"
	"contactcenter/internal/common"
	"contactcenter/internal/specialcase"
)

// Handler 特殊案件处理器
type Handler struct {
	service *specialcase.Service
}

// NewHandler 创建特殊案件处理器
func NewHandler(service *specialcase.Service) *Handler {
	return &Handler{service: service}
}

// ListQuery 特殊案件列表查询参数
type ListQuery struct {
	Status string `form:"status"`
	common.PaginationRequest
}

// List 分页查询特殊案件
// @Summary 特殊案件列表
// @Tags SpecialCases
// @Security BearerAuth
// @Produce json
// @Param status query string false "案件状态"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/specialcases [get]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return
	}
	q.Normalize(specialcase.DefaultPageSize)

	items, total, err := h.service.List(c.Request.Context(), q.Status, q.Page, q.PageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", items, common.NewResourceMeta(q.Page, q.PageSize, total))
}

// Count 特殊案件总数
// @Summary 特殊案件总数
// @Tags SpecialCases
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /api/specialcases/count [get]
func (h *Handler) Count(c *gin.Context) {
	total, err := h.service.CountAll(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", gin.H{"count": total})
}

// Get 特殊案件详情
// @Summary 特殊案件详情
// @Tags SpecialCases
// @Security BearerAuth
// @Produce json
// @Param id path int true "案件 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/specialcases/{id} [get]
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

// Create 创建特殊案件
// @Summary 创建特殊案件
// @Tags SpecialCases
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body specialcase.Input true "案件信息"
// @Success 201 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/specialcases [post]
func (h *Handler) Create(c *gin.Context) {
	var input specialcase.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), input, auth.RequestMeta(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondCreated(c, "特殊案件创建成功", item)
}

// Update 更新特殊案件
// @Summary 更新特殊案件
// @Tags SpecialCases
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "案件 ID"
// @Param request body specialcase.Input true "案件信息"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/specialcases/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input specialcase.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, input, auth.RequestMeta(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "特殊案件更新成功", item)
}

// Delete 删除特殊案件
// @Summary 删除特殊案件
// @Tags SpecialCases
// @Security BearerAuth
// @Produce json
// @Param id path int true "案件 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/specialcases/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, auth.RequestMeta(c)); err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "特殊案件删除成功", nil)
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		common.RespondBadRequest(c, "无效的 ID")
		return 0, false
	}
	return id, true
}
