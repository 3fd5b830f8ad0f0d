package managements

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/auth"
	"contactcenter/internal/common"
	"contactcenter/internal/management"
)

// Handler 处理记录处理器
type Handler struct {
	service *management.Service
}

// NewHandler 创建处理记录处理器
func NewHandler(service *management.Service) *Handler {
	return &Handler{service: service}
}

// ListQuery 处理记录列表查询参数
type ListQuery struct {
	ContactID uint64 `form:"contact_id"`
	common.PaginationRequest
}

// MonitoringRequest 质检关联更新请求
type MonitoringRequest struct {
	MonitoringID uint64 `json:"monitoring_id"`
}

// List 分页查询处理记录
// @Summary 处理记录列表
// @Tags Managements
// @Security BearerAuth
// @Produce json
// @Param contact_id query int false "联系人 ID"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/management [get]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return
	}
	q.Normalize(management.DefaultPageSize)

	items, total, err := h.service.List(c.Request.Context(), q.ContactID, q.Page, q.PageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", items, common.NewResourceMeta(q.Page, q.PageSize, total))
}

// Count 处理记录总数
// @Summary 处理记录总数
// @Tags Managements
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /api/management/count [get]
func (h *Handler) Count(c *gin.Context) {
	total, err := h.service.CountAll(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", gin.H{"count": total})
}

// Get 处理记录详情
// @Summary 处理记录详情
// @Tags Managements
// @Security BearerAuth
// @Produce json
// @Param id path int true "记录 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/management/{id} [get]
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

// Create 创建处理记录
// @Summary 创建处理记录
// @Tags Managements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body management.Input true "处理记录"
// @Success 201 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/management [post]
func (h *Handler) Create(c *gin.Context) {
	var input management.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), input, auth.RequestMeta(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondCreated(c, "处理记录创建成功", item)
}

// Update 更新处理记录
// @Summary 更新处理记录
// @Tags Managements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "记录 ID"
// @Param request body management.Input true "处理记录"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/management/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input management.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, input, auth.RequestMeta(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "处理记录更新成功", item)
}

// UpdateMonitoring 更新质检关联
// @Summary 更新处理记录的质检关联
// @Tags Managements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "记录 ID"
// @Param request body MonitoringRequest true "质检 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/managementmonitoring/{id} [put]
func (h *Handler) UpdateMonitoring(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req MonitoringRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MonitoringID == 0 {
		common.RespondBadRequest(c, "缺少质检 ID")
		return
	}

	item, err := h.service.UpdateMonitoring(c.Request.Context(), id, req.MonitoringID, auth.RequestMeta(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "质检关联更新成功", item)
}

// Delete 删除处理记录
// @Summary 删除处理记录
// @Tags Managements
// @Security BearerAuth
// @Produce json
// @Param id path int true "记录 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/management/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, auth.RequestMeta(c)); err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "处理记录删除成功", nil)
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		common.RespondBadRequest(c, "无效的 ID")
		return 0, false
	}
	return id, true
}
