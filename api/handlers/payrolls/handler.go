package payrolls

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/common"
	"contactcenter/internal/payroll"
)

// Handler 发薪单位处理器
type Handler struct {
	service *payroll.Service
}

// NewHandler 创建发薪单位处理器
func NewHandler(service *payroll.Service) *Handler {
	return &Handler{service: service}
}

// List 分页查询发薪单位
// @Summary 发薪单位列表
// @Tags Payrolls
// @Security BearerAuth
// @Produce json
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/config/payrolls [get]
func (h *Handler) List(c *gin.Context) {
	var q common.PaginationRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return
	}
	q.Normalize(payroll.DefaultPageSize)

	items, total, err := h.service.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", items, common.NewResourceMeta(q.Page, q.PageSize, total))
}

// ListActive 查询启用的发薪单位
// @Summary 启用的发薪单位
// @Tags Payrolls
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /api/config/payrolls/active [get]
func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", items)
}

// Count 统计发薪单位总数
// @Summary 发薪单位总数
// @Tags Payrolls
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /api/payrolls/count [get]
func (h *Handler) Count(c *gin.Context) {
	total, err := h.service.CountAll(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", gin.H{"count": total})
}

// Get 发薪单位详情
// @Summary 发薪单位详情
// @Tags Payrolls
// @Security BearerAuth
// @Produce json
// @Param id path int true "发薪单位 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/payrolls/{id} [get]
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

// Create 创建发薪单位
// @Summary 创建发薪单位
// @Tags Payrolls
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body payroll.Input true "发薪单位信息"
// @Success 201 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/payrolls [post]
func (h *Handler) Create(c *gin.Context) {
	var input payroll.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondCreated(c, "发薪单位创建成功", item)
}

// Update 更新发薪单位
// @Summary 更新发薪单位
// @Tags Payrolls
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "发薪单位 ID"
// @Param request body payroll.Input true "发薪单位信息"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/payrolls/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input payroll.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "发薪单位更新成功", item)
}

// Toggle 切换发薪单位启用状态
// @Summary 切换发薪单位启用状态
// @Tags Payrolls
// @Security BearerAuth
// @Produce json
// @Param id path int true "发薪单位 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/payrolls/{id} [delete]
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

	message := "发薪单位已停用"
	if item.IsActive {
		message = "发薪单位已启用"
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
