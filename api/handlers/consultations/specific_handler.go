package consultations

import (
	"github.com/gin-gonic/gin"

	"contactcenter/internal/common"
	"contactcenter/internal/consultation"
)

// SpecificHandler 咨询细项处理器
type SpecificHandler struct {
	service *consultation.Service
}

// NewSpecificHandler 创建咨询细项处理器
func NewSpecificHandler(service *consultation.Service) *SpecificHandler {
	return &SpecificHandler{service: service}
}

// SpecificListQuery 咨询细项列表查询参数
type SpecificListQuery struct {
	ConsultationID uint64 `form:"consultation_id"`
	common.PaginationRequest
}

// List 分页查询咨询细项
// @Summary 咨询细项列表
// @Tags Specifics
// @Security BearerAuth
// @Produce json
// @Param consultation_id query int false "咨询大类 ID"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/config/specifics [get]
func (h *SpecificHandler) List(c *gin.Context) {
	var q SpecificListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return
	}
	q.Normalize(consultation.DefaultPageSize)

	items, total, err := h.service.ListSpecifics(c.Request.Context(), q.ConsultationID, q.Page, q.PageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", items, common.NewResourceMeta(q.Page, q.PageSize, total))
}

// ListActive 查询启用的咨询细项
// @Summary 启用的咨询细项
// @Tags Specifics
// @Security BearerAuth
// @Produce json
// @Param consultation_id query int false "咨询大类 ID"
// @Success 200 {object} common.MessageResponse
// @Router /api/config/specifics/active [get]
func (h *SpecificHandler) ListActive(c *gin.Context) {
	var q SpecificListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "参数错误")
		return
	}

	items, err := h.service.ListActiveSpecifics(c.Request.Context(), q.ConsultationID)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", items)
}

// Get 咨询细项详情
// @Summary 咨询细项详情
// @Tags Specifics
// @Security BearerAuth
// @Produce json
// @Param id path int true "细项 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/specifics/{id} [get]
func (h *SpecificHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.GetSpecific(c.Request.Context(), id)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", item)
}

// Create 创建咨询细项
// @Summary 创建咨询细项
// @Tags Specifics
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body consultation.SpecificInput true "细项信息"
// @Success 201 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/specifics [post]
func (h *SpecificHandler) Create(c *gin.Context) {
	var input consultation.SpecificInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.CreateSpecific(c.Request.Context(), input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondCreated(c, "咨询细项创建成功", item)
}

// Update 更新咨询细项
// @Summary 更新咨询细项
// @Tags Specifics
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "细项 ID"
// @Param request body consultation.SpecificInput true "细项信息"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/specifics/{id} [put]
func (h *SpecificHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input consultation.SpecificInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.UpdateSpecific(c.Request.Context(), id, input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "咨询细项更新成功", item)
}

// Toggle 切换咨询细项启用状态
// @Summary 切换咨询细项启用状态
// @Tags Specifics
// @Security BearerAuth
// @Produce json
// @Param id path int true "细项 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/specifics/{id} [delete]
func (h *SpecificHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleSpecific(c.Request.Context(), id)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	message := "咨询细项已停用"
	if item.IsActive {
		message = "咨询细项已启用"
	}
	common.RespondData(c, message, item)
}
