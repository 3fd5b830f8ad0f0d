package consultations

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/common"
	"contactcenter/internal/consultation"
)

// ConsultationHandler 咨询大类处理器
type ConsultationHandler struct {
	service *consultation.Service
}

// NewConsultationHandler 创建咨询大类处理器
func NewConsultationHandler(service *consultation.Service) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

// List 分页查询咨询大类
// @Summary 咨询大类列表
// @Tags Consultations
// @Security BearerAuth
// @Produce json
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/config/consultations [get]
func (h *ConsultationHandler) List(c *gin.Context) {
	var q common.PaginationRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return
	}
	q.Normalize(consultation.DefaultPageSize)

	items, total, err := h.service.ListConsultations(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", items, common.NewResourceMeta(q.Page, q.PageSize, total))
}

// ListActive 查询启用的咨询大类及其启用细项
// @Summary 启用的咨询大类
// @Tags Consultations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /api/config/consultations/active [get]
func (h *ConsultationHandler) ListActive(c *gin.Context) {
	items, err := h.service.ListActiveConsultations(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", items)
}

// Get 咨询大类详情
// @Summary 咨询大类详情
// @Tags Consultations
// @Security BearerAuth
// @Produce json
// @Param id path int true "大类 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/consultations/{id} [get]
func (h *ConsultationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.GetConsultation(c.Request.Context(), id)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", item)
}

// Create 创建咨询大类
// @Summary 创建咨询大类
// @Tags Consultations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body consultation.ConsultationInput true "大类信息"
// @Success 201 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/consultations [post]
func (h *ConsultationHandler) Create(c *gin.Context) {
	var input consultation.ConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.CreateConsultation(c.Request.Context(), input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondCreated(c, "咨询大类创建成功", item)
}

// Update 更新咨询大类
// @Summary 更新咨询大类
// @Tags Consultations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "大类 ID"
// @Param request body consultation.ConsultationInput true "大类信息"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/consultations/{id} [put]
func (h *ConsultationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input consultation.ConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.UpdateConsultation(c.Request.Context(), id, input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "咨询大类更新成功", item)
}

// Toggle 切换咨询大类启用状态
// @Summary 切换咨询大类启用状态
// @Tags Consultations
// @Security BearerAuth
// @Produce json
// @Param id path int true "大类 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/consultations/{id} [delete]
func (h *ConsultationHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.ToggleConsultation(c.Request.Context(), id)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	message := "咨询大类已停用"
	if item.IsActive {
		message = "咨询大类已启用"
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
