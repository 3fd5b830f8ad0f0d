package contacts

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/auth"
	"contactcenter/internal/common"
	"contactcenter/internal/contact"
)

// Handler 联系人处理器
type Handler struct {
	service *contact.Service
}

// NewHandler 创建联系人处理器
func NewHandler(service *contact.Service) *Handler {
	return &Handler{service: service}
}

// ListQuery 联系人列表查询参数
type ListQuery struct {
	Search string `form:"search"`
	common.PaginationRequest
}

// List 分页查询联系人
// @Summary 联系人列表
// @Tags Contacts
// @Security BearerAuth
// @Produce json
// @Param search query string false "搜索关键字"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/contacts [get]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return
	}
	q.Normalize(contact.DefaultPageSize)

	items, total, err := h.service.List(c.Request.Context(), q.Search, q.Page, q.PageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", items, common.NewResourceMeta(q.Page, q.PageSize, total))
}

// ListActive 查询全部启用联系人
// @Summary 启用联系人列表
// @Tags Contacts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /api/contacts/active [get]
func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", items)
}

// Count 联系人总数
// @Summary 联系人总数
// @Tags Contacts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /api/contacts/count [get]
func (h *Handler) Count(c *gin.Context) {
	total, err := h.service.CountAll(c.Request.Context())
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", gin.H{"count": total})
}

// Get 联系人详情
// @Summary 联系人详情
// @Tags Contacts
// @Security BearerAuth
// @Produce json
// @Param id path int true "联系人 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/contacts/{id} [get]
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

// Create 创建联系人
// @Summary 创建联系人
// @Tags Contacts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body contact.Input true "联系人信息"
// @Success 201 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/contacts [post]
func (h *Handler) Create(c *gin.Context) {
	var input contact.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), input, auth.RequestMeta(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondCreated(c, "联系人创建成功", item)
}

// Update 更新联系人
// @Summary 更新联系人
// @Tags Contacts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "联系人 ID"
// @Param request body contact.Input true "联系人信息"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/contacts/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input contact.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, input, auth.RequestMeta(c))
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "联系人更新成功", item)
}

// Toggle 切换联系人启用状态
// @Summary 切换联系人启用状态
// @Tags Contacts
// @Security BearerAuth
// @Produce json
// @Param id path int true "联系人 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/contacts/{id} [delete]
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

	message := "联系人已停用"
	if item.IsActive {
		message = "联系人已启用"
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
