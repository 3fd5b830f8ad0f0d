package users

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"contactcenter/internal/auth"
	"contactcenter/internal/common"
)

// Handler 用户管理处理器
type Handler struct {
	service *auth.Service
}

// NewHandler 创建用户管理处理器
func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

// ListQuery 用户列表查询参数
type ListQuery struct {
	Search string `form:"search"`
	common.PaginationRequest
}

// List 分页查询用户
// @Summary 用户列表
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param search query string false "按姓名或邮箱搜索"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/config/users [get]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "查询参数无效")
		return
	}
	q.Normalize(auth.DefaultUserPageSize)

	users, total, err := h.service.ListUsers(c.Request.Context(), q.Search, q.Page, q.PageSize)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", users, common.NewResourceMeta(q.Page, q.PageSize, total))
}

// Get 用户详情
// @Summary 用户详情
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "用户 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "查询成功", user)
}

// Create 创建用户
// @Summary 创建用户
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body auth.UserInput true "用户信息"
// @Success 201 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/users [post]
func (h *Handler) Create(c *gin.Context) {
	var input auth.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondCreated(c, "用户创建成功", user)
}

// Update 更新用户资料
// @Summary 更新用户
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "用户 ID"
// @Param request body auth.UserInput true "用户信息，密码留空则不变"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/config/users/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input auth.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, input)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}
	common.RespondData(c, "用户更新成功", user)
}

// Toggle 切换用户启用状态
// @Summary 切换用户启用状态
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "用户 ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.MessageResponse
// @Router /api/config/users/{id} [delete]
func (h *Handler) Toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.service.ToggleUser(c.Request.Context(), id)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	message := "用户已停用"
	if user.IsActive {
		message = "用户已启用"
	}
	common.RespondData(c, message, user)
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		common.RespondBadRequest(c, "无效的 ID")
		return 0, false
	}
	return id, true
}
