package auth

import (
	"github.com/gin-gonic/gin"

	"contactcenter/internal/auth"
	"contactcenter/internal/common"
	"contactcenter/internal/metrics"
)

// Handler 认证处理器
type Handler struct {
	service *auth.Service
}

// NewHandler 创建认证处理器
func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

// RefreshRequest 刷新令牌请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login 登录
// @Summary 凭证登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body auth.LoginInput true "登录凭证"
// @Success 200 {object} common.MessageResponse
// @Failure 401 {object} common.MessageResponse
// @Failure 422 {object} common.ValidationErrorResponse
// @Router /api/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input auth.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespondBadRequest(c, "参数错误: "+err.Error())
		return
	}

	pair, user, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
		common.HandleServiceError(c, err)
		return
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	common.RespondData(c, "登录成功", gin.H{
		"user":   user,
		"tokens": pair,
	})
}

// Logout 注销
// @Summary 注销当前令牌
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Failure 401 {object} common.MessageResponse
// @Router /api/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	userCtx, ok := auth.GetUserContext(c)
	if !ok {
		common.RespondUnauthorized(c, "")
		return
	}

	if err := h.service.Logout(c.Request.Context(), userCtx.Token); err != nil {
		common.RespondServerError(c, "注销失败")
		return
	}

	common.RespondData(c, "注销成功", nil)
}

// Me 当前用户信息
// @Summary 获取当前登录用户
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Failure 401 {object} common.MessageResponse
// @Router /api/me [get]
func (h *Handler) Me(c *gin.Context) {
	userCtx, ok := auth.GetUserContext(c)
	if !ok {
		common.RespondUnauthorized(c, "")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userCtx.UserID)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondData(c, "查询成功", user)
}

// Refresh 刷新令牌
// @Summary 用刷新令牌换取新令牌对
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "刷新令牌"
// @Success 200 {object} common.MessageResponse
// @Failure 401 {object} common.MessageResponse
// @Router /api/refresh-token [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		common.RespondBadRequest(c, "缺少刷新令牌")
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondData(c, "刷新成功", pair)
}
