package activitylogs

import (
	"github.com/gin-gonic/gin"

	"contactcenter/internal/activitylog"
	"contactcenter/internal/common"
)

// Handler 活动日志处理器
type Handler struct {
	service *activitylog.Service
}

// NewHandler 创建活动日志处理器
func NewHandler(service *activitylog.Service) *Handler {
	return &Handler{service: service}
}

// ListQuery 活动日志列表查询参数
type ListQuery struct {
	UserID *uint64 `form:"user_id"`
	Module string  `form:"module"`
	Action string  `form:"action"`
	common.PaginationRequest
}

// List 分页查询活动日志（最新在前）
// @Summary 活动日志列表
// @Tags ActivityLogs
// @Security BearerAuth
// @Produce json
// @Param user_id query int false "操作人 ID"
// @Param module query string false "业务模块"
// @Param action query string false "动作"
// @Param page query int false "页码"
// @Param per_page query int false "每页数量"
// @Success 200 {object} common.ListResponse
// @Failure 400 {object} common.MessageResponse
// @Router /api/config/activity-logs [get]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondBadRequest(c, "分页参数无效")
		return
	}
	q.Normalize(activitylog.DefaultPageSize)

	logs, meta, err := h.service.List(c.Request.Context(), activitylog.Query{
		UserID:            q.UserID,
		Module:            q.Module,
		Action:            q.Action,
		PaginationRequest: q.PaginationRequest,
	})
	if err != nil {
		common.HandleServiceError(c, err)
		return
	}

	common.RespondList(c, "查询成功", logs, meta)
}
