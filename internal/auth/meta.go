package auth

import (
	"github.com/gin-gonic/gin"

	"contactcenter/internal/history"
)

// RequestMeta 从请求上下文提取变更来源信息（操作人、IP、UA）
func RequestMeta(c *gin.Context) history.Meta {
	meta := history.Meta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	if userCtx, ok := GetUserContext(c); ok {
		actorID := userCtx.UserID
		meta.ActorID = &actorID
	}

	return meta
}
