package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contactcenter/internal/logger"
)

// RequestIDHeader 请求 ID 头名称
const RequestIDHeader = "X-Request-ID"

// RequestID 请求 ID 中间件
// 透传客户端传入的 X-Request-ID，没有则生成一个，
// 并注入请求上下文供日志关联使用。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// 注入上下文，后续通过 logger.WithContext 自动携带
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID 从 Gin 上下文获取请求 ID
func GetRequestID(c *gin.Context) string {
	if requestID, ok := c.Get("request_id"); ok {
		if id, valid := requestID.(string); valid {
			return id
		}
	}
	return ""
}
