package activitylog

import (
	"context"
	"strings"
	"time"

	"contactcenter/internal/auth"
	"contactcenter/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Middleware 活动日志中间件
// 在响应写出后异步落库，不阻塞请求
func Middleware(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		log := &ActivityLog{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			StatusCode: c.Writer.Status(),
			IPAddress:  c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			DurationMs: time.Since(startTime).Milliseconds(),
		}

		if userCtx, ok := auth.GetUserContext(c); ok {
			userID := userCtx.UserID
			log.UserID = &userID
		}

		log.Module, log.Action = inferAction(c.Request.Method, c.Request.URL.Path)

		// 请求上下文在响应后可能已取消，落库使用独立上下文
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := service.Record(ctx, log); err != nil {
				metrics.ActivityLogWritesTotal.WithLabelValues("error").Inc()
				return
			}
			metrics.ActivityLogWritesTotal.WithLabelValues("ok").Inc()
		}()
	}
}

// 按路由前缀识别业务模块
var moduleNames = []string{
	"entities",
	"contacts",
	"managementmonitoring",
	"management",
	"specialcases",
	"consultations",
	"specifics",
	"payrolls",
	"typemanagements",
	"monitorings",
	"users",
	"change-histories",
	"activity-logs",
}

// inferAction 根据请求路径和方法推断模块与动作
func inferAction(method, path string) (string, string) {
	module := "general"
	for _, name := range moduleNames {
		if strings.Contains(path, "/"+name) {
			module = name
			break
		}
	}

	// 认证动作单独命名
	switch {
	case strings.Contains(path, "/login"):
		return "auth", "auth.login"
	case strings.Contains(path, "/logout"):
		return "auth", "auth.logout"
	case strings.Contains(path, "/refresh-token"):
		return "auth", "auth.refresh"
	}

	var verb string
	switch method {
	case "POST":
		verb = "create"
	case "PUT", "PATCH":
		verb = "update"
	case "DELETE":
		verb = "delete"
	default:
		verb = "view"
	}

	return module, module + "." + verb
}
