package api

import (
	"contactcenter/internal/activitylog"
	"contactcenter/internal/auth"
	middlewarepkg "contactcenter/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册全部 API 路由
func RegisterRoutes(router *gin.Engine, container *AppContainer, handlers *Handlers) {
	api := router.Group("/api")
	api.Use(activitylog.Middleware(container.LogService))

	// 公开路由
	api.POST("/login", middlewarepkg.RateLimitMiddleware(container.RateLimiter), handlers.Auth.Login)
	api.POST("/refresh-token", handlers.Auth.Refresh)

	// 认证路由
	protected := api.Group("")
	protected.Use(auth.Middleware(container.JWTService))
	{
		protected.POST("/logout", handlers.Auth.Logout)
		protected.GET("/me", handlers.Auth.Me)

		registerEntityRoutes(protected, handlers)
		registerContactRoutes(protected, handlers)
		registerManagementRoutes(protected, handlers)
		registerSpecialCaseRoutes(protected, handlers)
		registerLookupRoutes(protected, handlers)
		registerConfigRoutes(protected, handlers)
		registerHistoryRoutes(protected, handlers)
	}
}

// registerEntityRoutes 机构路由
func registerEntityRoutes(group *gin.RouterGroup, h *Handlers) {
	entities := group.Group("/entities")
	{
		entities.GET("", h.Entities.List)
		entities.GET("/active", h.Entities.ListActive)
		entities.GET("/:id", h.Entities.Get)
		entities.POST("", h.Entities.Create)
		entities.PUT("/:id", h.Entities.Update)
		entities.DELETE("/:id", h.Entities.Toggle)
	}
}

// registerContactRoutes 联系人路由
func registerContactRoutes(group *gin.RouterGroup, h *Handlers) {
	contacts := group.Group("/contacts")
	{
		contacts.GET("", h.Contacts.List)
		contacts.GET("/active", h.Contacts.ListActive)
		contacts.GET("/count", h.Contacts.Count)
		contacts.GET("/:id", h.Contacts.Get)
		contacts.POST("", h.Contacts.Create)
		contacts.PUT("/:id", h.Contacts.Update)
		contacts.DELETE("/:id", h.Contacts.Toggle)
	}
}

// registerManagementRoutes 处理记录路由
func registerManagementRoutes(group *gin.RouterGroup, h *Handlers) {
	management := group.Group("/management")
	{
		management.GET("", h.Managements.List)
		management.GET("/count", h.Managements.Count)
		management.GET("/:id", h.Managements.Get)
		management.POST("", h.Managements.Create)
		management.PUT("/:id", h.Managements.Update)
		management.DELETE("/:id", h.Managements.Delete)
	}

	// 质检关联单独成路由，沿用前端既有调用路径
	group.PUT("/managementmonitoring/:id", h.Managements.UpdateMonitoring)
}

// registerSpecialCaseRoutes 特殊案件路由
func registerSpecialCaseRoutes(group *gin.RouterGroup, h *Handlers) {
	specialcases := group.Group("/specialcases")
	{
		specialcases.GET("", h.SpecialCases.List)
		specialcases.GET("/count", h.SpecialCases.Count)
		specialcases.GET("/:id", h.SpecialCases.Get)
		specialcases.POST("", h.SpecialCases.Create)
		specialcases.PUT("/:id", h.SpecialCases.Update)
		specialcases.DELETE("/:id", h.SpecialCases.Delete)
	}
}

// registerLookupRoutes 业务侧的只读字典路由
// 表单下拉用，配置维护入口在 /config 下
func registerLookupRoutes(group *gin.RouterGroup, h *Handlers) {
	group.GET("/payrolls", h.Payrolls.List)
	group.GET("/payrolls/active", h.Payrolls.ListActive)
	group.GET("/payrolls/count", h.Payrolls.Count)

	group.GET("/monitorings", h.Monitorings.List)
	group.GET("/monitorings/active", h.Monitorings.ListActive)
	group.GET("/monitorings/:id", h.Monitorings.Get)
}

// registerConfigRoutes 配置型资源路由（用户、字典、咨询分类、活动日志）
func registerConfigRoutes(group *gin.RouterGroup, h *Handlers) {
	config := group.Group("/config")
	{
		users := config.Group("/users")
		{
			users.GET("", h.Users.List)
			users.GET("/:id", h.Users.Get)
			users.POST("", h.Users.Create)
			users.PUT("/:id", h.Users.Update)
			users.DELETE("/:id", h.Users.Toggle)
		}

		payrolls := config.Group("/payrolls")
		{
			payrolls.GET("", h.Payrolls.List)
			payrolls.GET("/active", h.Payrolls.ListActive)
			payrolls.GET("/:id", h.Payrolls.Get)
			payrolls.POST("", h.Payrolls.Create)
			payrolls.PUT("/:id", h.Payrolls.Update)
			payrolls.DELETE("/:id", h.Payrolls.Toggle)
		}

		typemanagements := config.Group("/typemanagements")
		{
			typemanagements.GET("", h.TypeManagements.List)
			typemanagements.GET("/count", h.TypeManagements.Count)
			typemanagements.GET("/active", h.TypeManagements.ListActive)
			typemanagements.GET("/:id", h.TypeManagements.Get)
			typemanagements.POST("", h.TypeManagements.Create)
			typemanagements.PUT("/:id", h.TypeManagements.Update)
			typemanagements.DELETE("/:id", h.TypeManagements.Toggle)
		}

		monitorings := config.Group("/monitorings")
		{
			monitorings.GET("", h.Monitorings.List)
			monitorings.GET("/:id", h.Monitorings.Get)
			monitorings.POST("", h.Monitorings.Create)
			monitorings.PUT("/:id", h.Monitorings.Update)
			monitorings.DELETE("/:id", h.Monitorings.Toggle)
		}

		consultations := config.Group("/consultations")
		{
			consultations.GET("", h.Consultations.List)
			consultations.GET("/active", h.Consultations.ListActive)
			consultations.GET("/:id", h.Consultations.Get)
			consultations.POST("", h.Consultations.Create)
			consultations.PUT("/:id", h.Consultations.Update)
			consultations.DELETE("/:id", h.Consultations.Toggle)
		}

		specifics := config.Group("/specifics")
		{
			specifics.GET("", h.Specifics.List)
			specifics.GET("/active", h.Specifics.ListActive)
			specifics.GET("/:id", h.Specifics.Get)
			specifics.POST("", h.Specifics.Create)
			specifics.PUT("/:id", h.Specifics.Update)
			specifics.DELETE("/:id", h.Specifics.Toggle)
		}

		config.GET("/activity-logs", h.ActivityLogs.List)
	}
}

// registerHistoryRoutes 变更历史路由
func registerHistoryRoutes(group *gin.RouterGroup, h *Handlers) {
	histories := group.Group("/change-histories")
	{
		histories.GET("", h.Histories.List)
		histories.GET("/entity/:type", h.Histories.ListBySubjectType)
		histories.GET("/entity/:type/:id", h.Histories.ListBySubject)
	}
}
