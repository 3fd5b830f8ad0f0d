package api

import (
	"net/http"
	"time"

	_ "contactcenter/api/docs"
	activitylogHandlers "contactcenter/api/handlers/activitylogs"
	authHandlers "contactcenter/api/handlers/auth"
	consultationHandlers "contactcenter/api/handlers/consultations"
	contactHandlers "contactcenter/api/handlers/contacts"
	entityHandlers "contactcenter/api/handlers/entities"
	historyHandlers "contactcenter/api/handlers/histories"
	managementHandlers "contactcenter/api/handlers/managements"
	monitoringHandlers "contactcenter/api/handlers/monitorings"
	payrollHandlers "contactcenter/api/handlers/payrolls"
	specialcaseHandlers "contactcenter/api/handlers/specialcases"
	typemanagementHandlers "contactcenter/api/handlers/typemanagements"
	userHandlers "contactcenter/api/handlers/users"

	"contactcenter/internal/activitylog"
	"contactcenter/internal/auth"
	"contactcenter/internal/common"
	"contactcenter/internal/config"
	"contactcenter/internal/consultation"
	"contactcenter/internal/contact"
	"contactcenter/internal/entity"
	"contactcenter/internal/history"
	"contactcenter/internal/infra"
	"contactcenter/internal/logger"
	"contactcenter/internal/management"
	"contactcenter/internal/metrics"
	middlewarepkg "contactcenter/internal/middleware"
	"contactcenter/internal/monitoring"
	"contactcenter/internal/payroll"
	"contactcenter/internal/specialcase"
	"contactcenter/internal/typemanagement"
	"contactcenter/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// AppContainer 应用依赖容器
type AppContainer struct {
	DB          *gorm.DB
	JWTService  *auth.JWTService
	LogService  *activitylog.Service
	RateLimiter *middlewarepkg.RateLimiter
}

// Handlers 全部 HTTP 处理器
type Handlers struct {
	Auth            *authHandlers.Handler
	Entities        *entityHandlers.Handler
	Contacts        *contactHandlers.Handler
	Managements     *managementHandlers.Handler
	SpecialCases    *specialcaseHandlers.Handler
	Consultations   *consultationHandlers.ConsultationHandler
	Specifics       *consultationHandlers.SpecificHandler
	Payrolls        *payrollHandlers.Handler
	TypeManagements *typemanagementHandlers.Handler
	Monitorings     *monitoringHandlers.Handler
	Users           *userHandlers.Handler
	Histories       *historyHandlers.Handler
	ActivityLogs    *activitylogHandlers.Handler
}

// SetupRouter 组装路由和后台 Worker
func SetupRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) (*gin.Engine, *worker.Server, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewarepkg.RequestID())
	router.Use(metrics.PrometheusMiddleware())

	// 认证服务
	// 显式转为接口，避免 *redis.Client 为 nil 时产生非空接口值
	var blacklist redis.UniversalClient
	if redisClient != nil {
		blacklist = redisClient
	}
	jwtService := auth.NewJWTService(
		cfg.Auth.JWTSecret,
		cfg.Auth.Issuer,
		time.Duration(cfg.Auth.AccessExpiryHours)*time.Hour,
		time.Duration(cfg.Auth.RefreshExpiryHours)*time.Hour,
		blacklist,
	)
	authService := auth.NewService(db, jwtService)

	// 变更历史：先有账本和记录器，再挂业务服务
	historyService := history.NewService(db)
	recorder := history.NewRecorder(historyService, logger.Get())

	entityService := entity.NewService(db, recorder)
	contactService := contact.NewService(db, recorder)
	managementService := management.NewService(db, recorder)
	specialcaseService := specialcase.NewService(db, recorder)
	consultationService := consultation.NewService(db)
	payrollService := payroll.NewService(db)
	typemanagementService := typemanagement.NewService(db)
	monitoringService := monitoring.NewService(db)
	logService := activitylog.NewService(db)

	// 后台 Worker：活动日志保留策略
	workerServer, err := worker.NewServer(cfg.Redis, cfg.Retention, logService, logger.Get())
	if err != nil {
		return nil, nil, err
	}

	container := &AppContainer{
		DB:          db,
		JWTService:  jwtService,
		LogService:  logService,
		RateLimiter: middlewarepkg.NewRateLimiter(middlewarepkg.DefaultRateLimiterConfig()),
	}

	handlers := &Handlers{
		Auth:            authHandlers.NewHandler(authService),
		Entities:        entityHandlers.NewHandler(entityService),
		Contacts:        contactHandlers.NewHandler(contactService),
		Managements:     managementHandlers.NewHandler(managementService),
		SpecialCases:    specialcaseHandlers.NewHandler(specialcaseService),
		Consultations:   consultationHandlers.NewConsultationHandler(consultationService),
		Specifics:       consultationHandlers.NewSpecificHandler(consultationService),
		Payrolls:        payrollHandlers.NewHandler(payrollService),
		TypeManagements: typemanagementHandlers.NewHandler(typemanagementService),
		Monitorings:     monitoringHandlers.NewHandler(monitoringService),
		Users:           userHandlers.NewHandler(authService),
		Histories:       historyHandlers.NewHandler(historyService),
		ActivityLogs:    activitylogHandlers.NewHandler(logService),
	}

	RegisterRoutes(router, container, handlers)

	// 运维端点
	router.GET("/health", healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router, workerServer, nil
}

// healthCheck 健康检查
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} common.MessageResponse
// @Router /health [get]
func healthCheck(c *gin.Context) {
	if err := infra.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, common.MessageResponse{Message: "数据库不可用"})
		return
	}
	common.RespondData(c, "ok", nil)
}
