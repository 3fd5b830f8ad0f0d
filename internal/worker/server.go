package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"contactcenter/internal/activitylog"
	"contactcenter/internal/config"
	"contactcenter/internal/worker/handlers"
	"contactcenter/internal/worker/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Server 后台任务服务器
// 承载活动日志保留策略等周期性任务
type Server struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
	logger    *zap.Logger
}

func NewServer(
	cfg config.RedisConfig,
	retention config.RetentionConfig,
	logService *activitylog.Service,
	logger *zap.Logger,
) (*Server, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"retention": 2,
				"default":   1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("任务执行失败",
					zap.String("type", task.Type()),
					zap.Error(err),
				)
			}),
		},
	)

	mux := asynq.NewServeMux()

	// 注册活动日志清理处理器
	retentionHandler := handlers.NewRetentionHandler(logService, logger)
	mux.HandleFunc(tasks.TypePruneActivityLogs, retentionHandler.HandlePruneActivityLogs)

	// 周期调度：按配置间隔触发清理
	scheduler := asynq.NewScheduler(redisOpt, nil)
	if retention.ActivityLogDays > 0 {
		intervalHours := retention.IntervalHours
		if intervalHours <= 0 {
			intervalHours = 24
		}

		payload, err := json.Marshal(tasks.PruneActivityLogsPayload{
			RetentionDays: retention.ActivityLogDays,
		})
		if err != nil {
			return nil, fmt.Errorf("序列化清理任务载荷失败: %w", err)
		}

		spec := fmt.Sprintf("@every %dh", intervalHours)
		task := asynq.NewTask(tasks.TypePruneActivityLogs, payload, asynq.Queue("retention"))
		if _, err := scheduler.Register(spec, task); err != nil {
			return nil, fmt.Errorf("注册清理任务失败: %w", err)
		}
	}

	return &Server{
		server:    srv,
		scheduler: scheduler,
		mux:       mux,
		logger:    logger,
	}, nil
}

// Start 非阻塞启动
func (s *Server) Start() error {
	s.logger.Info("Worker 服务器启动中 (后台)...")
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	return s.scheduler.Start()
}

// Shutdown 停止 Worker 服务器
func (s *Server) Shutdown() {
	s.logger.Info("Worker 服务器停止中...")
	s.scheduler.Shutdown()
	s.server.Shutdown()
}
