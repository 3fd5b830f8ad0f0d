package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"contactcenter/internal/metrics"
	"contactcenter/internal/worker/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ActivityLogPruner 活动日志清理抽象，便于注入 mock
type ActivityLogPruner interface {
	PruneOlderThan(ctx context.Context, retentionDays int) (int64, error)
}

type RetentionHandler struct {
	pruner ActivityLogPruner
	logger *zap.Logger
}

func NewRetentionHandler(pruner ActivityLogPruner, logger *zap.Logger) *RetentionHandler {
	return &RetentionHandler{
		pruner: pruner,
		logger: logger,
	}
}

func (h *RetentionHandler) HandlePruneActivityLogs(ctx context.Context, t *asynq.Task) error {
	var p tasks.PruneActivityLogsPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("json unmarshal failed: %w", err)
	}

	if p.RetentionDays <= 0 {
		h.logger.Info("活动日志保留期为永久，跳过清理")
		return nil
	}

	h.logger.Info("开始清理过期活动日志", zap.Int("retention_days", p.RetentionDays))

	deleted, err := h.pruner.PruneOlderThan(ctx, p.RetentionDays)
	if err != nil {
		h.logger.Error("活动日志清理失败",
			zap.Int("retention_days", p.RetentionDays),
			zap.Error(err),
		)
		return err
	}

	metrics.ActivityLogPrunedTotal.Add(float64(deleted))
	h.logger.Info("活动日志清理完成",
		zap.Int("retention_days", p.RetentionDays),
		zap.Int64("deleted", deleted),
	)
	return nil
}
