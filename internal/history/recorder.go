package history

import (
	"context"
	"reflect"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Meta 变更来源信息，由 HTTP 层显式传入
type Meta struct {
	ActorID   *uint64
	IPAddress string
	UserAgent string
}

// Recorder 变更捕获器，把业务操作转换成变更历史记录
//
// 写入失败只记日志不向调用方传播：业务可用性优先于审计完整性。
// 对同一主体的并发更新会产生交错但各自真实的差异记录。
type Recorder struct {
	service *Service
	logger  *zap.Logger
}

// NewRecorder 创建变更捕获器
func NewRecorder(service *Service, logger *zap.Logger) *Recorder {
	return &Recorder{service: service, logger: logger}
}

// OnCreated 记录创建动作，new_values 为完整快照
func (r *Recorder) OnCreated(ctx context.Context, subjectType string, subjectID uint64, snapshot map[string]interface{}, meta Meta) {
	r.append(ctx, &ChangeHistory{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Action:      ActionCreated,
		OldValues:   datatypes.JSONMap{},
		NewValues:   datatypes.JSONMap(snapshot),
	}, meta)
}

// OnUpdated 记录更新动作
// 对前后快照计算对称差异：old_values 和 new_values 只包含发生变化的字段，
// 且键集合完全一致。即使差异为空也照常写入一条记录。
func (r *Recorder) OnUpdated(ctx context.Context, subjectType string, subjectID uint64, before, after map[string]interface{}, meta Meta) {
	oldValues, newValues := Diff(before, after)

	r.append(ctx, &ChangeHistory{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Action:      ActionUpdated,
		OldValues:   datatypes.JSONMap(oldValues),
		NewValues:   datatypes.JSONMap(newValues),
	}, meta)
}

// OnDeleted 记录物理删除动作，old_values 为删除前的完整快照
func (r *Recorder) OnDeleted(ctx context.Context, subjectType string, subjectID uint64, snapshot map[string]interface{}, meta Meta) {
	r.append(ctx, &ChangeHistory{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Action:      ActionDeleted,
		OldValues:   datatypes.JSONMap(snapshot),
		NewValues:   datatypes.JSONMap{},
	}, meta)
}

// append 写入记录，失败时仅记录警告日志
func (r *Recorder) append(ctx context.Context, record *ChangeHistory, meta Meta) {
	record.ActorID = meta.ActorID
	record.IPAddress = meta.IPAddress
	record.UserAgent = meta.UserAgent

	if err := r.service.Append(ctx, record); err != nil {
		r.logger.Warn("变更历史写入失败",
			zap.String("subject_type", record.SubjectType),
			zap.Uint64("subject_id", record.SubjectID),
			zap.String("action", record.Action),
			zap.Error(err),
		)
	}
}

// Diff 计算前后快照的对称差异
// 返回的两个 map 键集合一致，只包含取值发生变化（含新增、移除）的字段
func Diff(before, after map[string]interface{}) (map[string]interface{}, map[string]interface{}) {
	oldValues := make(map[string]interface{})
	newValues := make(map[string]interface{})

	for key, oldVal := range before {
		newVal, exists := after[key]
		if !exists {
			oldValues[key] = oldVal
			newValues[key] = nil
			continue
		}
		if !reflect.DeepEqual(oldVal, newVal) {
			oldValues[key] = oldVal
			newValues[key] = newVal
		}
	}

	for key, newVal := range after {
		if _, exists := before[key]; !exists {
			oldValues[key] = nil
			newValues[key] = newVal
		}
	}

	return oldValues, newValues
}
