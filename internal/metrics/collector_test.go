package metrics

import (
	"database/sql"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// TestRecordDBStats 测试连接池状态写入指标
func TestRecordDBStats(t *testing.T) {
	recordDBStats(sql.DBStats{
		OpenConnections: 5,
		InUse:           2,
		Idle:            3,
	})

	assert.Equal(t, 5.0, testutil.ToFloat64(DBConnections.WithLabelValues("open")))
	assert.Equal(t, 2.0, testutil.ToFloat64(DBConnections.WithLabelValues("in_use")))
	assert.Equal(t, 3.0, testutil.ToFloat64(DBConnections.WithLabelValues("idle")))

	// 连接释放后指标跟随下降
	recordDBStats(sql.DBStats{OpenConnections: 1, InUse: 0, Idle: 1})
	assert.Equal(t, 1.0, testutil.ToFloat64(DBConnections.WithLabelValues("open")))
	assert.Equal(t, 0.0, testutil.ToFloat64(DBConnections.WithLabelValues("in_use")))
}
