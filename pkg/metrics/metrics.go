// Package metrics provides Prometheus instrumentation for colvec: partition
// tasks run by the store, rows written by column construction, and build
// latency.
//
// # Basic Usage
//
//	timer := metrics.NewTimer("build")
//	col, err := col.Float64s.Build(ctx, store, n, gen)
//	metrics.BuildDuration.WithLabelValues("float64").Observe(timer.Stop().Seconds())
//
// Recording can be switched off globally with SetEnabled(false); the
// collectors stay registered but the Record helpers become no-ops.
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Task statuses used as the status label of PartitionTasks.
const (
	StatusOK       = "ok"
	StatusPanic    = "panic"
	StatusCanceled = "canceled"
)

var enabled atomic.Bool

func init() {
	enabled.Store(true)
}

// SetEnabled turns recording on or off.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether recording is on.
func Enabled() bool {
	return enabled.Load()
}

var (
	// PartitionTasks counts partition tasks run by the store's map primitive.
	// Labels: type (vector type tag), status (ok/panic/canceled)
	PartitionTasks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colvec_partition_tasks_total",
			Help: "Total number of partition tasks executed",
		},
		[]string{"type", "status"},
	)

	// RowsWritten counts rows populated by parallel construction.
	// Labels: type
	RowsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "colvec_rows_written_total",
			Help: "Total number of rows written by column construction",
		},
		[]string{"type"},
	)

	// BuildDuration tracks the wall time of column construction in seconds.
	// Labels: type
	BuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "colvec_build_duration_seconds",
			Help:    "Column construction latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"type"},
	)
)

// RecordTask records the outcome of one partition task.
func RecordTask(typ, status string) {
	if !Enabled() {
		return
	}
	PartitionTasks.WithLabelValues(typ, status).Inc()
}

// RecordBuild records a finished construction of rows rows.
func RecordBuild(typ string, rows int64, d time.Duration) {
	if !Enabled() {
		return
	}
	RowsWritten.WithLabelValues(typ).Add(float64(rows))
	BuildDuration.WithLabelValues(typ).Observe(d.Seconds())
}

// Timer provides a simple timing mechanism for measuring operation durations.
type Timer struct {
	start time.Time
	name  string
}

// NewTimer creates a new timer and starts timing immediately.
func NewTimer(name string) *Timer {
	return &Timer{
		start: time.Now(),
		name:  name,
	}
}

// Name returns the name the timer was created with.
func (t *Timer) Name() string { return t.name }

// Stop returns the elapsed duration since creation. It can be called
// repeatedly.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}
