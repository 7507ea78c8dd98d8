package col

import (
	"context"
	"time"

	"github.com/ajitpratap0/colvec/pkg/vec"
)

// TimeFormat is the String form of timestamp rows, always rendered in UTC.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// TimeType describes timestamp columns stored as milliseconds since the
// Unix epoch. Reads return UTC times; sub-millisecond precision is dropped
// on write.
type TimeType struct{}

// Timestamps is the timestamp descriptor.
var Timestamps = TimeType{}

var _ Type[time.Time] = TimeType{}

func (TimeType) sealed() {}

// Tag returns vec.Time.
func (TimeType) Tag() vec.Type { return vec.Time }

// NewView binds a timestamp view to p.
func (TimeType) NewView(p *vec.Partition) View[time.Time] {
	return timeView{partitionView{p}}
}

// NewColumn wraps a timestamp vector.
func (t TimeType) NewColumn(v *vec.Vector) Column[time.Time] {
	return newColumn[time.Time](t, v, formatTime)
}

// Build creates a timestamp column of length rows from gen.
func (t TimeType) Build(ctx context.Context, s Store, length int64, gen Generator[time.Time]) (Column[time.Time], error) {
	v, err := makeVector[time.Time](ctx, s, t, length, gen)
	if err != nil {
		return nil, err
	}
	return t.NewColumn(v), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

type timeView struct {
	partitionView
}

func (w timeView) Get(i int) (time.Time, bool) {
	if w.p.IsNA(i) {
		return time.Time{}, false
	}
	return time.UnixMilli(w.p.Int64(i)).UTC(), true
}

func (w timeView) Set(i int, v time.Time) { w.p.SetInt64(i, v.UnixMilli()) }
