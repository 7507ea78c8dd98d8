package col

import (
	"context"
	"strconv"

	"github.com/ajitpratap0/colvec/pkg/vec"
)

// Float64Type describes float64 columns. Rows are 64-bit floats; NaN is
// the missing value, so Set(row, NaN) marks the row NA.
type Float64Type struct{}

// Float64s is the float64 descriptor.
var Float64s = Float64Type{}

var _ Type[float64] = Float64Type{}

func (Float64Type) sealed() {}

// Tag returns vec.Float64.
func (Float64Type) Tag() vec.Type { return vec.Float64 }

// NewView binds a float64 view to p.
func (Float64Type) NewView(p *vec.Partition) View[float64] {
	return float64View{partitionView{p}}
}

// NewColumn wraps a float64 vector. Rows format as the shortest decimal
// that round-trips.
func (t Float64Type) NewColumn(v *vec.Vector) Column[float64] {
	return newColumn[float64](t, v, formatFloat64)
}

// Build creates a float64 column of length rows from gen.
func (t Float64Type) Build(ctx context.Context, s Store, length int64, gen Generator[float64]) (Column[float64], error) {
	v, err := makeVector[float64](ctx, s, t, length, gen)
	if err != nil {
		return nil, err
	}
	return t.NewColumn(v), nil
}

func formatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type float64View struct {
	partitionView
}

func (w float64View) Get(i int) (float64, bool) {
	if w.p.IsNA(i) {
		return 0, false
	}
	return w.p.Float64(i), true
}

func (w float64View) Set(i int, v float64) { w.p.SetFloat64(i, v) }
