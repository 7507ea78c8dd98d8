// Package col provides typed, missing-value aware access to partitioned
// vectors and the parallel construction of new vectors from a per-row
// generator.
//
// Each logical type has one descriptor: Float64s, Strings, Categoricals,
// UUIDs and Timestamps. A descriptor binds Views to single partitions for
// per-partition work, wraps whole vectors into Columns addressed by global
// row, and builds new columns:
//
//	c, err := col.Float64s.Build(ctx, cluster, 10000, col.Dense(func(i int64) float64 {
//	    return float64(i) * 2
//	}))
//	v, ok := c.Get(42) // 84, true
//
// Reads report missing rows with ok == false; SetNA marks a row missing.
package col

import (
	"context"

	"github.com/ajitpratap0/colvec/pkg/errors"
	"github.com/ajitpratap0/colvec/pkg/vec"
)

// NAString is the String form of a missing row for every type except
// categorical.
const NAString = "(N/A)"

// Generator produces the value of a global row. Returning ok == false
// makes the row NA. Generators passed to Build are called concurrently
// from several goroutines and must depend only on row.
type Generator[T any] func(row int64) (value T, ok bool)

// Dense adapts a function without missing values into a Generator.
func Dense[T any](f func(row int64) T) Generator[T] {
	return func(row int64) (T, bool) {
		return f(row), true
	}
}

// Store is the vector store used by Build: it allocates zero-valued
// vectors with its default layout and runs a callback once per partition,
// returning after all of them finish. *vec.Cluster implements it.
type Store interface {
	MakeZero(length int64, t vec.Type) *vec.Vector
	Map(ctx context.Context, v *vec.Vector, fn vec.MapFunc) (*vec.Vector, error)
}

// Type describes one logical column type. The set of implementations is
// closed: Float64Type, TextType, CategoricalType, UUIDType and TimeType.
type Type[T any] interface {
	// Tag is the vector type tag this descriptor reads and writes.
	Tag() vec.Type
	// NewView binds a View to p.
	NewView(p *vec.Partition) View[T]
	// NewColumn wraps v, which must carry Tag().
	NewColumn(v *vec.Vector) Column[T]
	// Build allocates a vector of length rows in s, fills every row from
	// gen in parallel, and wraps the result.
	Build(ctx context.Context, s Store, length int64, gen Generator[T]) (Column[T], error)

	sealed()
}

// View is a typed cursor over one partition, addressed by local row.
// Views are bound per task and must not outlive their partition.
type View[T any] interface {
	Len() int
	IsNA(i int) bool
	Get(i int) (T, bool)
	Set(i int, v T)
	SetNA(i int)
}

// Column is a typed handle over a whole vector, addressed by global row.
// It references the vector without owning it.
type Column[T any] interface {
	Len() int64
	IsNA(row int64) bool
	Get(row int64) (T, bool)
	Set(row int64, v T)
	SetNA(row int64)
	// String formats a row; see the descriptor for the per-type form.
	String(row int64) string
	// Vector returns the underlying vector.
	Vector() *vec.Vector
}

func checkTag(want vec.Type, v *vec.Vector) {
	if v == nil {
		panic(errors.Contract("nil vector"))
	}
	if got := v.Type(); got != want {
		panic(errors.Contract("vector type tag mismatch").
			WithDetail("vector_id", v.ID()).
			WithDetail("type", got.String()).
			WithDetail("expected", want.String()))
	}
}

// partitionView carries the operations shared by every View.
type partitionView struct {
	p *vec.Partition
}

func (w partitionView) Len() int        { return w.p.Len() }
func (w partitionView) IsNA(i int) bool { return w.p.IsNA(i) }
func (w partitionView) SetNA(i int)     { w.p.SetNA(i) }
