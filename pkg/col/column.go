package col

import "github.com/ajitpratap0/colvec/pkg/vec"

// column resolves global rows to partitions and delegates to the
// descriptor's View.
type column[T any] struct {
	v      *vec.Vector
	t      Type[T]
	format func(T) string
}

func newColumn[T any](t Type[T], v *vec.Vector, format func(T) string) *column[T] {
	checkTag(t.Tag(), v)
	return &column[T]{v: v, t: t, format: format}
}

func (c *column[T]) view(row int64) (View[T], int) {
	p, i := c.v.Locate(row)
	return c.t.NewView(p), i
}

func (c *column[T]) Len() int64 { return c.v.Len() }

func (c *column[T]) IsNA(row int64) bool { return c.v.IsNA(row) }

func (c *column[T]) Get(row int64) (T, bool) {
	w, i := c.view(row)
	return w.Get(i)
}

func (c *column[T]) Set(row int64, val T) {
	w, i := c.view(row)
	w.Set(i, val)
}

func (c *column[T]) SetNA(row int64) {
	w, i := c.view(row)
	w.SetNA(i)
}

func (c *column[T]) String(row int64) string {
	val, ok := c.Get(row)
	if !ok {
		return NAString
	}
	return c.format(val)
}

func (c *column[T]) Vector() *vec.Vector { return c.v }
