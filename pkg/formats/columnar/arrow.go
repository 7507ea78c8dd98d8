// Package columnar converts typed columns into Apache Arrow arrays and
// records for in-memory interchange. NA rows become Arrow nulls.
package columnar

import (
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/google/uuid"

	"github.com/ajitpratap0/colvec/pkg/col"
	"github.com/ajitpratap0/colvec/pkg/errors"
	"github.com/ajitpratap0/colvec/pkg/vec"
)

// Arrow types produced for each column kind.
var (
	UUIDType        = &arrow.FixedSizeBinaryType{ByteWidth: 16}
	TimestampType   = &arrow.TimestampType{Unit: arrow.Millisecond, TimeZone: "UTC"}
	CategoricalType = &arrow.DictionaryType{
		IndexType: arrow.PrimitiveTypes.Int32,
		ValueType: arrow.BinaryTypes.String,
	}
)

// ToArrow converts c, one of the col package's column kinds, into an Arrow
// array. The caller owns the result and must Release it. A nil mem uses
// the Go allocator.
//
// Categorical codes outside the domain are exported as nulls.
func ToArrow(mem memory.Allocator, c any) (arrow.Array, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	switch c := c.(type) {
	case *col.CategoricalColumn:
		return categoricalToArrow(mem, c), nil
	case col.Column[float64]:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		appendRows(c.Vector(), col.Float64s, b.Append, b.AppendNull)
		return b.NewArray(), nil
	case col.Column[string]:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		appendRows(c.Vector(), col.Strings, b.Append, b.AppendNull)
		return b.NewArray(), nil
	case col.Column[uuid.UUID]:
		b := array.NewFixedSizeBinaryBuilder(mem, UUIDType)
		defer b.Release()
		appendRows(c.Vector(), col.UUIDs, func(u uuid.UUID) { b.Append(u[:]) }, b.AppendNull)
		return b.NewArray(), nil
	case col.Column[time.Time]:
		b := array.NewTimestampBuilder(mem, TimestampType)
		defer b.Release()
		appendRows(c.Vector(), col.Timestamps, func(t time.Time) {
			b.Append(arrow.Timestamp(t.UnixMilli()))
		}, b.AppendNull)
		return b.NewArray(), nil
	default:
		return nil, errors.New(errors.ErrorTypeData, "unsupported column").
			WithDetail("type", fmt.Sprintf("%T", c))
	}
}

// ToRecord exports several columns of equal length as one Arrow record
// with the given field names. The caller must Release the record.
func ToRecord(mem memory.Allocator, names []string, cols []any) (arrow.Record, error) {
	if len(names) != len(cols) {
		return nil, errors.New(errors.ErrorTypeData, "names and columns differ in length").
			WithDetail("names", len(names)).
			WithDetail("columns", len(cols))
	}

	fields := make([]arrow.Field, 0, len(cols))
	arrays := make([]arrow.Array, 0, len(cols))
	defer func() {
		for _, a := range arrays {
			a.Release()
		}
	}()

	var rows int64 = -1
	for i, c := range cols {
		a, err := ToArrow(mem, c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to export column").
				WithDetail("field", names[i])
		}
		arrays = append(arrays, a)
		if rows >= 0 && int64(a.Len()) != rows {
			return nil, errors.New(errors.ErrorTypeData, "column length mismatch").
				WithDetail("field", names[i]).
				WithDetail("len", a.Len()).
				WithDetail("expected", rows)
		}
		rows = int64(a.Len())
		fields = append(fields, arrow.Field{Name: names[i], Type: a.DataType(), Nullable: true})
	}
	if rows < 0 {
		rows = 0
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, arrays, rows), nil
}

// appendRows walks v partition by partition through t's views.
func appendRows[T any](v *vec.Vector, t col.Type[T], value func(T), null func()) {
	for _, p := range v.Partitions() {
		w := t.NewView(p)
		for i := 0; i < w.Len(); i++ {
			if x, ok := w.Get(i); ok {
				value(x)
			} else {
				null()
			}
		}
	}
}

func categoricalToArrow(mem memory.Allocator, c *col.CategoricalColumn) arrow.Array {
	domain := c.Domain()

	idx := array.NewInt32Builder(mem)
	defer idx.Release()
	appendRows(c.Vector(), col.Categoricals, func(code int) {
		if _, ok := c.Label(code); ok {
			idx.Append(int32(code))
		} else {
			idx.AppendNull()
		}
	}, idx.AppendNull)
	indices := idx.NewArray()
	defer indices.Release()

	db := array.NewStringBuilder(mem)
	defer db.Release()
	db.AppendValues(domain, nil)
	dict := db.NewArray()
	defer dict.Release()

	return array.NewDictionaryArray(CategoricalType, indices, dict)
}
