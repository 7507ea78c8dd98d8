package columnar

import (
	"context"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/colvec/pkg/col"
	"github.com/ajitpratap0/colvec/pkg/errors"
	"github.com/ajitpratap0/colvec/pkg/testutil"
	"github.com/ajitpratap0/colvec/pkg/vec"
)

func TestFloat64ToArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	store := testutil.NewCluster(t, 4, 2)
	c, err := col.Float64s.Build(context.Background(), store, 10, func(row int64) (float64, bool) {
		return float64(row) / 2, row != 3
	})
	require.NoError(t, err)

	arr, err := ToArrow(mem, c)
	require.NoError(t, err)
	defer arr.Release()

	f := arr.(*array.Float64)
	require.Equal(t, 10, f.Len())
	assert.Equal(t, 1, f.NullN())
	assert.True(t, f.IsNull(3))
	assert.Equal(t, 4.5, f.Value(9))
}

func TestTextToArrow(t *testing.T) {
	c := col.Strings.NewColumn(vec.New(vec.Text, 2, 1))
	c.Set(0, "a")
	c.SetNA(1)
	c.Set(2, "")

	arr, err := ToArrow(nil, c)
	require.NoError(t, err)
	defer arr.Release()

	s := arr.(*array.String)
	assert.Equal(t, "a", s.Value(0))
	assert.True(t, s.IsNull(1))
	assert.True(t, s.IsValid(2))
	assert.Equal(t, "", s.Value(2))
}

func TestUUIDToArrow(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	c := col.UUIDs.NewColumn(vec.New(vec.UUID, 2))
	c.Set(0, id)
	c.SetNA(1)

	arr, err := ToArrow(nil, c)
	require.NoError(t, err)
	defer arr.Release()

	b := arr.(*array.FixedSizeBinary)
	assert.Equal(t, id[:], b.Value(0))
	assert.True(t, b.IsNull(1))
}

func TestTimestampToArrow(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := col.Timestamps.NewColumn(vec.New(vec.Time, 2))
	c.Set(0, ts)
	c.SetNA(1)

	arr, err := ToArrow(nil, c)
	require.NoError(t, err)
	defer arr.Release()

	a := arr.(*array.Timestamp)
	assert.Equal(t, arrow.Timestamp(ts.UnixMilli()), a.Value(0))
	assert.True(t, a.IsNull(1))
	assert.Equal(t, arrow.Millisecond, a.DataType().(*arrow.TimestampType).Unit)
}

func TestCategoricalToArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	v := vec.New(vec.Categorical, 4)
	v.SetDomain([]string{"red", "green", "blue"})
	c := col.Categoricals.NewColumn(v)
	c.Set(0, 1)
	c.Set(1, 5)
	c.SetNA(2)
	c.Set(3, 2)

	arr, err := ToArrow(mem, c)
	require.NoError(t, err)
	defer arr.Release()

	d := arr.(*array.Dictionary)
	labels := d.Dictionary().(*array.String)
	assert.Equal(t, "green", labels.Value(d.GetValueIndex(0)))
	assert.True(t, d.IsNull(1))
	assert.True(t, d.IsNull(2))
	assert.Equal(t, "blue", labels.Value(d.GetValueIndex(3)))
}

func TestToArrowUnsupported(t *testing.T) {
	_, err := ToArrow(nil, 42)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))
}

func TestToRecord(t *testing.T) {
	store := testutil.NewCluster(t, 3, 2)
	ctx := context.Background()

	nums, err := col.Float64s.Build(ctx, store, 5, col.Dense(func(row int64) float64 { return float64(row) }))
	require.NoError(t, err)
	names, err := col.Strings.Build(ctx, store, 5, col.Dense(func(row int64) string { return "n" }))
	require.NoError(t, err)

	rec, err := ToRecord(nil, []string{"num", "name"}, []any{nums, names})
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(5), rec.NumRows())
	assert.Equal(t, int64(2), rec.NumCols())
	assert.Equal(t, "num", rec.Schema().Field(0).Name)
	assert.Equal(t, arrow.BinaryTypes.String, rec.Schema().Field(1).Type)
}

func TestToRecordLengthMismatch(t *testing.T) {
	a := col.Float64s.NewColumn(vec.New(vec.Float64, 2))
	b := col.Float64s.NewColumn(vec.New(vec.Float64, 3))

	_, err := ToRecord(nil, []string{"a", "b"}, []any{a, b})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))

	_, err = ToRecord(nil, []string{"a"}, []any{a, b})
	assert.Error(t, err)
}
