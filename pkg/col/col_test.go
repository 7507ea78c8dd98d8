package col

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/colvec/pkg/testutil"
	"github.com/ajitpratap0/colvec/pkg/vec"
)

func TestFloat64RoundTrip(t *testing.T) {
	c := Float64s.NewColumn(vec.New(vec.Float64, 3, 4))

	values := []float64{0, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1), 1e-300}
	for row, v := range values {
		c.Set(int64(row), v)
		got, ok := c.Get(int64(row))
		require.True(t, ok, "row %d", row)
		assert.Equal(t, v, got, "row %d", row)
		assert.False(t, c.IsNA(int64(row)))
	}
}

func TestFloat64NA(t *testing.T) {
	c := Float64s.NewColumn(vec.New(vec.Float64, 2))

	c.Set(0, 3)
	c.SetNA(0)
	_, ok := c.Get(0)
	assert.False(t, ok)
	assert.True(t, c.IsNA(0))
	assert.Equal(t, NAString, c.String(0))

	c.Set(1, math.NaN())
	assert.True(t, c.IsNA(1))
}

func TestFloat64String(t *testing.T) {
	c := Float64s.NewColumn(vec.New(vec.Float64, 3))
	c.Set(0, 84)
	c.Set(1, 2.5)
	c.Set(2, -0.125)

	assert.Equal(t, "84", c.String(0))
	assert.Equal(t, "2.5", c.String(1))
	assert.Equal(t, "-0.125", c.String(2))
}

func TestTextRoundTrip(t *testing.T) {
	c := Strings.NewColumn(vec.New(vec.Text, 2, 2))

	values := []string{"", "hello", "ünïcödé", string([]byte{0, 1, 2})}
	for row, v := range values {
		c.Set(int64(row), v)
		got, ok := c.Get(int64(row))
		require.True(t, ok)
		assert.Equal(t, v, got)
		assert.Equal(t, v, c.String(int64(row)))
	}

	c.SetNA(0)
	_, ok := c.Get(0)
	assert.False(t, ok)
	assert.Equal(t, NAString, c.String(0))
}

func TestTextReadsAreIndependent(t *testing.T) {
	c := Strings.NewColumn(vec.New(vec.Text, 2))
	c.Set(0, "first")
	c.Set(1, "second")

	a, _ := c.Get(0)
	b, _ := c.Get(1)
	assert.Equal(t, "first", a)
	assert.Equal(t, "second", b)
}

func TestUUIDRoundTrip(t *testing.T) {
	c := UUIDs.NewColumn(vec.New(vec.UUID, 5))

	values := []uuid.UUID{
		uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"),
		uuid.MustParse("80000000-0000-0000-8000-000000000000"),
		uuid.Nil,
		uuid.New(),
	}
	for row, v := range values {
		c.Set(int64(row), v)
		got, ok := c.Get(int64(row))
		require.True(t, ok)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", c.String(0))

	c.SetNA(2)
	_, ok := c.Get(2)
	assert.False(t, ok)
	assert.Equal(t, NAString, c.String(2))
}

func TestSplitUUID(t *testing.T) {
	u := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	hi, lo := splitUUID(u)
	assert.Equal(t, int64(0x123e4567e89b12d3), hi)
	assert.Equal(t, u, joinUUID(hi, lo))
}

func TestTimestampRoundTrip(t *testing.T) {
	c := Timestamps.NewColumn(vec.New(vec.Time, 4))

	values := []time.Time{
		time.Date(2024, 3, 1, 12, 30, 45, 123_000_000, time.UTC),
		time.UnixMilli(0).UTC(),
		time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC),
		time.Date(2262, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for row, v := range values {
		c.Set(int64(row), v)
		got, ok := c.Get(int64(row))
		require.True(t, ok)
		assert.True(t, v.Equal(got), "row %d: %v != %v", row, v, got)
	}

	assert.Equal(t, "2024-03-01T12:30:45.123Z", c.String(0))
	assert.Equal(t, "1970-01-01T00:00:00.000Z", c.String(1))

	c.SetNA(3)
	assert.True(t, c.IsNA(3))
	assert.Equal(t, NAString, c.String(3))
}

func TestTimestampNormalizesZone(t *testing.T) {
	c := Timestamps.NewColumn(vec.New(vec.Time, 1))
	zone := time.FixedZone("UTC+2", 2*60*60)
	c.Set(0, time.Date(2024, 3, 1, 14, 0, 0, 999_999, zone))

	got, _ := c.Get(0)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, "2024-03-01T12:00:00.000Z", c.String(0))
}

func TestZeroInitializedRowsArePresent(t *testing.T) {
	f := Float64s.NewColumn(vec.New(vec.Float64, 1))
	v, ok := f.Get(0)
	assert.True(t, ok)
	assert.Zero(t, v)

	s := Strings.NewColumn(vec.New(vec.Text, 1))
	text, ok := s.Get(0)
	assert.True(t, ok)
	assert.Empty(t, text)
}

func TestViewsUseLocalRows(t *testing.T) {
	v := vec.New(vec.Float64, 2, 3)
	p := v.Partition(1)
	w := Float64s.NewView(p)

	assert.Equal(t, 3, w.Len())
	w.Set(0, 7)
	w.SetNA(2)

	c := Float64s.NewColumn(v)
	got, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, 7.0, got)
	assert.True(t, c.IsNA(4))
	assert.True(t, w.IsNA(2))
	_, ok = w.Get(2)
	assert.False(t, ok)
}

func TestNewColumnTagMismatch(t *testing.T) {
	testutil.RequireContractPanic(t, func() { Float64s.NewColumn(vec.New(vec.Text, 1)) })
	testutil.RequireContractPanic(t, func() { Strings.NewColumn(vec.New(vec.Float64, 1)) })
	testutil.RequireContractPanic(t, func() { UUIDs.NewColumn(vec.New(vec.Time, 1)) })
	testutil.RequireContractPanic(t, func() { Timestamps.NewColumn(vec.New(vec.Categorical, 1)) })
	testutil.RequireContractPanic(t, func() { Float64s.NewColumn(nil) })

	err := testutil.RequireContractPanic(t, func() { Categoricals.NewColumn(vec.New(vec.Time, 1)) })
	assert.Equal(t, "time", err.Details["type"])
	assert.Equal(t, "categorical", err.Details["expected"])
}

func TestOutOfBoundsRows(t *testing.T) {
	c := Float64s.NewColumn(vec.New(vec.Float64, 2))
	testutil.RequireContractPanic(t, func() { c.Get(2) })
	testutil.RequireContractPanic(t, func() { c.Set(-1, 1) })

	w := Strings.NewView(vec.New(vec.Text, 2).Partition(0))
	testutil.RequireContractPanic(t, func() { w.Get(2) })
	testutil.RequireContractPanic(t, func() { w.Set(3, "x") })
}

func TestColumnVectorIsShared(t *testing.T) {
	v := vec.New(vec.Float64, 2)
	a := Float64s.NewColumn(v)
	b := Float64s.NewColumn(v)

	a.Set(1, 9)
	got, ok := b.Get(1)
	require.True(t, ok)
	assert.Equal(t, 9.0, got)
	assert.Same(t, v, a.Vector())
	assert.Equal(t, int64(2), b.Len())
}
