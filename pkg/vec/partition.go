package vec

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/ajitpratap0/colvec/pkg/errors"
)

// NA sentinels written into storage alongside the NA mask.
var (
	NAFloat64 = math.NaN()
	NAInt64   = int64(math.MinInt64)
)

// Partition is a contiguous row range of a Vector. Rows are addressed by
// local index in [0, Len()); the global row is Start()+local.
//
// A Partition is not safe for concurrent writes. The map primitive hands
// each partition to exactly one task.
type Partition struct {
	index int
	start int64
	n     int
	kind  storage

	f64 []float64
	i64 []int64 // codes, epoch millis, or the low half of a UUID
	hi  []int64 // high half of a UUID
	str [][]byte

	na *roaring.Bitmap
}

func newPartition(index int, start int64, n int, kind storage) *Partition {
	p := &Partition{
		index: index,
		start: start,
		n:     n,
		kind:  kind,
		na:    roaring.New(),
	}
	switch kind {
	case storageFloat:
		p.f64 = make([]float64, n)
	case storageBytes:
		p.str = make([][]byte, n)
	case storageInt:
		p.i64 = make([]int64, n)
	case storageInt128:
		p.i64 = make([]int64, n)
		p.hi = make([]int64, n)
	}
	return p
}

// Index returns the position of the partition within its vector.
func (p *Partition) Index() int { return p.index }

// Start returns the global row of local row 0.
func (p *Partition) Start() int64 { return p.start }

// Len returns the number of local rows.
func (p *Partition) Len() int { return p.n }

// NACount returns the number of rows marked NA.
func (p *Partition) NACount() int { return int(p.na.GetCardinality()) }

func (p *Partition) check(i int) {
	if i < 0 || i >= p.n {
		panic(errors.Contract("local row out of range").
			WithDetail("row", i).
			WithDetail("len", p.n).
			WithDetail("partition", p.index))
	}
}

func (p *Partition) require(i int, kind storage) {
	if p.kind != kind {
		panic(errors.Contract("partition storage mismatch").
			WithDetail("storage", p.kind.String()).
			WithDetail("requested", kind.String()))
	}
	p.check(i)
}

// IsNA reports whether local row i is missing.
func (p *Partition) IsNA(i int) bool {
	p.check(i)
	return p.na.Contains(uint32(i))
}

// SetNA marks local row i missing and writes the storage sentinel.
func (p *Partition) SetNA(i int) {
	p.check(i)
	p.na.Add(uint32(i))
	switch p.kind {
	case storageFloat:
		p.f64[i] = NAFloat64
	case storageBytes:
		p.str[i] = nil
	case storageInt:
		p.i64[i] = NAInt64
	case storageInt128:
		p.i64[i] = NAInt64
		p.hi[i] = NAInt64
	}
}

func (p *Partition) present(i int) {
	p.na.Remove(uint32(i))
}

// Float64 returns the raw float64 at local row i.
func (p *Partition) Float64(i int) float64 {
	p.require(i, storageFloat)
	return p.f64[i]
}

// SetFloat64 writes v at local row i. NaN is the float64 missing value, so
// writing NaN marks the row NA.
func (p *Partition) SetFloat64(i int, v float64) {
	p.require(i, storageFloat)
	if math.IsNaN(v) {
		p.SetNA(i)
		return
	}
	p.f64[i] = v
	p.present(i)
}

// Int64 returns the raw int64 at local row i.
func (p *Partition) Int64(i int) int64 {
	p.require(i, storageInt)
	return p.i64[i]
}

// SetInt64 writes v at local row i.
func (p *Partition) SetInt64(i int, v int64) {
	p.require(i, storageInt)
	p.i64[i] = v
	p.present(i)
}

// Int128 returns the high and low halves at local row i.
func (p *Partition) Int128(i int) (hi, lo int64) {
	p.require(i, storageInt128)
	return p.hi[i], p.i64[i]
}

// SetInt128 writes both halves at local row i.
func (p *Partition) SetInt128(i int, hi, lo int64) {
	p.require(i, storageInt128)
	p.hi[i] = hi
	p.i64[i] = lo
	p.present(i)
}

// Bytes returns the span stored at local row i. The slice is owned by the
// partition and must not be modified.
func (p *Partition) Bytes(i int) []byte {
	p.require(i, storageBytes)
	return p.str[i]
}

// SetBytes stores a copy of b at local row i.
func (p *Partition) SetBytes(i int, b []byte) {
	p.require(i, storageBytes)
	span := make([]byte, len(b))
	copy(span, b)
	p.str[i] = span
	p.present(i)
}

// SetString stores s at local row i.
func (p *Partition) SetString(i int, s string) {
	p.require(i, storageBytes)
	p.str[i] = []byte(s)
	p.present(i)
}
