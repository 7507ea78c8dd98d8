// Package vec is an in-process partitioned vector store. It provides the
// Vector and Partition types, type tags and categorical domains, and a
// Cluster that allocates vectors with a default layout and runs a callback
// once per partition on a bounded worker pool.
package vec

import (
	"sort"

	"github.com/segmentio/ksuid"

	"github.com/ajitpratap0/colvec/pkg/errors"
)

// Vector is an ordered sequence of rows split into disjoint partitions.
// Rows are zero-valued when allocated.
type Vector struct {
	id     string
	typ    Type
	length int64
	parts  []*Partition
	domain []string
}

// New allocates a zero-valued vector of type t whose partitions have the
// given local lengths, in order.
func New(t Type, sizes ...int) *Vector {
	if !t.Valid() {
		panic(errors.Contract("invalid vector type").WithDetail("type", t.String()))
	}
	v := &Vector{
		id:    ksuid.New().String(),
		typ:   t,
		parts: make([]*Partition, 0, len(sizes)),
	}
	for i, n := range sizes {
		if n < 0 {
			panic(errors.Contract("negative partition length").
				WithDetail("partition", i).
				WithDetail("len", n))
		}
		v.parts = append(v.parts, newPartition(i, v.length, n, t.storage()))
		v.length += int64(n)
	}
	return v
}

// ID returns a unique identifier for the vector, for logs.
func (v *Vector) ID() string { return v.id }

// Len returns the total number of rows.
func (v *Vector) Len() int64 { return v.length }

// Type returns the vector's type tag.
func (v *Vector) Type() Type { return v.typ }

// SetType re-stamps the vector. Only tags sharing the current physical
// storage are accepted.
func (v *Vector) SetType(t Type) {
	if !t.Valid() || t.storage() != v.typ.storage() {
		panic(errors.Contract("incompatible type tag").
			WithDetail("type", v.typ.String()).
			WithDetail("requested", t.String()))
	}
	v.typ = t
}

// Domain returns a copy of the categorical labels, or nil.
func (v *Vector) Domain() []string {
	if v.domain == nil {
		return nil
	}
	d := make([]string, len(v.domain))
	copy(d, v.domain)
	return d
}

// SetDomain attaches a copy of labels to a categorical vector.
func (v *Vector) SetDomain(labels []string) {
	if v.typ != Categorical {
		panic(errors.Contract("domain requires a categorical vector").
			WithDetail("type", v.typ.String()))
	}
	d := make([]string, len(labels))
	copy(d, labels)
	v.domain = d
}

// NumPartitions returns the number of partitions.
func (v *Vector) NumPartitions() int { return len(v.parts) }

// Partition returns partition i.
func (v *Vector) Partition(i int) *Partition { return v.parts[i] }

// Partitions returns the partitions in row order.
func (v *Vector) Partitions() []*Partition {
	out := make([]*Partition, len(v.parts))
	copy(out, v.parts)
	return out
}

// Locate resolves a global row to its partition and local row.
func (v *Vector) Locate(row int64) (*Partition, int) {
	if row < 0 || row >= v.length {
		panic(errors.Contract("row out of range").
			WithDetail("row", row).
			WithDetail("len", v.length))
	}
	i := sort.Search(len(v.parts), func(i int) bool {
		p := v.parts[i]
		return p.start+int64(p.n) > row
	})
	p := v.parts[i]
	return p, int(row - p.start)
}

// IsNA reports whether global row row is missing.
func (v *Vector) IsNA(row int64) bool {
	p, i := v.Locate(row)
	return p.IsNA(i)
}
