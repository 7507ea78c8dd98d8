package col

import (
	"context"
	"strconv"

	"github.com/ajitpratap0/colvec/pkg/errors"
	"github.com/ajitpratap0/colvec/pkg/vec"
)

// CategoricalNAString is the String form of a missing categorical row.
const CategoricalNAString = "NA"

// CategoricalType describes categorical columns: each row is an integer
// code into the vector's domain of labels.
type CategoricalType struct{}

// Categoricals is the categorical descriptor.
var Categoricals = CategoricalType{}

var _ Type[int] = CategoricalType{}

func (CategoricalType) sealed() {}

// Tag returns vec.Categorical.
func (CategoricalType) Tag() vec.Type { return vec.Categorical }

// NewView binds a code view to p.
func (CategoricalType) NewView(p *vec.Partition) View[int] {
	return codeView{partitionView{p}}
}

// NewColumn wraps a categorical vector, capturing a copy of its domain.
// The vector must have a non-empty domain.
func (t CategoricalType) NewColumn(v *vec.Vector) Column[int] {
	return t.newCategorical(v)
}

func (t CategoricalType) newCategorical(v *vec.Vector) *CategoricalColumn {
	base := newColumn[int](t, v, strconv.Itoa)
	domain := v.Domain()
	if len(domain) == 0 {
		panic(errors.Contract("categorical column requires a domain").
			WithDetail("vector_id", v.ID()))
	}
	return &CategoricalColumn{column: base, domain: domain}
}

// Build always panics: a categorical column needs a domain. Use
// BuildWithDomain.
func (CategoricalType) Build(context.Context, Store, int64, Generator[int]) (Column[int], error) {
	panic(errors.Contract("categorical column requires a domain"))
}

// BuildWithDomain creates a categorical column of length rows from gen
// and attaches domain to the new vector.
func (t CategoricalType) BuildWithDomain(ctx context.Context, s Store, length int64, domain []string, gen Generator[int]) (*CategoricalColumn, error) {
	if len(domain) == 0 {
		panic(errors.Contract("categorical column requires a domain"))
	}
	v, err := makeVector[int](ctx, s, t, length, gen)
	if err != nil {
		return nil, err
	}
	v.SetDomain(domain)
	return t.newCategorical(v), nil
}

// CategoricalColumn is a Column of codes that formats rows through its
// domain.
type CategoricalColumn struct {
	*column[int]
	domain []string
}

var _ Column[int] = (*CategoricalColumn)(nil)

// Domain returns a copy of the labels captured at construction.
func (c *CategoricalColumn) Domain() []string {
	d := make([]string, len(c.domain))
	copy(d, c.domain)
	return d
}

// Label returns the label of code, or false when code is outside the domain.
func (c *CategoricalColumn) Label(code int) (string, bool) {
	if code < 0 || code >= len(c.domain) {
		return "", false
	}
	return c.domain[code], true
}

// String returns the row's label. Codes outside the domain format as the
// decimal code, and NA rows as CategoricalNAString.
func (c *CategoricalColumn) String(row int64) string {
	code, ok := c.Get(row)
	if !ok {
		return CategoricalNAString
	}
	if label, ok := c.Label(code); ok {
		return label
	}
	return strconv.Itoa(code)
}

type codeView struct {
	partitionView
}

func (w codeView) Get(i int) (int, bool) {
	if w.p.IsNA(i) {
		return 0, false
	}
	return int(w.p.Int64(i)), true
}

func (w codeView) Set(i int, v int) { w.p.SetInt64(i, int64(v)) }
