package col

import (
	"context"

	"github.com/ajitpratap0/colvec/pkg/vec"
)

// TextType describes string columns stored as byte spans. The empty
// string is a value, distinct from NA.
type TextType struct{}

// Strings is the text descriptor.
var Strings = TextType{}

var _ Type[string] = TextType{}

func (TextType) sealed() {}

// Tag returns vec.Text.
func (TextType) Tag() vec.Type { return vec.Text }

// NewView binds a text view to p.
func (TextType) NewView(p *vec.Partition) View[string] {
	return textView{partitionView{p}}
}

// NewColumn wraps a text vector. Rows format as the text itself.
func (t TextType) NewColumn(v *vec.Vector) Column[string] {
	return newColumn[string](t, v, func(s string) string { return s })
}

// Build creates a text column of length rows from gen.
func (t TextType) Build(ctx context.Context, s Store, length int64, gen Generator[string]) (Column[string], error) {
	v, err := makeVector[string](ctx, s, t, length, gen)
	if err != nil {
		return nil, err
	}
	return t.NewColumn(v), nil
}

type textView struct {
	partitionView
}

// Get copies the span into a new string on every call.
func (w textView) Get(i int) (string, bool) {
	if w.p.IsNA(i) {
		return "", false
	}
	return string(w.p.Bytes(i)), true
}

func (w textView) Set(i int, v string) { w.p.SetString(i, v) }
