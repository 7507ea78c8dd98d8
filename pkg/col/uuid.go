package col

import (
	"context"
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/ajitpratap0/colvec/pkg/vec"
)

// UUIDType describes UUID columns, stored as big-endian high and low
// 64-bit halves.
type UUIDType struct{}

// UUIDs is the UUID descriptor.
var UUIDs = UUIDType{}

var _ Type[uuid.UUID] = UUIDType{}

func (UUIDType) sealed() {}

// Tag returns vec.UUID.
func (UUIDType) Tag() vec.Type { return vec.UUID }

// NewView binds a UUID view to p.
func (UUIDType) NewView(p *vec.Partition) View[uuid.UUID] {
	return uuidView{partitionView{p}}
}

// NewColumn wraps a UUID vector. Rows format in canonical hyphenated form.
func (t UUIDType) NewColumn(v *vec.Vector) Column[uuid.UUID] {
	return newColumn[uuid.UUID](t, v, uuid.UUID.String)
}

// Build creates a UUID column of length rows from gen.
func (t UUIDType) Build(ctx context.Context, s Store, length int64, gen Generator[uuid.UUID]) (Column[uuid.UUID], error) {
	v, err := makeVector[uuid.UUID](ctx, s, t, length, gen)
	if err != nil {
		return nil, err
	}
	return t.NewColumn(v), nil
}

func splitUUID(u uuid.UUID) (hi, lo int64) {
	return int64(binary.BigEndian.Uint64(u[:8])), int64(binary.BigEndian.Uint64(u[8:]))
}

func joinUUID(hi, lo int64) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], uint64(hi))
	binary.BigEndian.PutUint64(u[8:], uint64(lo))
	return u
}

type uuidView struct {
	partitionView
}

func (w uuidView) Get(i int) (uuid.UUID, bool) {
	if w.p.IsNA(i) {
		return uuid.Nil, false
	}
	return joinUUID(w.p.Int128(i)), true
}

func (w uuidView) Set(i int, v uuid.UUID) {
	hi, lo := splitUUID(v)
	w.p.SetInt128(i, hi, lo)
}
