package vec

import "fmt"

// Type is the physical type tag stamped on a Vector. It fixes how every row
// of the vector is stored.
type Type uint8

const (
	// Invalid is the zero Type and is never stamped on a vector.
	Invalid Type = iota
	// Float64 rows hold one float64.
	Float64
	// Text rows hold a variable-length byte span.
	Text
	// Categorical rows hold an int64 code into the vector's domain.
	Categorical
	// UUID rows hold two int64 halves (high, low).
	UUID
	// Time rows hold int64 milliseconds since the Unix epoch.
	Time
)

var typeNames = [...]string{
	Invalid:     "invalid",
	Float64:     "float64",
	Text:        "text",
	Categorical: "categorical",
	UUID:        "uuid",
	Time:        "time",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Valid reports whether t is one of the defined tags.
func (t Type) Valid() bool {
	return t >= Float64 && t <= Time
}

// storage is the physical layout backing a type tag.
type storage uint8

const (
	storageNone storage = iota
	storageFloat
	storageBytes
	storageInt
	storageInt128
)

var storageNames = [...]string{
	storageNone:   "none",
	storageFloat:  "float64",
	storageBytes:  "bytes",
	storageInt:    "int64",
	storageInt128: "int128",
}

func (s storage) String() string { return storageNames[s] }

func (t Type) storage() storage {
	switch t {
	case Float64:
		return storageFloat
	case Text:
		return storageBytes
	case Categorical, Time:
		return storageInt
	case UUID:
		return storageInt128
	default:
		return storageNone
	}
}
