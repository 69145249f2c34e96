package tables

// Builtin - Table backed by the Go runtime map. It is the baseline every other implementation
// is compared against.
type Builtin struct {
	m map[uint64]uint64
}

// NewBuiltin - Returns a pointer to a new Builtin table
func NewBuiltin() *Builtin {
	return &Builtin{m: make(map[uint64]uint64)}
}

// Set - Inserts or updates the value under the given key
func (B *Builtin) Set(key uint64, value uint64) {
	B.m[key] = value
}

// Has - Reports whether the given key is present
func (B *Builtin) Has(key uint64) bool {
	_, ok := B.m[key]
	return ok
}
