package tables

import "github.com/cockroachdb/swiss"

// Swiss - Table backed by the cockroachdb open addressing swiss table. The backing
// implementation requires an initial capacity at construction, the adapter fixes it to zero
// so that the table starts at its minimum size and grows on demand, just like the other
// table kinds do.
type Swiss struct {
	m *swiss.Map[uint64, uint64]
}

// NewSwiss - Returns a pointer to a new Swiss table
func NewSwiss() *Swiss {
	return &Swiss{m: swiss.New[uint64, uint64](0)}
}

// Set - Inserts or updates the value under the given key
func (S *Swiss) Set(key uint64, value uint64) {
	S.m.Put(key, value)
}

// Has - Reports whether the given key is present
func (S *Swiss) Has(key uint64) bool {
	_, ok := S.m.Get(key)
	return ok
}
