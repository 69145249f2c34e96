package tables

import "github.com/emirpasic/gods/maps/hashmap"

// Gods - Table backed by the gods hashmap. The backing map stores keys and values as empty
// interfaces, so every Set boxes its arguments and every Get unboxes the result.
type Gods struct {
	m *hashmap.Map
}

// NewGods - Returns a pointer to a new Gods table
func NewGods() *Gods {
	return &Gods{m: hashmap.New()}
}

// Set - Inserts or updates the value under the given key
func (G *Gods) Set(key uint64, value uint64) {
	G.m.Put(key, value)
}

// Has - Reports whether the given key is present
func (G *Gods) Has(key uint64) bool {
	_, ok := G.m.Get(key)
	return ok
}
