package tables

import "github.com/alphadose/haxmap"

// haxPreallocation - Number of slots a Hax table preallocates at construction. The backing
// implementation accepts a size hint exactly once, when the map is created, so the adapter
// settles it there and keeps the constructor signature uniform with the other table kinds.
const haxPreallocation = 1 << 10

// Hax - Table backed by the lock free haxmap. The measurements are single threaded, so the
// concurrency machinery of the backing map is carried as pure overhead.
type Hax struct {
	m *haxmap.Map[uint64, uint64]
}

// NewHax - Returns a pointer to a new Hax table
func NewHax() *Hax {
	return &Hax{m: haxmap.New[uint64, uint64](haxPreallocation)}
}

// Set - Inserts or updates the value under the given key
func (H *Hax) Set(key uint64, value uint64) {
	H.m.Set(key, value)
}

// Has - Reports whether the given key is present
func (H *Hax) Has(key uint64) bool {
	_, ok := H.m.Get(key)
	return ok
}
