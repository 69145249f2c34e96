package tables

// Table - Interface that the benchmark measurements use to drive a hash map implementation.
// It deliberately exposes only the two operations that are measured, an upsert by key and a
// lookup by key, so that implementations of very different origins can be timed through the
// exact same surface.
type Table interface {
	// Set - Inserts the value under the given key, or updates the value if the key is already present
	Set(key uint64, value uint64)

	// Has - Reports whether the given key is present in the table
	Has(key uint64) bool
}
