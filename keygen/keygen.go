package keygen

// KeyGenerator - Interface for the key stream implementations that drive the benchmark workloads.
// A generator is given its seed at construction time and after that the stream advances only
// through calls to Next, hence two generators constructed with the same non zero seed produce
// identical streams.
type KeyGenerator interface {
	// Next - Returns the next key in the stream and advances the internal state.
	// It never fails and it never ends, the stream is as long as the benchmark cares to pull from it.
	Next() uint64
}
