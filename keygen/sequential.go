package keygen

// Sequential - Key generator that returns monotonically increasing keys starting at the seed.
// The first key returned is the seed itself.
type Sequential struct {
	counter uint64
}

// NewSequential - Returns a pointer to a new Sequential key generator
//   - seed is the first key the generator will return
func NewSequential(seed uint64) *Sequential {
	return &Sequential{counter: seed}
}

// Next - Returns the next key in the stream and advances the counter by one
func (S *Sequential) Next() (key uint64) {
	key = S.counter
	S.counter++
	return
}
