package memsample

// Sampler - Interface for taking a point in time reading of how much heap memory the process
// holds. A measurement asks for one reading right after its timed region, sitting on whatever
// the table under test has allocated.
type Sampler interface {
	// HeapBytes - Returns the number of heap bytes currently allocated.
	// It returns:
	//   - heapBytes is the sampled value, only meaningful when ok is true
	//   - ok is false when the environment offers no way to take the reading
	HeapBytes() (heapBytes uint64, ok bool)
}
