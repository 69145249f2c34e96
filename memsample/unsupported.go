package memsample

// Unsupported - Sampler for environments without heap introspection. It never produces a
// reading, which makes the memory column come out as unknown in reports.
type Unsupported struct{}

// HeapBytes - Always returns zero and false
func (U Unsupported) HeapBytes() (heapBytes uint64, ok bool) {
	return 0, false
}
