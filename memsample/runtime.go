package memsample

import "runtime"

// Runtime - Sampler that reads the Go runtime memory statistics. It runs a garbage collection
// before reading so the figure reflects live heap at the sample point and not garbage left
// behind by earlier measurements in the same process.
type Runtime struct{}

// HeapBytes - Returns the number of live heap bytes according to the runtime
func (R Runtime) HeapBytes() (heapBytes uint64, ok bool) {
	runtime.GC()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	heapBytes = ms.HeapAlloc
	ok = true

	return
}
