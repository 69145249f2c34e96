package hashmapbench

import (
	"fmt"
	"github.com/gostonefire/hashmapbench/internal/stopwatch"
	"github.com/gostonefire/hashmapbench/keygen"
	"github.com/gostonefire/hashmapbench/memsample"
	"github.com/gostonefire/hashmapbench/tables"
	"runtime"
)

// Measurement - The outcome of one timed measurement over one freshly constructed table
//   - NsPerOp is the mean wall clock time per operation in nanoseconds
//   - HeapBytes is the heap reading taken right after the timed region, zero means the reading could not be taken
type Measurement struct {
	NsPerOp   float64
	HeapBytes uint64
}

// MeasureInsertTime - Measures the mean time per insert over a freshly constructed table.
// A new table is built by newTable, filled with capacity keys pulled from keys, and the wall
// clock time for the whole fill is divided by capacity. The heap is sampled once the timing
// has stopped, while the filled table is still live.
//   - newTable is a factory returning an empty table, it is invoked exactly once per call
//   - capacity is the number of inserts to perform and the divisor for the mean
//   - keys is the generator supplying the key workload, its stream keeps advancing across calls
//   - mem is the heap sampler to use, nil selects the runtime sampler
//
// It returns:
//   - measurement holds the mean insert time and the heap reading
//   - err is of type InvalidConfiguration if capacity is zero, or a standard error on missing arguments
func MeasureInsertTime[T tables.Table](
	newTable func() T,
	capacity uint64,
	keys keygen.KeyGenerator,
	mem memsample.Sampler,
) (
	measurement Measurement,
	err error,
) {

	// Check that the mean can be formed at all, before any table is constructed or timed
	if capacity == 0 {
		err = InvalidConfiguration{}
		return
	}

	// Check presence of the collaborators that have no sensible default
	if newTable == nil {
		err = fmt.Errorf("newTable can not be nil, every measurement needs a fresh table")
		return
	}
	if keys == nil {
		err = fmt.Errorf("keys can not be nil, a measurement makes no sense without a workload")
		return
	}

	if mem == nil {
		mem = memsample.Runtime{}
	}

	table := newTable()

	sw := stopwatch.Start()
	for i := uint64(0); i < capacity; i++ {
		table.Set(keys.Next(), 0)
	}
	seconds := sw.Seconds()

	heapBytes, ok := mem.HeapBytes()
	if !ok {
		heapBytes = 0
	}

	// Keep the filled table reachable until the sample has been taken
	runtime.KeepAlive(table)

	measurement = Measurement{
		NsPerOp:   seconds / float64(capacity) * 1e9,
		HeapBytes: heapBytes,
	}

	return
}

// MeasureFindTime - Measures the mean time per lookup over a freshly constructed and populated
// table. A new table is built by newTable and filled with capacity keys outside the timed
// region, then loop lookups are timed and the wall clock time is divided by loop. Population
// and lookups pull from the same advancing stream, so the lookups probe keys the population
// never stored and the measured path is effectively the miss path. The heap is sampled once
// the timing has stopped, while the populated table is still live.
//   - newTable is a factory returning an empty table, it is invoked exactly once per call
//   - capacity is the number of keys the table is populated with before timing starts, zero is legal and leaves the table empty
//   - loop is the number of lookups to perform and the divisor for the mean
//   - keys is the generator supplying the key workload, its stream keeps advancing across calls
//   - mem is the heap sampler to use, nil selects the runtime sampler
//
// It returns:
//   - measurement holds the mean lookup time and the heap reading
//   - err is of type InvalidConfiguration if loop is zero, or a standard error on missing arguments
func MeasureFindTime[T tables.Table](
	newTable func() T,
	capacity uint64,
	loop uint64,
	keys keygen.KeyGenerator,
	mem memsample.Sampler,
) (
	measurement Measurement,
	err error,
) {

	// Check that the mean can be formed at all, before any table is constructed or timed
	if loop == 0 {
		err = InvalidConfiguration{}
		return
	}

	// Check presence of the collaborators that have no sensible default
	if newTable == nil {
		err = fmt.Errorf("newTable can not be nil, every measurement needs a fresh table")
		return
	}
	if keys == nil {
		err = fmt.Errorf("keys can not be nil, a measurement makes no sense without a workload")
		return
	}

	if mem == nil {
		mem = memsample.Runtime{}
	}

	table := newTable()

	// Populate outside the timed region
	for i := uint64(0); i < capacity; i++ {
		table.Set(keys.Next(), 0)
	}

	sw := stopwatch.Start()
	for i := uint64(0); i < loop; i++ {
		table.Has(keys.Next())
	}
	seconds := sw.Seconds()

	heapBytes, ok := mem.HeapBytes()
	if !ok {
		heapBytes = 0
	}

	// Keep the populated table reachable until the sample has been taken
	runtime.KeepAlive(table)

	measurement = Measurement{
		NsPerOp:   seconds / float64(loop) * 1e9,
		HeapBytes: heapBytes,
	}

	return
}
