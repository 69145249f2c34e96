package hashmapbench

import (
	"github.com/gostonefire/hashmapbench/keygen"
	"github.com/gostonefire/hashmapbench/memsample"
	"github.com/gostonefire/hashmapbench/tables"
)

// Display names of the table kinds under test, in the order they appear in reports
const (
	LabelBuiltin = "Builtin Map"
	LabelGods    = "Gods Hash Map"
	LabelSwiss   = "Swiss Map"
	LabelHax     = "Hax Map"
)

// Row - One table kind's results for one phase of a benchmark run
//   - Label is the display name of the table kind
//   - SequentialNs is the mean time per operation in nanoseconds under sequential keys
//   - RandomNs is the mean time per operation in nanoseconds under pseudo random keys
//   - HeapBytes is the heap reading from the pseudo random measurement, zero means the reading could not be taken
type Row struct {
	Label        string
	SequentialNs float64
	RandomNs     float64
	HeapBytes    uint64
}

// Report - The complete outcome of a benchmark run
//   - Config is the configuration the run was performed with
//   - Insertion holds one row per table kind for the insert measurements
//   - Search holds one row per table kind for the lookup measurements
type Report struct {
	Config    Config
	Insertion []Row
	Search    []Row
}

// Run - Performs the full benchmark suite, insert and lookup measurements for every table kind
// under both key distributions. One sequential and one pseudo random key generator are
// constructed up front and shared by all measurements, hence the key streams keep advancing
// from measurement to measurement and lookups never probe the keys their own table was
// populated with.
//   - conf holds the workload dimensions
//   - mem is the heap sampler to use, nil selects the runtime sampler
//
// It returns:
//   - report holds one insertion row and one search row per table kind
//   - err is of type InvalidConfiguration if conf holds a zero capacity or a zero loop
func Run(conf Config, mem memsample.Sampler) (report Report, err error) {
	// Check that every planned measurement has a usable divisor before running any of them
	if conf.Capacity == 0 || conf.Loop == 0 {
		err = InvalidConfiguration{}
		return
	}

	skg := keygen.NewSequential(0)
	rkg := keygen.NewRandom(0)

	report.Config = conf

	var row Row

	// Insertion phase
	row, err = insertRow(LabelBuiltin, tables.NewBuiltin, conf, skg, rkg, mem)
	if err != nil {
		return
	}
	report.Insertion = append(report.Insertion, row)

	row, err = insertRow(LabelGods, tables.NewGods, conf, skg, rkg, mem)
	if err != nil {
		return
	}
	report.Insertion = append(report.Insertion, row)

	row, err = insertRow(LabelSwiss, tables.NewSwiss, conf, skg, rkg, mem)
	if err != nil {
		return
	}
	report.Insertion = append(report.Insertion, row)

	row, err = insertRow(LabelHax, tables.NewHax, conf, skg, rkg, mem)
	if err != nil {
		return
	}
	report.Insertion = append(report.Insertion, row)

	// Search phase
	row, err = findRow(LabelBuiltin, tables.NewBuiltin, conf, skg, rkg, mem)
	if err != nil {
		return
	}
	report.Search = append(report.Search, row)

	row, err = findRow(LabelGods, tables.NewGods, conf, skg, rkg, mem)
	if err != nil {
		return
	}
	report.Search = append(report.Search, row)

	row, err = findRow(LabelSwiss, tables.NewSwiss, conf, skg, rkg, mem)
	if err != nil {
		return
	}
	report.Search = append(report.Search, row)

	row, err = findRow(LabelHax, tables.NewHax, conf, skg, rkg, mem)
	if err != nil {
		return
	}
	report.Search = append(report.Search, row)

	return
}

// insertRow - Measures insert time for one table kind, first under sequential keys and then
// under pseudo random keys, and folds the two outcomes into one report row. The row carries
// the heap reading from the pseudo random measurement.
func insertRow[T tables.Table](
	label string,
	newTable func() T,
	conf Config,
	skg keygen.KeyGenerator,
	rkg keygen.KeyGenerator,
	mem memsample.Sampler,
) (row Row, err error) {

	sequential, err := MeasureInsertTime(newTable, conf.Capacity, skg, mem)
	if err != nil {
		return
	}

	random, err := MeasureInsertTime(newTable, conf.Capacity, rkg, mem)
	if err != nil {
		return
	}

	row = Row{
		Label:        label,
		SequentialNs: sequential.NsPerOp,
		RandomNs:     random.NsPerOp,
		HeapBytes:    random.HeapBytes,
	}

	return
}

// findRow - Measures lookup time for one table kind, first under sequential keys and then
// under pseudo random keys, and folds the two outcomes into one report row. The row carries
// the heap reading from the pseudo random measurement.
func findRow[T tables.Table](
	label string,
	newTable func() T,
	conf Config,
	skg keygen.KeyGenerator,
	rkg keygen.KeyGenerator,
	mem memsample.Sampler,
) (row Row, err error) {

	sequential, err := MeasureFindTime(newTable, conf.Capacity, conf.Loop, skg, mem)
	if err != nil {
		return
	}

	random, err := MeasureFindTime(newTable, conf.Capacity, conf.Loop, rkg, mem)
	if err != nil {
		return
	}

	row = Row{
		Label:        label,
		SequentialNs: sequential.NsPerOp,
		RandomNs:     random.NsPerOp,
		HeapBytes:    random.HeapBytes,
	}

	return
}
