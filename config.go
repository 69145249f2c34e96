package hashmapbench

import (
	"strconv"
)

// DefaultCapacity - Number of inserts per insert measurement, and the number of keys a table
// is populated with ahead of a lookup measurement, when nothing else is given
const DefaultCapacity uint64 = 50000

// DefaultLoop - Number of lookups per lookup measurement when nothing else is given
const DefaultLoop uint64 = 1000000

// Config - Holds the workload dimensions for a benchmark run
//   - Capacity is the number of inserts per insert measurement and the population size ahead of lookup measurements
//   - Loop is the number of lookups per lookup measurement
type Config struct {
	Capacity uint64
	Loop     uint64
}

// NewConfig - Returns a Config holding the default workload dimensions
func NewConfig() Config {
	return Config{Capacity: DefaultCapacity, Loop: DefaultLoop}
}

// ParseArgs - Builds a Config from positional command line arguments. The first argument
// overrides Capacity and the second overrides Loop, anything beyond those two is ignored.
// Zero values are accepted here, the measurements reject them when asked to run.
//   - args are the command line arguments, excluding the program name
//
// It returns:
//   - conf is the resulting configuration
//   - err is of type MalformedArgument if an argument is not an unsigned decimal number
func ParseArgs(args []string) (conf Config, err error) {
	conf = NewConfig()

	if len(args) > 0 {
		conf.Capacity, err = strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			err = MalformedArgument{}
			return
		}
	}

	if len(args) > 1 {
		conf.Loop, err = strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			err = MalformedArgument{}
			return
		}
	}

	return
}
