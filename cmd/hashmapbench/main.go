package main

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/gostonefire/hashmapbench"
	"os"
	"strconv"
)

// main - Parses the command line, runs the benchmark suite and prints the report.
//
// Usage: hashmapbench [capacity] [loop]
//
// Both arguments are optional unsigned decimal numbers, capacity defaults to 50000 and loop to
// 1000000. A malformed argument terminates the run with exit status 2 before any measurement
// is made.
func main() {
	conf, err := hashmapbench.ParseArgs(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "hashmapbench: %s\n", err)
		_, _ = fmt.Fprintln(os.Stderr, "usage: hashmapbench [capacity] [loop]")
		os.Exit(2)
	}

	report, err := hashmapbench.Run(conf, nil)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "hashmapbench: %s\n", err)
		os.Exit(1)
	}

	printReport(report)
}

// printReport - Prints the configuration banner and both measurement phases
func printReport(report hashmapbench.Report) {
	fmt.Printf("Running with CAPACITY=%d, LOOP=%d\n", report.Config.Capacity, report.Config.Loop)

	printPhase("Insertion", report.Insertion)
	printPhase("Search", report.Search)
}

// printPhase - Prints the header and the rows of one measurement phase
func printPhase(name string, rows []hashmapbench.Row) {
	fmt.Println()
	color.Cyan(">>>>>>>>>> %s:", name)
	fmt.Println()

	for _, row := range rows {
		fmt.Printf("%-17s Sequential:%.2f ns\tRandom:%.2f ns\tMemory:%s\n",
			fmt.Sprintf("[%s]", row.Label), row.SequentialNs, row.RandomNs, formatMemory(row.HeapBytes))
	}
}

// formatMemory - Formats a heap reading for display. A zero reading comes out as unknown, no
// populated table can actually occupy zero bytes.
func formatMemory(heapBytes uint64) string {
	if heapBytes == 0 {
		return "unknown"
	}

	return strconv.FormatUint(heapBytes, 10)
}
