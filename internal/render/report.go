package render

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/kpitt/sudokucore/internal/bench"
)

// CompareTable prints a side-by-side benchmark comparison: labeled stat
// lines in distinct colors for each algorithm's single- and multi-worker
// results.
func CompareTable(entries []bench.CompareEntry) {
	color.HiCyan("Benchmark Comparison")
	color.HiCyan("=====================")
	for _, e := range entries {
		fmt.Printf("\n%s\n", color.HiYellowString("%s", e.Algorithm))
		printStatsLine("single-worker", e.Single.Stats)
		fmt.Printf("  %s %s\n", color.HiWhiteString("multi-worker wall:"),
			color.HiGreenString("%.3fms", e.Multi.WallTimeMS))
		fmt.Printf("  %s %s\n", color.HiWhiteString("multi-worker throughput:"),
			color.HiGreenString("%.2f/s", e.Multi.TotalThroughput))
		for _, w := range e.Multi.PerWorker {
			fmt.Printf("    worker %d: ", w.WorkerIndex)
			printStatsLine("", w.Stats)
		}
	}
}

func printStatsLine(label string, s bench.Stats) {
	if label != "" {
		fmt.Printf("  %s\n", color.HiWhiteString(label))
	}
	fmt.Printf("    min=%s max=%s mean=%s median=%s stddev=%s throughput=%s\n",
		color.HiBlueString("%.3fms", s.Min),
		color.HiRedString("%.3fms", s.Max),
		color.HiGreenString("%.3fms", s.Mean),
		color.HiGreenString("%.3fms", s.Median),
		color.HiMagentaString("%.3fms", s.StdDev),
		color.HiYellowString("%.2f/s", s.Throughput),
	)
}
