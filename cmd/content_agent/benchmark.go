package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marisa/content-optimizer/internal/benchmark"
	"github.com/marisa/content-optimizer/internal/types"
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Aggregate statistical benchmarks from a competitor sample file",
	Long:  "Aggregate precise statistical benchmarks from a JSON file holding exactly five competitor records, and write a benchmarks JSON that validates against the precise_benchmarks schema.",
	RunE:  runBenchmark,
}

var (
	benchmarkInputFile  string
	benchmarkOutputFile string
)

func init() {
	benchmarkCmd.Flags().StringVarP(&benchmarkInputFile, "in", "i", "", "Path to competitor records JSON file (required)")
	benchmarkCmd.Flags().StringVarP(&benchmarkOutputFile, "out", "o", "", "Path to output benchmarks JSON file (required)")
	_ = benchmarkCmd.MarkFlagRequired("in")
	_ = benchmarkCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(_ *cobra.Command, _ []string) error {
	var competitors []types.CompetitorRecord
	if err := readJSONFile(benchmarkInputFile, &competitors); err != nil {
		return err
	}

	benchmarks, err := benchmark.NewAggregator().CalculateBenchmarks(competitors)
	if err != nil {
		return fmt.Errorf("failed to calculate benchmarks: %w", err)
	}

	if err := writeJSONArtifact(benchmarkOutputFile, benchmarks, "precise_benchmarks.schema.json"); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully aggregated benchmarks from %d competitors\n", len(competitors))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", benchmarkOutputFile)

	return nil
}
