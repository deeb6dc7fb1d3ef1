package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marisa/content-optimizer/internal/benchmark"
	"github.com/marisa/content-optimizer/internal/types"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Derive exact optimization targets from a benchmarks file",
	Long:  "Derive exact content optimization targets from a benchmarks JSON file, and write a targets JSON that validates against the exact_targets schema.",
	RunE:  runTargets,
}

var (
	targetsInputFile  string
	targetsOutputFile string
)

func init() {
	targetsCmd.Flags().StringVarP(&targetsInputFile, "in", "i", "", "Path to benchmarks JSON file (required)")
	targetsCmd.Flags().StringVarP(&targetsOutputFile, "out", "o", "", "Path to output targets JSON file (required)")
	_ = targetsCmd.MarkFlagRequired("in")
	_ = targetsCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(targetsCmd)
}

func runTargets(_ *cobra.Command, _ []string) error {
	var benchmarks types.PreciseBenchmarks
	if err := readJSONFile(targetsInputFile, &benchmarks); err != nil {
		return err
	}

	targets := benchmark.DeriveTargets(&benchmarks)

	if err := writeJSONArtifact(targetsOutputFile, targets, "exact_targets.schema.json"); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully derived targets: %d words at %.3f%% density\n",
		targets.TargetWordCount, targets.TargetKeywordDensity)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", targetsOutputFile)

	return nil
}
