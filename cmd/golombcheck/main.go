package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"golombcheck"
)

var (
	verbose bool

	genLength      int
	genPostulates  []int
	genMaxAttempts int

	rootCmd = &cobra.Command{
		Use:   "golombcheck",
		Short: "Analyze binary sequences against Golomb's randomness postulates",
		Long: `golombcheck checks whether a bit sequence "looks random" under
Golomb's three postulates: balanced bit proportion, decreasing
run-length frequencies and the absence of structural patterns.

Run without arguments for the interactive menu, or use the analyze
and generate subcommands directly.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{
					Level:      level,
					TimeFormat: "15:04:05",
				}),
			))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.OutOrStdout())
		},
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze <sequence>",
		Short: "Analyze one sequence and print the full report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0])
		},
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a random sequence, optionally postulate-constrained",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log each analysis step")

	generateCmd.Flags().IntVarP(&genLength, "length", "l", 32,
		"sequence length in bits")
	generateCmd.Flags().IntSliceVarP(&genPostulates, "postulates", "p", nil,
		"postulates the sequence must satisfy (subset of 1,2,3)")
	generateCmd.Flags().IntVar(&genMaxAttempts, "max-attempts", 0,
		"retry cap for constrained generation (0 = default)")

	rootCmd.AddCommand(analyzeCmd, generateCmd)
}

func runAnalyze(cmd *cobra.Command, sequence string) error {
	slog.Debug("analyzing sequence", "length", len(sequence))

	report, err := golombcheck.Analyze(sequence)
	if err != nil {
		var invalidErr *golombcheck.InvalidSequenceError
		if errors.As(err, &invalidErr) {
			return fmt.Errorf("invalid sequence %q: only bits are allowed, e.g. 100101101", sequence)
		}
		return err
	}

	renderReport(cmd.OutOrStdout(), report)
	return nil
}

func runGenerate(cmd *cobra.Command) error {
	if genLength < 1 {
		return fmt.Errorf("length must be at least 1, got %d", genLength)
	}
	for _, p := range genPostulates {
		if p < 1 || p > 3 {
			return fmt.Errorf("postulate numbers must be 1, 2 or 3, got %d", p)
		}
	}

	out := cmd.OutOrStdout()

	if len(genPostulates) == 0 {
		sequence := golombcheck.RandomSequence(genLength)
		fmt.Fprintf(out, "Random sequence: %s\n", sequence)
		return nil
	}

	slog.Debug("generating constrained sequence",
		"length", genLength, "postulates", genPostulates)
	start := time.Now()

	sequence, report, err := golombcheck.GenerateSatisfying(genLength, genPostulates, genMaxAttempts)
	if err != nil {
		return err
	}
	slog.Debug("sequence accepted", "elapsed", time.Since(start))

	fmt.Fprintf(out, "Sequence: %s\n", sequence)
	renderReport(out, report)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
