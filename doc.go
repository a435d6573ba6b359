// Package golombcheck evaluates binary sequences against Golomb's three
// randomness postulates.
//
// # Overview
//
// A bit sequence that "looks random" should balance its zeros and ones,
// favor short runs over long ones, and avoid structural patterns. The
// three postulates capture those heuristics:
//
//  1. Proportion: the shares of zeros and ones must both stay near 50%,
//     within a length-dependent tolerance.
//  2. Frequency ordering: runs of size n must be strictly more frequent
//     than runs of size n+1.
//  3. Pattern absence: no repeated block groups, no one run size
//     dominating, no long same-size streaks, no mirrored subsequences,
//     and no shared sub-patterns between the zero-run and one-run views.
//
// These are fixed empirical heuristics, not statistical hypothesis tests:
// the package certifies nothing cryptographic.
//
// # Quick Start
//
// Analyze an existing sequence:
//
//	report, err := golombcheck.Analyze("100101110010")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("compliant:", report.Compliant())
//	for _, finding := range report.Postulate3.Findings {
//	    fmt.Println("finding:", finding)
//	}
//
// Or generate a sequence that satisfies selected postulates:
//
//	seq, report, err := golombcheck.GenerateSatisfying(64, []int{1, 2, 3}, 0)
//	var exhausted *golombcheck.GenerationExhaustedError
//	if errors.As(err, &exhausted) {
//	    // No sample passed within the attempt cap; retry with a longer
//	    // length or a smaller selection.
//	}
//
// # Run Decomposition
//
// Every check works on the run decomposition of the sequence: maximal
// blocks of identical bits, held in three parallel views.
//
//	Decompose("100110101")
//	    all   runs: 1 00 11 0 1 0 1
//	    zeros runs: 00 0 0
//	    ones  runs: 1 11 1 1
//
// Concatenating the all view reproduces the sequence; the zeros and ones
// views partition it. Decompose is exported so callers that already need
// the run data (generation, rendering) can reuse it.
//
// # Findings vs Warnings
//
// Each postulate yields a PostulateResult with two ordered message lists.
// Findings invalidate the postulate ("relevant" problems); warnings flag
// borderline structure without affecting compliance. Severity thresholds
// live in one place (severity.go) so the constants stay auditable.
//
// # Testing
//
// The package ships assertion helpers in the style of its test suite:
//
//	func TestMySequence(t *testing.T) {
//	    report := golombcheck.AssertCompliant(t, mySequence)
//	    golombcheck.PrintAnalysis(t, report)
//	}
//
// # The CLI
//
// cmd/golombcheck wraps the package in an interactive terminal tool:
// analyze a sequence, generate random or constrained sequences, and
// render the full colored report. The core stays pure; all I/O lives in
// the binary.
package golombcheck
