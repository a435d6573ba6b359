package golombcheck

import "testing"

// AssertCompliant verifies that a sequence satisfies all three postulates.
// Returns the report so callers can assert further details.
func AssertCompliant(t *testing.T, sequence string) *Report {
	t.Helper()

	report, err := Analyze(sequence)
	if err != nil {
		t.Fatalf("Failed to analyze sequence: %v", err)
	}

	for p := 1; p <= 3; p++ {
		res := report.Result(p)
		if !res.Compliant {
			t.Errorf("Postulate %d violated for %q:\n  findings: %v",
				p, sequence, res.Findings)
		}
	}

	if report.Compliant() {
		t.Logf("✓ Sequence %q satisfies all three postulates", sequence)
	}

	return report
}

// AssertPostulate verifies the compliance flag of a single postulate.
func AssertPostulate(t *testing.T, sequence string, postulate int, want bool) *Report {
	t.Helper()

	report, err := Analyze(sequence)
	if err != nil {
		t.Fatalf("Failed to analyze sequence: %v", err)
	}

	res := report.Result(postulate)
	if res == nil {
		t.Fatalf("No such postulate: %d (valid: 1..3)", postulate)
	}

	if res.Compliant != want {
		t.Errorf("Postulate %d for %q: compliant = %v, want %v\n  findings: %v\n  warnings: %v",
			postulate, sequence, res.Compliant, want, res.Findings, res.Warnings)
	} else {
		t.Logf("✓ Postulate %d: compliant = %v", postulate, res.Compliant)
	}

	return report
}

// PrintAnalysis outputs the full report to the test log.
func PrintAnalysis(t *testing.T, report *Report) {
	t.Helper()

	t.Logf("\n=== Golomb Postulate Analysis ===")
	t.Logf("Sequence: %s", report.Sequence)
	t.Logf("Bits: total=%d zeros=%d ones=%d",
		report.Data.Bits.Total, report.Data.Bits.Zeros, report.Data.Bits.Ones)
	t.Logf("Runs: %s", runsText(report.Data.Runs.All, " "))

	t.Logf("\nPostulate 1 - bit proportion:")
	t.Logf("  zeros: %.2f%%  ones: %.2f%%  minimum: %.2f%%",
		report.Proportion.ZeroPercent, report.Proportion.OnePercent, report.Proportion.MinPercent)

	t.Logf("\nPostulate 2 - run-length frequencies:")
	t.Logf("  sizes: %v  counts: %v", report.Data.Freq.All.Sizes(), report.Data.Freq.All.Counts())

	t.Logf("\nPostulate 3 - structural patterns:")
	t.Logf("  zero-run sizes: %v", report.Data.Sizes.Zeros)
	t.Logf("  one-run sizes:  %v", report.Data.Sizes.Ones)

	for p := 1; p <= 3; p++ {
		res := report.Result(p)
		if res.Compliant {
			t.Logf("\n✓ Postulate %d holds", p)
		} else {
			t.Logf("\n✗ Postulate %d violated", p)
		}
		for _, finding := range res.Findings {
			t.Logf("  finding: %s", finding)
		}
		for _, warning := range res.Warnings {
			t.Logf("  warning: %s", warning)
		}
	}
}
