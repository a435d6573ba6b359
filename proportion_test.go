package golombcheck

import (
	"math"
	"testing"
)

func TestMinPercentageCurve(t *testing.T) {
	cases := []struct {
		length int
		want   float64
	}{
		{1, 40.0},
		{5, 40.0},
		{10, 40.0},   // End of the flat floor
		{11, 40.5},   // Linear segment: 0.5*11 + 35
		{15, 42.5},
		{20, 45.0},   // End of the linear segment
		{21, 45.10},  // Log segment: 41.6 + 1.15*ln(21)
		{100, 46.90}, // 41.6 + 1.15*ln(100)
		{1000, 49.54},
		{1001, 49.0}, // Flat ceiling
		{100000, 49.0},
	}

	for _, tc := range cases {
		got := MinPercentage(tc.length)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("MinPercentage(%d) = %.2f, want %.2f", tc.length, got, tc.want)
		}
	}
}

func TestProportionUniformSequenceFails(t *testing.T) {
	// All one bit value: 0% vs 100% against a 40% floor.
	report := AssertPostulate(t, "0000000000", 1, false)

	if len(report.Postulate1.Findings) != 1 {
		t.Errorf("findings: got %d, want 1 (only the zero-percent side violates)",
			len(report.Postulate1.Findings))
	}
	if report.Proportion.ZeroPercent != 100.0 || report.Proportion.OnePercent != 0.0 {
		t.Errorf("percentages: got %.2f/%.2f, want 100.00/0.00",
			report.Proportion.ZeroPercent, report.Proportion.OnePercent)
	}
	if report.Proportion.MinPercent != 40.0 {
		t.Errorf("threshold: got %.2f, want 40.00", report.Proportion.MinPercent)
	}
}

func TestProportionBalancedSequenceHolds(t *testing.T) {
	report := AssertPostulate(t, "0101010101", 1, true)

	if report.Proportion.ZeroPercent != 50.0 || report.Proportion.OnePercent != 50.0 {
		t.Errorf("percentages: got %.2f/%.2f, want 50.00/50.00",
			report.Proportion.ZeroPercent, report.Proportion.OnePercent)
	}
	if len(report.Postulate1.Findings) != 0 {
		t.Errorf("unexpected findings: %v", report.Postulate1.Findings)
	}
}

func TestProportionNearThreshold(t *testing.T) {
	// 9 zeros / 12 ones over 21 bits: 42.86% < 45.10% threshold.
	res, stats := checkProportion(BitCounts{Total: 21, Zeros: 9, Ones: 12})

	if res.Compliant {
		t.Errorf("expected violation: zero share %.2f%% below %.2f%%",
			stats.ZeroPercent, stats.MinPercent)
	}
	if len(res.Findings) != 1 {
		t.Errorf("findings: got %v, want exactly one", res.Findings)
	}
	if stats.MinPercent != 45.10 {
		t.Errorf("threshold: got %.2f, want 45.10", stats.MinPercent)
	}
}
