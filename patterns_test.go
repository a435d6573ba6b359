package golombcheck

import (
	"strings"
	"testing"
)

// containsMessage reports whether any message in the list contains the
// given fragment.
func containsMessage(messages []string, fragment string) bool {
	for _, msg := range messages {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

func mustDecompose(t *testing.T, sequence string) *RunData {
	t.Helper()
	data, err := Decompose(sequence)
	if err != nil {
		t.Fatalf("Decompose(%q) failed: %v", sequence, err)
	}
	return data
}

func TestDetectRepeatedBlocksAdjacentPair(t *testing.T) {
	// Runs: 1 00 1 00 - the pair [1 00] repeats immediately.
	data := mustDecompose(t, "100100")
	res := newResult()
	detectRepeatedBlocks(data, &res)

	if !containsMessage(res.Findings, "block [1 00] repeats consecutively") {
		t.Errorf("missing adjacent-pair finding, got %v", res.Findings)
	}
}

func TestDetectRepeatedBlocksSizeGroup(t *testing.T) {
	// Sizes: 1 2 1 2 1 2 1 2 - the group 1|2|1 occurs three times.
	data := mustDecompose(t, "011011011011")
	res := newResult()
	detectRepeatedBlocks(data, &res)

	if res.Compliant {
		t.Error("heavily repeating size groups must fail")
	}
	if !containsMessage(res.Findings, "run sizes [1|2|1] repeat 3 times") {
		t.Errorf("missing size-group finding, got %v", res.Findings)
	}
}

func TestDetectRepeatedBlocksTwiceAtWindowThreeWarns(t *testing.T) {
	// Sizes: 1 3 1 2 1 3 1 - the group 1|3|1 occurs exactly twice, which
	// at window length 3 is only advisory. No adjacent pair matches.
	data := mustDecompose(t, "011101101110")
	res := newResult()
	detectRepeatedBlocks(data, &res)

	if !res.Compliant {
		t.Errorf("unexpected findings: %v", res.Findings)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "run sizes [1|3|1] repeat 2 times") {
		t.Errorf("warnings: got %v, want exactly the 1|3|1 group", res.Warnings)
	}
}

func TestDetectRepeatedBlocksExemptsAllOneWindows(t *testing.T) {
	// Every size-group window in an alternating sequence sums to its own
	// length, so size-group mode stays silent. Only the adjacent-pair mode
	// speaks here.
	data := mustDecompose(t, "010101")
	res := newResult()
	detectRepeatedBlocks(data, &res)

	if containsMessage(res.Findings, "run sizes") || containsMessage(res.Warnings, "run sizes") {
		t.Errorf("size-group mode should skip all-1 windows, got findings=%v warnings=%v",
			res.Findings, res.Warnings)
	}
	if !containsMessage(res.Findings, "block [0 1] repeats consecutively") {
		t.Errorf("missing adjacent-pair finding, got %v", res.Findings)
	}
}

func TestDetectExcessiveFrequencyWarningBand(t *testing.T) {
	// Five zero runs, three of size 1: 60% lands between warnPct (~50.2)
	// and maxPct (~60.2) for five blocks.
	data := &RunData{Freq: FrequencySet{Zeros: FrequencyTable{1: 3, 2: 2}}}
	res := newResult()
	detectExcessiveFrequency(data, &res)

	if !res.Compliant {
		t.Errorf("60%% share should only warn, findings: %v", res.Findings)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "possibly too many runs of [0] (~60.0%)?") {
		t.Errorf("warnings: got %v, want the size-1 band message", res.Warnings)
	}
}

func TestDetectExcessiveFrequencyDominantSize(t *testing.T) {
	data := mustDecompose(t, "0000000000")
	res := newResult()
	detectExcessiveFrequency(data, &res)

	if res.Compliant {
		t.Error("a single run size at 100% must fail")
	}
	if !containsMessage(res.Findings, "too many runs of [0000000000] (~100.0%)") {
		t.Errorf("missing dominance finding, got %v", res.Findings)
	}
	// The ones view has no runs and must stay silent rather than divide
	// by zero.
	if containsMessage(res.Findings, "[1]") || containsMessage(res.Warnings, "[1]") {
		t.Errorf("empty ones view produced messages: %v / %v", res.Findings, res.Warnings)
	}
}

func TestDetectSizeStreaksAlternating(t *testing.T) {
	// All view: seven size-1 runs in a row (finding). Zeros view: four
	// size-1 runs (warning). Ones view: three size-1 runs (warning).
	data := mustDecompose(t, "0101010")
	res := newResult()
	detectSizeStreaks(data, &res)

	if len(res.Findings) != 1 || !strings.Contains(res.Findings[0], "consecutive equal run sizes [0, 1, 0, 1, 0, 1, 0]") {
		t.Errorf("findings: got %v, want the all-view streak", res.Findings)
	}
	wantWarnings := []string{
		"4 consecutive runs of the same size [0] [0 - 0 - 0 - 0]",
		"3 consecutive runs of the same size [1] [1 - 1 - 1]",
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("warnings: got %v, want 2", res.Warnings)
	}
	for i, want := range wantWarnings {
		if res.Warnings[i] != want {
			t.Errorf("warning %d: got %q, want %q", i, res.Warnings[i], want)
		}
	}
}

func TestDetectSizeStreaksBigPair(t *testing.T) {
	// Two adjacent size-4 zero runs escalate straight to a finding.
	data := &RunData{Sizes: SizeSet{All: []int{4, 1, 4}, Zeros: []int{4, 4}, Ones: []int{1}}}
	res := newResult()
	detectSizeStreaks(data, &res)

	if !containsMessage(res.Findings, "2 consecutive runs of the same size [0000] [0000 - 0000]") {
		t.Errorf("missing big-pair finding, got %v", res.Findings)
	}
}

func TestCheckPatternsCleanSequence(t *testing.T) {
	res := checkPatterns(mustDecompose(t, "0011101"))

	if !res.Compliant || len(res.Findings) != 0 || len(res.Warnings) != 0 {
		t.Errorf("expected a clean pass, got findings=%v warnings=%v", res.Findings, res.Warnings)
	}
}
