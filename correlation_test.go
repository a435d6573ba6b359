package golombcheck

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// crossData builds the RunData subset the cross-correlation detector
// reads: the per-view size sequences, with the all view interleaved
// zeros-first the way an alternating sequence would decompose.
func crossData(zeros, ones []int) *RunData {
	var all []int
	for i := 0; i < len(zeros) || i < len(ones); i++ {
		if i < len(zeros) {
			all = append(all, zeros[i])
		}
		if i < len(ones) {
			all = append(all, ones[i])
		}
	}
	return &RunData{Sizes: SizeSet{All: all, Zeros: zeros, Ones: ones}}
}

func TestClassifyRelative(t *testing.T) {
	zeros, ones := classifyRelative(SizeSet{
		All:   []int{1, 1, 2, 2, 3, 3, 3, 4},
		Zeros: []int{1, 2, 3, 3},
		Ones:  []int{1, 2, 3, 4},
	})

	wantZeros := []RelativeSizeCategory{SizeSmall, SizeMidSmall, SizeMidLarge, SizeMidLarge}
	wantOnes := []RelativeSizeCategory{SizeSmall, SizeMidSmall, SizeMidLarge, SizeLarge}
	if diff := cmp.Diff(wantZeros, zeros); diff != "" {
		t.Errorf("zero categories mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantOnes, ones); diff != "" {
		t.Errorf("one categories mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyRelativeDegenerate(t *testing.T) {
	// min == max collapses the cut points; everything classifies small.
	zeros, _ := classifyRelative(SizeSet{
		All:   []int{2, 2, 2},
		Zeros: []int{2, 2},
		Ones:  []int{2},
	})

	for _, category := range zeros {
		if category != SizeSmall {
			t.Errorf("degenerate range: got %v, want all %v", zeros, SizeSmall)
		}
	}
}

func TestDetectCrossMatchesIdenticalViews(t *testing.T) {
	res := newResult()
	detectCrossMatches(crossData([]int{2, 3, 4}, []int{2, 3, 4}), &res)

	if !containsMessage(res.Findings, "zero and one size patterns are completely identical") {
		t.Errorf("missing exact identity finding, got %v", res.Findings)
	}
	if !containsMessage(res.Warnings, "zero and one relative size patterns are completely identical") {
		t.Errorf("missing relative identity warning, got %v", res.Warnings)
	}
}

func TestDetectCrossMatchesSharedGroupWarns(t *testing.T) {
	// Shared group 2|4|1 at window length 3 sums to 7, below the finding
	// threshold.
	res := newResult()
	detectCrossMatches(crossData([]int{1, 2, 4, 1}, []int{2, 4, 1, 3}), &res)

	if !res.Compliant {
		t.Errorf("sum-7 group should only warn, findings: %v", res.Findings)
	}
	if !containsMessage(res.Warnings, "runs of sizes [2|4|1] appear 1 times in both zero and one runs") {
		t.Errorf("missing exact-mode warning, got %v", res.Warnings)
	}
	if !containsMessage(res.Warnings, "runs of relative sizes [mid_small|large|small] appear 1 times") {
		t.Errorf("missing relative-mode warning, got %v", res.Warnings)
	}
}

func TestDetectCrossMatchesSharedGroupFails(t *testing.T) {
	// Same shape but the shared group 3|5|1 sums to 9, over the threshold.
	res := newResult()
	detectCrossMatches(crossData([]int{1, 3, 5, 1}, []int{3, 5, 1, 2}), &res)

	if res.Compliant {
		t.Error("sum-9 group must fail")
	}
	if !containsMessage(res.Findings, "runs of sizes [3|5|1] appear 1 times in both zero and one runs") {
		t.Errorf("missing exact-mode finding, got %v", res.Findings)
	}
}

func TestDetectCrossMatchesAlternating(t *testing.T) {
	// A uniform shared window of five identical sizes is the long
	// alternating case. The window stays below the full view length, so
	// the identity branch does not trigger.
	res := newResult()
	detectCrossMatches(crossData([]int{2, 2, 2, 2, 2, 2, 2}, []int{2, 2, 2, 2, 2, 1}), &res)

	if !containsMessage(res.Findings, "zero and one size patterns form a repeating alternating pattern") {
		t.Errorf("missing alternating finding, got %v", res.Findings)
	}
	if !containsMessage(res.Warnings, "zero and one relative size patterns form a repeating alternating pattern") {
		t.Errorf("missing relative alternating warning, got %v", res.Warnings)
	}
}

func TestDetectCrossMatchesEmptyView(t *testing.T) {
	res := newResult()
	detectCrossMatches(mustDecompose(t, "1111"), &res)

	if len(res.Findings) != 0 || len(res.Warnings) != 0 {
		t.Errorf("a one-sided sequence has nothing to correlate, got findings=%v warnings=%v",
			res.Findings, res.Warnings)
	}
}

// Substring fold: once a longer match is tallied, shorter windows that
// appear inside it neither retally nor emit their own group.
func TestMatchWindowsFoldsSubstrings(t *testing.T) {
	zeros := []int{2, 3, 4, 2, 3}
	ones := []int{2, 3, 4, 2, 3}
	tallies := matchWindows(sizeTokens(zeros), sizeTokens(ones), zeros, true)

	if len(tallies) != 1 {
		t.Fatalf("tallies: got %d, want only the full-length match", len(tallies))
	}
	g := tallies[0]
	if g.key != "2|3|4|2|3" || g.count != 1 || g.windowLen != 5 || g.sizeSum != 14 {
		t.Errorf("tally: got %+v, want key 2|3|4|2|3 count 1 window 5 sum 14", g)
	}
	if strings.Join(g.tokens, "|") != g.key {
		t.Errorf("tokens %v inconsistent with key %q", g.tokens, g.key)
	}
}
