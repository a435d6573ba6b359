package golombcheck

import (
	"strconv"
	"strings"
)

// RelativeSizeCategory buckets a run length by where it falls within the
// quartile range of all run lengths in the sequence. Used by the
// cross-correlation detector's relative mode to match patterns
// independently of absolute scale.
type RelativeSizeCategory string

const (
	SizeSmall    RelativeSizeCategory = "small"     // <= q1
	SizeMidSmall RelativeSizeCategory = "mid_small" // <= q2
	SizeMidLarge RelativeSizeCategory = "mid_large" // <= q3
	SizeLarge    RelativeSizeCategory = "large"     // > q3
)

// classifyRelative maps the zero-run and one-run sizes to quartile
// categories, preserving per-bit-type order. Cut points sit at 25/50/75%
// of the [min, max] range over the all view; when min == max the cut
// points collapse and every run classifies identically.
func classifyRelative(sizes SizeSet) (zeros, ones []RelativeSizeCategory) {
	minVal, maxVal := sizes.All[0], sizes.All[0]
	for _, size := range sizes.All {
		if size < minVal {
			minVal = size
		}
		if size > maxVal {
			maxVal = size
		}
	}

	margin := float64(maxVal - minVal)
	q1 := float64(minVal) + margin*0.25
	q2 := float64(minVal) + margin*0.50
	q3 := float64(minVal) + margin*0.75

	classify := func(view []int) []RelativeSizeCategory {
		categories := make([]RelativeSizeCategory, len(view))
		for i, size := range view {
			switch {
			case float64(size) <= q1:
				categories[i] = SizeSmall
			case float64(size) <= q2:
				categories[i] = SizeMidSmall
			case float64(size) <= q3:
				categories[i] = SizeMidLarge
			default:
				categories[i] = SizeLarge
			}
		}
		return categories
	}

	return classify(sizes.Zeros), classify(sizes.Ones)
}

// crossTally is one distinct matched group between the zero and one size
// views. tokens are the window's elements; sizeSum is only meaningful in
// exact mode.
type crossTally struct {
	key       string
	tokens    []string
	count     int
	windowLen int
	sizeSum   int
}

// detectCrossMatches compares the zero-run and one-run size sequences for
// shared sub-patterns, in two modes: exact (raw sizes) and relative
// (quartile categories).
//
// For window sizes from len(zeros) down to 3, every zero-view window is
// compared against every one-view window. A match is tallied once per
// distinct content; a match whose key is a substring of an already-seen
// longer match is folded into that match instead of being tallied
// separately.
//
// Per distinct group, in both modes:
//   - window length >= min(len(zeros), len(ones)): the two views are
//     identical
//   - all window values equal and length >= 5: long alternating pattern
//
// Both of those are findings in exact mode and warnings in relative mode.
// Any remaining exact-mode group classifies per crossMatchSeverity; any
// remaining relative-mode group is a warning only.
func detectCrossMatches(data *RunData, res *PostulateResult) {
	zeros, ones := data.Sizes.Zeros, data.Sizes.Ones
	if len(zeros) == 0 || len(ones) == 0 {
		return
	}
	relZeros, relOnes := classifyRelative(data.Sizes)

	minLen := len(zeros)
	if len(ones) < minLen {
		minLen = len(ones)
	}

	modes := []struct {
		exact  bool
		zeros  []string
		ones   []string
		prefix string
	}{
		{true, sizeTokens(zeros), sizeTokens(ones), ""},
		{false, categoryTokens(relZeros), categoryTokens(relOnes), "relative "},
	}

	for _, mode := range modes {
		tallies := matchWindows(mode.zeros, mode.ones, zeros, mode.exact)

		for _, g := range tallies {
			uniform := allEqual(g.tokens)
			switch {
			case g.windowLen >= minLen:
				if mode.exact {
					res.finding("zero and one %ssize patterns are completely identical", mode.prefix)
				} else {
					res.warning("zero and one %ssize patterns are completely identical", mode.prefix)
				}
			case uniform && g.windowLen >= 5:
				if mode.exact {
					res.finding("zero and one %ssize patterns form a repeating alternating pattern", mode.prefix)
				} else {
					res.warning("zero and one %ssize patterns form a repeating alternating pattern", mode.prefix)
				}
			case mode.exact:
				res.record(crossMatchSeverity(g.windowLen, g.sizeSum),
					"runs of %ssizes [%s] appear %d times in both zero and one runs",
					mode.prefix, g.key, g.count)
			default:
				res.warning("runs of %ssizes [%s] appear %d times in both zero and one runs",
					mode.prefix, g.key, g.count)
			}
		}
	}
}

// matchWindows slides windows of len(zeroTokens)..3 over both token views
// and tallies matching window contents, folding substrings of longer
// matches. rawZeros supplies the size sums in exact mode.
func matchWindows(zeroTokens, oneTokens []string, rawZeros []int, exact bool) []crossTally {
	var tallies []crossTally

	for win := len(zeroTokens); win >= 3; win-- {
		for i := 0; i+win <= len(zeroTokens); i++ {
			key := strings.Join(zeroTokens[i:i+win], "|")

			for j := 0; j+win <= len(oneTokens); j++ {
				if key != strings.Join(oneTokens[j:j+win], "|") {
					continue
				}

				folded := false
				for k := range tallies {
					if strings.Contains(tallies[k].key, key) {
						if tallies[k].key == key {
							tallies[k].count++
						}
						folded = true
						break
					}
				}
				if folded {
					continue
				}

				var sum int
				if exact {
					for _, size := range rawZeros[i : i+win] {
						sum += size
					}
				}
				tallies = append(tallies, crossTally{
					key:       key,
					tokens:    zeroTokens[i : i+win],
					count:     1,
					windowLen: win,
					sizeSum:   sum,
				})
			}
		}
	}

	return tallies
}

func sizeTokens(sizes []int) []string {
	tokens := make([]string, len(sizes))
	for i, size := range sizes {
		tokens[i] = strconv.Itoa(size)
	}
	return tokens
}

func categoryTokens(categories []RelativeSizeCategory) []string {
	tokens := make([]string, len(categories))
	for i, category := range categories {
		tokens[i] = string(category)
	}
	return tokens
}

func allEqual(tokens []string) bool {
	for _, token := range tokens {
		if token != tokens[0] {
			return false
		}
	}
	return true
}
