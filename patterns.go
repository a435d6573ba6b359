package golombcheck

import (
	"math"
	"strings"
)

// Postulate 3: the sequence must not exhibit structural patterns. Five
// independent detectors share the decomposed run data; overall compliance
// is the conjunction of all five, and their messages are collected in
// detector execution order.

// checkPatterns evaluates postulate 3 by running the five detectors over
// the same RunData. Each detector appends into the shared result, so a
// single finding from any of them downgrades compliance.
func checkPatterns(data *RunData) PostulateResult {
	res := newResult()

	detectRepeatedBlocks(data, &res)
	detectExcessiveFrequency(data, &res)
	detectSizeStreaks(data, &res)
	detectMirrors(data, &res)
	detectCrossMatches(data, &res)

	return res
}

// detectRepeatedBlocks looks for consecutive duplicate block groups.
//
// Two modes:
//
// Adjacent-pair mode: each contiguous pair of raw runs, rendered as
// space-joined bit strings, is compared against the pair immediately
// following it. An exact match is a finding. Pair texts of length 2 are
// skipped (degenerate guard: such a text can only compare against
// itself).
//
// Size-group mode: for every window size from 3 up to runCount-1, slide
// over the ordered size sequence and tally each window's canonical key
// across the whole sequence. Windows made of all 1-runs carry no
// structure and are exempt. Recurring groups classify per
// repeatedGroupSeverity.
func detectRepeatedBlocks(data *RunData, res *PostulateResult) {
	all := data.Runs.All
	n := len(all)

	for start := 0; start+4 <= n; start++ {
		group := runsText(all[start:start+2], " ")
		next := runsText(all[start+2:start+4], " ")
		if len(group) == 2 {
			continue
		}
		if group == next {
			res.finding("block [%s] repeats consecutively", group)
		}
	}

	type groupTally struct {
		key       string
		count     int
		windowLen int
		sizeSum   int
	}
	var tallies []groupTally
	index := make(map[string]int)

	sizes := data.Sizes.All
	for win := 3; win < n; win++ {
		for start := 0; start+win <= n; start++ {
			window := sizes[start : start+win]
			key := sizeGroupKey(window)
			if i, ok := index[key]; ok {
				tallies[i].count++
				continue
			}
			var sum int
			for _, size := range window {
				sum += size
			}
			index[key] = len(tallies)
			tallies = append(tallies, groupTally{key: key, count: 1, windowLen: win, sizeSum: sum})
		}
	}

	for _, g := range tallies {
		if g.sizeSum <= g.windowLen {
			continue
		}
		res.record(repeatedGroupSeverity(g.count, g.windowLen),
			"run sizes [%s] repeat %d times", g.key, g.count)
	}
}

// detectExcessiveFrequency flags one run size dominating a bit type.
//
// Per bit type independently: tolerance shrinks as the number of runs
// grows, on a log10 scale.
//
//	maxPct  = max(40, 70 - 14*log10(numBlocks))
//	warnPct = max(35, 60 - 14*log10(numBlocks))
//
// A size's share above maxPct is a finding; in [warnPct, maxPct] it is a
// warning. A bit type with no runs at all (e.g. no one-runs in an
// all-zero sequence) is vacuously compliant.
func detectExcessiveFrequency(data *RunData, res *PostulateResult) {
	views := []struct {
		bit  byte
		freq FrequencyTable
	}{
		{'0', data.Freq.Zeros},
		{'1', data.Freq.Ones},
	}

	for _, v := range views {
		numBlocks := v.freq.Total()
		if numBlocks == 0 {
			continue
		}

		maxPct := math.Max(40, 70-14*math.Log10(float64(numBlocks)))
		warnPct := math.Max(35, 60-14*math.Log10(float64(numBlocks)))

		for _, size := range v.freq.Sizes() {
			pct := float64(v.freq[size]) / float64(numBlocks) * 100
			block := strings.Repeat(string(v.bit), size)
			switch {
			case pct > maxPct:
				res.finding("too many runs of [%s] (~%.1f%%)", block, pct)
			case pct >= warnPct:
				res.warning("possibly too many runs of [%s] (~%.1f%%)?", block, pct)
			}
		}
	}
}

// detectSizeStreaks finds maximal streaks of identical adjacent values in
// the all/zeros/ones ordered size views. Each streak is consumed in full
// and yields at most one message, per streakSeverity.
func detectSizeStreaks(data *RunData, res *PostulateResult) {
	views := []struct {
		bit   byte // 0 for the all view
		sizes []int
	}{
		{0, data.Sizes.All},
		{'0', data.Sizes.Zeros},
		{'1', data.Sizes.Ones},
	}

	for _, v := range views {
		for i := 0; i < len(v.sizes); {
			streak := 1
			for i+streak < len(v.sizes) && v.sizes[i] == v.sizes[i+streak] {
				streak++
			}

			sev := streakSeverity(streak, v.sizes[i])
			if sev != SeverityIgnore {
				if v.bit == 0 {
					res.record(sev, "consecutive equal run sizes [%s]",
						runsText(data.Runs.All[i:i+streak], ", "))
				} else {
					block := strings.Repeat(string(v.bit), v.sizes[i])
					repeated := make([]string, streak)
					for j := range repeated {
						repeated[j] = block
					}
					res.record(sev, "%d consecutive runs of the same size [%s] [%s]",
						streak, block, strings.Join(repeated, " - "))
				}
			}

			i += streak
		}
	}
}
