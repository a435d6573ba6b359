package golombcheck

import (
	"sort"
	"strconv"
	"strings"
)

// Run is a maximal contiguous block of identical bits.
type Run struct {
	Bit    byte // '0' or '1'
	Length int  // Number of bits, always >= 1
}

// Text renders the run as its literal bit string ("000", "11", ...).
func (r Run) Text() string {
	return strings.Repeat(string(r.Bit), r.Length)
}

// RunSet holds the three parallel views of a decomposed sequence.
//
// Invariants:
//   - Concatenating All reproduces the original sequence exactly.
//   - Zeros and Ones partition All, each preserving sequence order.
type RunSet struct {
	All   []Run // Every run, in sequence order
	Zeros []Run // Runs of '0' only, in sequence order
	Ones  []Run // Runs of '1' only, in sequence order
}

// FrequencyTable maps a run length to the number of runs of that length.
type FrequencyTable map[int]int

// Sizes returns the observed run lengths in ascending order.
func (t FrequencyTable) Sizes() []int {
	sizes := make([]int, 0, len(t))
	for size := range t {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// Counts returns the frequencies in ascending-size order, parallel to Sizes.
func (t FrequencyTable) Counts() []int {
	sizes := t.Sizes()
	counts := make([]int, len(sizes))
	for i, size := range sizes {
		counts[i] = t[size]
	}
	return counts
}

// Total returns the total number of runs counted by the table.
func (t FrequencyTable) Total() int {
	var total int
	for _, count := range t {
		total += count
	}
	return total
}

// FrequencySet holds one frequency table per view.
type FrequencySet struct {
	All   FrequencyTable
	Zeros FrequencyTable
	Ones  FrequencyTable
}

// SizeSet holds, per view, the run lengths in original sequence order.
// This is the primary input to the pattern detectors.
type SizeSet struct {
	All   []int
	Zeros []int
	Ones  []int
}

// RunData bundles everything derived from a single sequence. All fields are
// owned by the analysis pass that produced them; nothing is shared or
// mutated afterwards.
type RunData struct {
	Bits  BitCounts
	Runs  RunSet
	Freq  FrequencySet
	Sizes SizeSet
}

// Decompose splits a sequence into maximal same-bit runs and derives the
// per-view frequency tables and ordered size sequences.
//
// The scan is a single pass: a run ends when the bit changes or the
// sequence ends. Pure function of the sequence; fails fast with
// InvalidSequenceError on non-binary input.
func Decompose(sequence string) (*RunData, error) {
	if err := ValidateSequence(sequence); err != nil {
		return nil, err
	}

	data := &RunData{
		Bits: countBits(sequence),
		Freq: FrequencySet{
			All:   FrequencyTable{},
			Zeros: FrequencyTable{},
			Ones:  FrequencyTable{},
		},
	}

	start := 0
	for i := 1; i <= len(sequence); i++ {
		if i < len(sequence) && sequence[i] == sequence[start] {
			continue
		}
		run := Run{Bit: sequence[start], Length: i - start}
		data.Runs.All = append(data.Runs.All, run)
		data.Sizes.All = append(data.Sizes.All, run.Length)
		data.Freq.All[run.Length]++
		if run.Bit == '0' {
			data.Runs.Zeros = append(data.Runs.Zeros, run)
			data.Sizes.Zeros = append(data.Sizes.Zeros, run.Length)
			data.Freq.Zeros[run.Length]++
		} else {
			data.Runs.Ones = append(data.Runs.Ones, run)
			data.Sizes.Ones = append(data.Sizes.Ones, run.Length)
			data.Freq.Ones[run.Length]++
		}
		start = i
	}

	return data, nil
}

// runsText renders runs as their bit strings joined by sep ("1 00 111").
func runsText(runs []Run, sep string) string {
	parts := make([]string, len(runs))
	for i, run := range runs {
		parts[i] = run.Text()
	}
	return strings.Join(parts, sep)
}

// sizeGroupKey is the canonical encoding for a window of run sizes:
// decimal lengths joined by '|'. Unambiguous for multi-digit lengths.
func sizeGroupKey(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, size := range sizes {
		parts[i] = strconv.Itoa(size)
	}
	return strings.Join(parts, "|")
}

// reverseRuns returns a reversed copy of runs.
func reverseRuns(runs []Run) []Run {
	reversed := make([]Run, len(runs))
	for i, run := range runs {
		reversed[len(runs)-1-i] = run
	}
	return reversed
}
