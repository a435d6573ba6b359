package golombcheck

import "fmt"

// BitCounts holds the zero/one tally of a sequence.
type BitCounts struct {
	Total int // Total number of bits
	Zeros int // Number of '0' bits
	Ones  int // Number of '1' bits
}

// InvalidSequenceError reports a sequence that is not a non-empty string
// over {0,1}. Position is the index of the first offending character, or
// -1 when the sequence is empty.
type InvalidSequenceError struct {
	Sequence string
	Position int
}

func (e *InvalidSequenceError) Error() string {
	if e.Position < 0 {
		return "invalid sequence: empty (need at least one bit)"
	}
	return fmt.Sprintf("invalid sequence: character %q at position %d (only '0' and '1' are allowed)",
		e.Sequence[e.Position], e.Position)
}

// ValidateSequence checks that a sequence is a non-empty binary string.
//
// The analysis entry points call this defensively, but callers that accept
// raw user input should validate before invoking the core so that the
// rejection happens at the input boundary.
func ValidateSequence(sequence string) error {
	if sequence == "" {
		return &InvalidSequenceError{Sequence: sequence, Position: -1}
	}
	for i := 0; i < len(sequence); i++ {
		if sequence[i] != '0' && sequence[i] != '1' {
			return &InvalidSequenceError{Sequence: sequence, Position: i}
		}
	}
	return nil
}

// countBits tallies zeros and ones. Assumes a validated sequence.
func countBits(sequence string) BitCounts {
	var zeros int
	for i := 0; i < len(sequence); i++ {
		if sequence[i] == '0' {
			zeros++
		}
	}
	return BitCounts{
		Total: len(sequence),
		Zeros: zeros,
		Ones:  len(sequence) - zeros,
	}
}
