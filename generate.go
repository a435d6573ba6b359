package golombcheck

import (
	"fmt"
	"math/rand"
	"strings"
)

// DefaultMaxAttempts bounds the constrained-generation retry loop.
const DefaultMaxAttempts = 5000

// RandomSequence returns a uniformly random bit string of the given
// length. Each bit is sampled independently. Assumes length >= 1
// (validated at the input boundary); heuristic sampling only, not
// cryptographic.
func RandomSequence(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte('0' + byte(rand.Intn(2)))
	}
	return b.String()
}

// GenerationExhaustedError reports that constrained generation gave up
// after the attempt cap. Recoverable: callers may retry with a different
// length or a smaller postulate selection.
type GenerationExhaustedError struct {
	Length     int
	Postulates []int
	Attempts   int
}

func (e *GenerationExhaustedError) Error() string {
	return fmt.Sprintf("no sequence of length %d satisfied postulates %v after %d attempts\n"+
		"  The selected constraints may be unsatisfiable at this length.\n"+
		"  Action: retry with a longer sequence or fewer postulates",
		e.Length, e.Postulates, e.Attempts)
}

// GenerateSatisfying samples random sequences of the given length until
// one complies with every selected postulate (a subset of {1,2,3}; an
// empty selection is trivially satisfied by the first sample).
//
// Each attempt is independent: the full analysis pipeline runs on a fresh
// sample with fresh results, so no findings carry over between attempts.
// maxAttempts <= 0 means DefaultMaxAttempts. Returns the sequence and the
// report of the accepted attempt, or GenerationExhaustedError after the
// cap is reached.
func GenerateSatisfying(length int, postulates []int, maxAttempts int) (string, *Report, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		sequence := RandomSequence(length)
		report, err := Analyze(sequence)
		if err != nil {
			return "", nil, err
		}
		if report.Satisfies(postulates) {
			return sequence, report, nil
		}
	}

	return "", nil, &GenerationExhaustedError{
		Length:     length,
		Postulates: postulates,
		Attempts:   maxAttempts,
	}
}
