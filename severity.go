package golombcheck

// Severity classifies a detected pattern. Findings invalidate postulate 3,
// warnings are advisory, ignores never surface. Keeping the classification
// rules in one place makes the threshold constants auditable in isolation.
type Severity int

const (
	SeverityIgnore  Severity = iota // Pattern too weak to mention
	SeverityWarning                 // Advisory message, compliance unaffected
	SeverityFinding                 // Compliance-breaking message
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityFinding:
		return "finding"
	default:
		return "ignore"
	}
}

// streakSeverity classifies a maximal streak of adjacent equal run sizes.
//
// Rules by streak length and the repeated size value:
//   - streak >= 5:            finding (any size)
//   - streak 3..4, size > 2:  finding
//   - streak 3..4, size <= 2: warning
//   - streak == 2, size >= 4: finding
//   - everything else:        ignore
func streakSeverity(streak, size int) Severity {
	switch {
	case streak >= 5:
		return SeverityFinding
	case streak == 3 || streak == 4:
		if size > 2 {
			return SeverityFinding
		}
		return SeverityWarning
	case streak == 2 && size >= 4:
		return SeverityFinding
	default:
		return SeverityIgnore
	}
}

// repeatedGroupSeverity classifies a size window that recurs across the
// sequence. A window seen twice gets one concession: at window length 3 it
// is only a warning.
func repeatedGroupSeverity(occurrences, windowLen int) Severity {
	switch {
	case occurrences > 2:
		return SeverityFinding
	case occurrences == 2:
		if windowLen == 3 {
			return SeverityWarning
		}
		return SeverityFinding
	default:
		return SeverityIgnore
	}
}

// mirrorSeverity classifies a symmetric pattern by its half-window size
// (the number of runs on each side of the center, center included).
func mirrorSeverity(halfWindow int) Severity {
	if halfWindow == 3 {
		return SeverityWarning
	}
	return SeverityFinding
}

// crossMatchSumThreshold separates finding from warning for 3-run shared
// groups in the exact cross-correlation mode. Empirical: raw size sums at
// or above it make the shared pattern compliance-breaking.
const crossMatchSumThreshold = 8

// crossMatchSeverity classifies an exact-mode shared group that is neither
// fully identical nor a long alternating pattern.
func crossMatchSeverity(windowLen, sizeSum int) Severity {
	switch {
	case windowLen >= 4:
		return SeverityFinding
	case windowLen == 3 && sizeSum >= crossMatchSumThreshold:
		return SeverityFinding
	default:
		return SeverityWarning
	}
}
