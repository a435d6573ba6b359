package golombcheck

// detectMirrors finds symmetric run subsequences: windows that read the
// same forwards and backwards around a center run.
//
// For every half-window size from 3 up to runCount/2 (the full window
// spans 2*half-1 runs, always an odd count), and for every admissible
// center, the half-window ending at the center is compared textually
// against the reverse of the half-window starting at the center. Each
// (size, center) pair is independent, so overlapping mirrors at different
// sizes or centers all surface. Half-window 3 is only a warning; anything
// larger is a finding.
func detectMirrors(data *RunData, res *PostulateResult) {
	all := data.Runs.All
	n := len(all)

	for half := 3; half <= n/2; half++ {
		for center := half - 1; center <= n-half; center++ {
			left := runsText(all[center-half+1:center+1], " ")
			right := runsText(reverseRuns(all[center:center+half]), " ")
			if left != right {
				continue
			}

			window := runsText(all[center-half+1:center+half], " ")
			if mirrorSeverity(half) == SeverityWarning {
				res.warning("possible mirrored pattern? [%s]", window)
			} else {
				res.finding("mirrored pattern [%s]", window)
			}
		}
	}
}
