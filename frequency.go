package golombcheck

// Postulate 2: shorter runs must be strictly more frequent than longer
// ones. Only the sizes actually present in the table are compared, as
// stored in ascending order - no count is synthesized for absent sizes.

// frequencyProximity is the warning band for postulate 2: two adjacent
// counts that still decrease, but land within 20% of each other, are
// close enough to flag.
const frequencyProximity = 0.8

// checkFrequencyOrdering evaluates postulate 2 over the all-view table.
//
// For each adjacent pair of stored sizes (n, n+1 in table order):
//   - count(n) <= count(n+1): finding, compliance fails
//   - count(n)*0.8 <= count(n+1) while still decreasing: warning only
//
// Warnings never downgrade compliance.
func checkFrequencyOrdering(freq FrequencyTable) PostulateResult {
	res := newResult()

	sizes := freq.Sizes()
	counts := freq.Counts()

	for i := 0; i+1 < len(counts); i++ {
		smaller, larger := counts[i], counts[i+1]
		switch {
		case smaller <= larger:
			res.finding("runs of size %d (%d) are not more frequent than runs of size %d (%d)",
				sizes[i], smaller, sizes[i+1], larger)
		case float64(smaller)*frequencyProximity <= float64(larger):
			res.warning("run frequency for size %d is very close to size %d (%d vs %d)",
				sizes[i], sizes[i+1], smaller, larger)
		}
	}

	return res
}
