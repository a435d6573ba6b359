package golombcheck

import "math"

// Postulate 1: the shares of zeros and ones must both stay close to 50%.
// How close depends on the sequence length - short sequences get a loose
// 40% bound, long sequences are held near 49%.

// MinPercentage returns the minimum share (in percent) that both the zero
// and the one count must reach for postulate 1 to hold.
//
// The curve by sequence length:
//   - length <= 10:          40.0 (flat floor)
//   - 10 < length <= 20:     0.5*length + 35 (linear, 40 -> 45)
//   - 20 < length <= 1000:   41.6 + 1.15*ln(length) (natural log)
//   - length > 1000:         49.0 (flat ceiling)
//
// Values are rounded to two decimal places.
func MinPercentage(length int) float64 {
	switch {
	case length <= 10:
		return 40.00
	case length <= 20:
		return round2(0.5*float64(length) + 35)
	case length <= 1000:
		return round2(41.6 + 1.15*math.Log(float64(length)))
	default:
		return 49.00
	}
}

// checkProportion evaluates postulate 1 from the bit counts.
// Each side strictly below the threshold produces one finding.
func checkProportion(bits BitCounts) (PostulateResult, ProportionStats) {
	res := newResult()

	stats := ProportionStats{
		ZeroPercent: round2(float64(bits.Zeros) / float64(bits.Total) * 100),
		OnePercent:  round2(float64(bits.Ones) / float64(bits.Total) * 100),
		MinPercent:  MinPercentage(bits.Total),
	}

	for _, pct := range []float64{stats.ZeroPercent, stats.OnePercent} {
		if pct < stats.MinPercent {
			res.finding("~%.2f%% is below the required minimum of ~%.2f%%", pct, stats.MinPercent)
		}
	}

	return res, stats
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
