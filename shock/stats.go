package shock

import (
	"math"
	"sort"
)

// quantile returns the p-th quantile of xs using linear interpolation
// between order statistics: with h = p·(len−1), the result interpolates
// between the floor(h)-th and ceil(h)-th sorted values. This is the
// definition the model's statistics are specified against; gonum's
// stat.Quantile cumulant kinds interpolate the empirical CDF instead and
// diverge at small sample sizes.
//
// xs is not mutated. p must be in [0, 1] and xs non-empty; both are
// guaranteed by the only caller (Run validates first).
func quantile(xs []float64, p float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
