// Package shock defines the experiment configuration and result types.
package shock

import (
	"fmt"
	"math/rand"
)

// Type selects which side of the economy the shock hits.
//
//   - Demand — final demand for the sector's output drops; the effect is
//     measured against total world output through the Leontief inverse.
//   - Supply — the sector's total output drops; the effect is measured
//     against total final demand through I−A.
type Type string

const (
	// Demand is an exogenous reduction in final demand for one sector.
	Demand Type = "Demand"

	// Supply is an exogenous reduction in one sector's total output.
	Supply Type = "Supply"
)

// ParseType converts a string into a Type, for CLI/config surfaces.
// Returns ErrUnknownType for anything but the two constants.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Demand, Supply:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSize is the fraction of demand/output removed per trial.
	DefaultSize = 0.3

	// DefaultSampleSize is the number of distinct sectors drawn.
	DefaultSampleSize = 300
)

// Options configures one shock experiment.
//
// Fields:
//   - Size       — fraction removed from the shocked sector, in [0, 1].
//   - SampleSize — number of distinct sectors to sample, in [1, N].
//   - Rand       — random source for the draw. nil ⇒ a private source
//     seeded from the clock. Inject a seeded source for
//     reproducible experiments (tests do).
//
// Example:
//
//	opts := shock.DefaultOptions()
//	opts.Size = 0.7
//	opts.Rand = rand.New(rand.NewSource(42))
//	res, err := shock.Run(m, shock.Demand, opts)
type Options struct {
	Size       float64
	SampleSize int
	Rand       *rand.Rand
}

// DefaultOptions returns the documented defaults (clock-seeded Rand).
func DefaultOptions() Options {
	return Options{
		Size:       DefaultSize,
		SampleSize: DefaultSampleSize,
	}
}

// Result is the outcome of one shock experiment: the raw per-sector
// effects in draw order plus their summary statistics. A Result is plain
// data and is never mutated by this package after Run returns.
type Result struct {
	// Sectors holds the sampled sector indices, in draw order.
	Sectors []int

	// Effects holds one relative effect per sampled sector, aligned with
	// Sectors. Effect e means the benchmark aggregate shrank by e·100%.
	Effects []float64

	// Mean is the arithmetic mean of Effects.
	Mean float64

	// StdDev is the population standard deviation of Effects.
	StdDev float64

	// Median is the 50th percentile of Effects.
	Median float64

	// P95 is the 95th percentile (upper 5% quantile) of Effects.
	P95 float64

	// P99 is the 99th percentile (upper 1% quantile) of Effects.
	P99 float64
}
