// Package icio: functional configuration for the table loader.
// Defaults mirror the OECD ICIO 2021 release for reference year 2018.
package icio

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSectors is the number of sector-country rows (and matching
	// flow columns) in the ICIO 2021/2018 release.
	DefaultSectors = 3195

	// DefaultFinalDemandColumns is the number of final-demand component
	// columns in the ICIO 2021/2018 release.
	DefaultFinalDemandColumns = 402
)

// Internal panic messages (programmer error only; user data never panics).
const (
	panicSectorsInvalid     = "icio: WithSectors: n must be > 0"
	panicFinalDemandInvalid = "icio: WithFinalDemandColumns: m must be > 0"
)

// Option mutates loader options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options is the resolved loader configuration. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	sectors     int
	finalDemand int
}

// WithSectors overrides the number of sector-country rows/columns (N).
// Panics if n <= 0.
func WithSectors(n int) Option {
	if n <= 0 {
		panic(panicSectorsInvalid)
	}

	return func(o *options) { o.sectors = n }
}

// WithFinalDemandColumns overrides the number of final-demand columns (M).
// Panics if m <= 0.
func WithFinalDemandColumns(m int) Option {
	if m <= 0 {
		panic(panicFinalDemandInvalid)
	}

	return func(o *options) { o.finalDemand = m }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		sectors:     DefaultSectors,
		finalDemand: DefaultFinalDemandColumns,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
