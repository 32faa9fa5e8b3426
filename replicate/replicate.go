package replicate

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ioshock/leontief"
	"github.com/katalvlaran/ioshock/shock"
)

// DefaultReplications mirrors the reference study: 20 trials per size.
const DefaultReplications = 20

// DefaultShockSizes returns the reference sweep: 30%, 70%, 100%.
// A fresh slice is returned so callers may append or reorder freely.
func DefaultShockSizes() []float64 { return []float64{0.3, 0.7, 1.0} }

// Config drives one sweep.
//
// Fields:
//   - ShockSizes   — ordered shock sizes to sweep, each in [0, 1].
//   - Replications — independent trials per size (≥ 1).
//   - Type         — shock type; zero value ⇒ shock.Demand.
//   - SampleSize   — sectors sampled per trial; 0 ⇒ shock.DefaultSampleSize.
//   - Seed         — master seed for the per-trial sources; 0 ⇒ clock.
//     A fixed Seed makes the whole sweep deterministic.
//   - Parallelism  — max concurrent trials; ≤ 0 ⇒ runtime.NumCPU().
type Config struct {
	ShockSizes   []float64
	Replications int
	Type         shock.Type
	SampleSize   int
	Seed         int64
	Parallelism  int
}

// DefaultConfig returns the reference sweep configuration.
func DefaultConfig() Config {
	return Config{
		ShockSizes:   DefaultShockSizes(),
		Replications: DefaultReplications,
		Type:         shock.Demand,
		SampleSize:   shock.DefaultSampleSize,
	}
}

// Run executes cfg against a shared read-only model and returns, for each
// shock size, the P99 of every replication in replication order.
//
// Each trial draws its own sample from a source seeded off the master
// seed, so concurrent trials never share RNG state and a fixed Config.Seed
// reproduces the sweep exactly regardless of scheduling. Failures are
// fail-fast: the first error aborts the sweep and nothing is returned.
//
// Errors: ErrNilModel, ErrNoShockSizes, ErrReplications, or any shock.Run
// error wrapped with the offending size and replication index.
func Run(m *leontief.Model, cfg Config) (map[float64][]float64, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if len(cfg.ShockSizes) == 0 {
		return nil, ErrNoShockSizes
	}
	if cfg.Replications < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrReplications, cfg.Replications)
	}

	typ := cfg.Type
	if typ == "" {
		typ = shock.Demand
	}
	sampleSize := cfg.SampleSize
	if sampleSize == 0 {
		sampleSize = shock.DefaultSampleSize
	}
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Fan the master seed out to one seed per trial, in a fixed size-major
	// order, before any goroutine starts. Determinism must not depend on
	// scheduling.
	master := rand.New(rand.NewSource(seed))
	seeds := make([]int64, len(cfg.ShockSizes)*cfg.Replications)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	results := make([][]float64, len(cfg.ShockSizes))
	for i := range results {
		results[i] = make([]float64, cfg.Replications)
	}

	var g errgroup.Group
	g.SetLimit(parallelism)
	for si, size := range cfg.ShockSizes {
		for r := 0; r < cfg.Replications; r++ {
			si, size, r := si, size, r
			trialSeed := seeds[si*cfg.Replications+r]
			g.Go(func() error {
				opts := shock.Options{
					Size:       size,
					SampleSize: sampleSize,
					Rand:       rand.New(rand.NewSource(trialSeed)),
				}
				res, err := shock.Run(m, typ, opts)
				if err != nil {
					return fmt.Errorf("replicate: size %v replication %d: %w", size, r, err)
				}
				results[si][r] = res.P99

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[float64][]float64, len(cfg.ShockSizes))
	for si, size := range cfg.ShockSizes {
		out[size] = results[si]
	}

	return out, nil
}

// Summary is the mean ± population std of one size's P99 sequence.
type Summary struct {
	Size   float64
	Mean   float64
	StdDev float64
}

// Summarize condenses Run's output into one Summary per shock size, in
// the order of sizes. Sizes missing from results are skipped.
func Summarize(sizes []float64, results map[float64][]float64) []Summary {
	out := make([]Summary, 0, len(sizes))
	for _, size := range sizes {
		seq, ok := results[size]
		if !ok || len(seq) == 0 {
			continue
		}
		out = append(out, Summary{
			Size:   size,
			Mean:   stat.Mean(seq, nil),
			StdDev: stat.PopStdDev(seq, nil),
		})
	}

	return out
}
