package shock

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ioshock/leontief"
)

// Run simulates opts.SampleSize independent single-sector shocks of the
// given type against m and returns the effects with their statistics.
//
// Algorithm outline:
//  1. Select the propagation matrix, baseline vector and benchmark:
//     Demand ⇒ {(I−A)⁻¹, final demand, Σ output},
//     Supply ⇒ {I−A, output, Σ final demand}.
//  2. Draw SampleSize distinct sector indices uniformly from [0, N).
//  3. For each sampled sector s: copy the baseline vector, scale entry s
//     by (1−Size), propagate through the matrix, and record
//     effect = 1 − Σ(result)/benchmark.
//  4. Summarize: mean, population std, median, 95th, 99th percentile.
//
// Run never mutates m. It is safe to call concurrently on a shared model
// as long as each call has its own Options.Rand (or leaves it nil).
//
// Errors: ErrNilModel, ErrUnknownType, ErrShockSize, ErrSampleSize. All
// are returned before any sampling happens.
func Run(m *leontief.Model, typ Type, opts Options) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	var (
		matrix    mat.Matrix
		baseline  *mat.VecDense
		benchmark float64
	)
	switch typ {
	case Demand:
		matrix = m.Inverse()
		baseline = m.Demand()
		benchmark = m.TotalOutput()
	case Supply:
		matrix = m.IMinusA()
		baseline = m.Output()
		benchmark = m.TotalDemand()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}

	if opts.Size < 0 || opts.Size > 1 {
		return nil, fmt.Errorf("%w: %v not in [0,1]", ErrShockSize, opts.Size)
	}
	n := m.N()
	if opts.SampleSize < 1 || opts.SampleSize > n {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrSampleSize, opts.SampleSize, n)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Distinct uniform draw: a random permutation prefix is an unordered
	// sample without replacement. Copied so the Result does not pin the
	// full length-N permutation.
	sectors := append([]int(nil), rng.Perm(n)[:opts.SampleSize]...)

	effects := make([]float64, len(sectors))
	shocked := mat.NewVecDense(n, nil)
	var result mat.VecDense
	for i, s := range sectors {
		shocked.CopyVec(baseline)
		shocked.SetVec(s, shocked.AtVec(s)*(1-opts.Size))
		result.MulVec(matrix, shocked)
		effects[i] = 1 - mat.Sum(&result)/benchmark
	}

	res := &Result{
		Sectors: sectors,
		Effects: effects,
		Mean:    stat.Mean(effects, nil),
		StdDev:  stat.PopStdDev(effects, nil),
		Median:  quantile(effects, 0.50),
		P95:     quantile(effects, 0.95),
		P99:     quantile(effects, 0.99),
	}

	return res, nil
}
