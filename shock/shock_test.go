package shock_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ioshock/shock"
)

// seeded returns deterministic Options covering the whole toy economy.
func seeded(size float64) shock.Options {
	return shock.Options{Size: size, SampleSize: 3, Rand: rand.New(rand.NewSource(1))}
}

// TestRun_DemandHandComputed pins the demand-shock effects of the toy
// economy against hand-derived values: a shock of size s in sector k
// yields effect = s·d[k]·colsum((I−A)⁻¹, k)/Σx.
func TestRun_DemandHandComputed(t *testing.T) {
	m := toyModel(t)

	res, err := shock.Run(m, shock.Demand, seeded(0.5))
	require.NoError(t, err)
	require.Len(t, res.Effects, 3)

	want := []float64{ // indexed by sector
		0.107843137254902,
		0.274509803921569,
		0.117647058823529,
	}
	for i, s := range res.Sectors {
		assert.InDelta(t, want[s], res.Effects[i], 1e-9, "effect of sector %d", s)
	}

	assert.InDelta(t, 1.0/6.0, res.Mean, 1e-9)
	assert.InDelta(t, 0.076361578075477, res.StdDev, 1e-9, "population std, not sample std")
	assert.InDelta(t, 0.117647058823529, res.Median, 1e-9)
	assert.InDelta(t, 0.258823529411765, res.P95, 1e-9)
	assert.InDelta(t, 0.271372549019608, res.P99, 1e-9)
}

// TestRun_SupplyHandComputed does the same for supply shocks:
// effect = s·x[k]·colsum(I−A, k)/Σd.
func TestRun_SupplyHandComputed(t *testing.T) {
	m := toyModel(t)

	res, err := shock.Run(m, shock.Supply, seeded(0.5))
	require.NoError(t, err)

	want := []float64{0.203125, 0.125, 0.171875} // indexed by sector
	for i, s := range res.Sectors {
		assert.InDelta(t, want[s], res.Effects[i], 1e-12, "effect of sector %d", s)
	}
}

// TestRun_ZeroSize verifies that no shock means no effect, both types.
// The toy economy balances exactly, so the only residue is rounding.
func TestRun_ZeroSize(t *testing.T) {
	m := toyModel(t)

	for _, typ := range []shock.Type{shock.Demand, shock.Supply} {
		res, err := shock.Run(m, typ, seeded(0))
		require.NoError(t, err, "type %s", typ)
		for i, e := range res.Effects {
			assert.InDelta(t, 0, e, 1e-12, "type %s effect %d", typ, i)
		}
	}
}

// TestRun_FullShockBounded verifies size=1 effects stay in [0, 1] on
// well-behaved data.
func TestRun_FullShockBounded(t *testing.T) {
	m := toyModel(t)

	for _, typ := range []shock.Type{shock.Demand, shock.Supply} {
		res, err := shock.Run(m, typ, seeded(1))
		require.NoError(t, err)
		for i, e := range res.Effects {
			assert.GreaterOrEqual(t, e, 0.0, "type %s effect %d", typ, i)
			assert.LessOrEqual(t, e, 1.0, "type %s effect %d", typ, i)
		}
	}
}

// TestRun_SamplingWithoutReplacement verifies distinct in-range draws.
func TestRun_SamplingWithoutReplacement(t *testing.T) {
	m := toyModel(t)

	res, err := shock.Run(m, shock.Demand, seeded(0.3))
	require.NoError(t, err)
	require.Len(t, res.Sectors, 3)

	seen := map[int]bool{}
	for _, s := range res.Sectors {
		assert.GreaterOrEqual(t, s, 0)
		assert.Less(t, s, m.N())
		assert.False(t, seen[s], "sector %d drawn twice", s)
		seen[s] = true
	}
}

// TestRun_StatisticOrdering verifies min ≤ median ≤ P95 ≤ P99 ≤ max.
func TestRun_StatisticOrdering(t *testing.T) {
	m := toyModel(t)

	res, err := shock.Run(m, shock.Demand, seeded(0.7))
	require.NoError(t, err)

	sorted := append([]float64(nil), res.Effects...)
	sort.Float64s(sorted)

	assert.LessOrEqual(t, sorted[0], res.Median)
	assert.LessOrEqual(t, res.Median, res.P95)
	assert.LessOrEqual(t, res.P95, res.P99)
	assert.LessOrEqual(t, res.P99, sorted[len(sorted)-1])
}

// TestRun_Deterministic verifies that one seed means one sample.
func TestRun_Deterministic(t *testing.T) {
	m := toyModel(t)

	a, err := shock.Run(m, shock.Demand, shock.Options{Size: 0.3, SampleSize: 2, Rand: rand.New(rand.NewSource(7))})
	require.NoError(t, err)
	b, err := shock.Run(m, shock.Demand, shock.Options{Size: 0.3, SampleSize: 2, Rand: rand.New(rand.NewSource(7))})
	require.NoError(t, err)

	assert.Equal(t, a.Sectors, b.Sectors)
	assert.Equal(t, a.Effects, b.Effects)
}

// TestRun_DoesNotMutateModel verifies baseline vectors survive a run.
func TestRun_DoesNotMutateModel(t *testing.T) {
	m := toyModel(t)

	_, err := shock.Run(m, shock.Demand, seeded(1))
	require.NoError(t, err)
	_, err = shock.Run(m, shock.Supply, seeded(1))
	require.NoError(t, err)

	assert.Equal(t, 40.0, m.Demand().AtVec(0))
	assert.Equal(t, 100.0, m.Output().AtVec(0))
}

// TestRun_Errors covers the full error taxonomy; every failure must
// return a nil Result.
func TestRun_Errors(t *testing.T) {
	m := toyModel(t)

	res, err := shock.Run(nil, shock.Demand, seeded(0.3))
	assert.ErrorIs(t, err, shock.ErrNilModel)
	assert.Nil(t, res)

	res, err = shock.Run(m, shock.Type("Unknown"), seeded(0.3))
	assert.ErrorIs(t, err, shock.ErrUnknownType)
	assert.Nil(t, res)

	for _, k := range []int{0, 4} {
		res, err = shock.Run(m, shock.Demand, shock.Options{Size: 0.3, SampleSize: k})
		assert.ErrorIs(t, err, shock.ErrSampleSize, "sample size %d", k)
		assert.Nil(t, res)
	}

	for _, s := range []float64{-0.1, 1.1} {
		res, err = shock.Run(m, shock.Demand, shock.Options{Size: s, SampleSize: 3})
		assert.ErrorIs(t, err, shock.ErrShockSize, "size %v", s)
		assert.Nil(t, res)
	}
}

// TestParseType round-trips the two constants and rejects the rest.
func TestParseType(t *testing.T) {
	typ, err := shock.ParseType("Demand")
	require.NoError(t, err)
	assert.Equal(t, shock.Demand, typ)

	typ, err = shock.ParseType("Supply")
	require.NoError(t, err)
	assert.Equal(t, shock.Supply, typ)

	_, err = shock.ParseType("Price")
	assert.ErrorIs(t, err, shock.ErrUnknownType)
}
