package leontief

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ioshock/icio"
)

// Model holds the prepared Leontief matrices and aggregates for one
// input-output table. A Model is immutable after Build: no method mutates
// it, and concurrent readers are safe. Accessors return the internal
// matrices directly to avoid copying N×N blocks; callers must treat them
// as read-only.
type Model struct {
	n      int
	labels []string

	a       *mat.Dense // technical coefficients, N×N
	iMinusA *mat.Dense // I − a, N×N
	inverse *mat.Dense // (I − a)⁻¹, N×N

	demand *mat.VecDense // final demand per sector, length N
	output *mat.VecDense // total output per sector, length N

	totalOutput float64
	totalDemand float64
}

// Build derives a Model from a parsed table.
//
// Stages:
//  1. Precondition: row labels must equal the first-N column labels in
//     identical order (ErrLabelMismatch otherwise).
//  2. A[i,j] = Flows[i,j] / Output[j]; any non-finite ratio (a sector
//     with zero recorded output) becomes exactly 0.
//  3. Invert I−A (ErrSingular if no inverse exists).
//  4. Sum output and row-summed final demand into the two benchmarks.
//
// Complexity is dominated by the inversion: O(N³) time, O(N²) memory.
func Build(t *icio.Table) (*Model, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	n := t.Sectors()
	if len(t.ColLabels) != n {
		return nil, fmt.Errorf("%w: %d row labels, %d column labels",
			ErrLabelMismatch, n, len(t.ColLabels))
	}
	for i, lbl := range t.RowLabels {
		if t.ColLabels[i] != lbl {
			return nil, fmt.Errorf("%w: row %d is %q, column %d is %q",
				ErrLabelMismatch, i, lbl, i, t.ColLabels[i])
		}
	}

	labels := make([]string, n)
	copy(labels, t.RowLabels)

	output := mat.VecDenseCopyOf(t.Output)

	// Technical coefficients, column-normalized by the consuming sector's
	// output. Zero output makes the whole column zero, never NaN/Inf.
	a := mat.NewDense(n, n, nil)
	iMinusA := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		out := output.AtVec(j)
		for i := 0; i < n; i++ {
			v := t.Flows.At(i, j) / out
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			a.Set(i, j, v)
			if i == j {
				iMinusA.Set(i, j, 1-v)
			} else {
				iMinusA.Set(i, j, -v)
			}
		}
	}

	var inverse mat.Dense
	if err := inverse.Inverse(iMinusA); err != nil {
		// gonum reports a near-singular but solvable system as a
		// Condition error with a finite condition number; real ICIO
		// matrices are ill-conditioned, so only a truly unsolvable
		// system is fatal.
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
	}

	demand := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		demand.SetVec(i, floats.Sum(t.FinalDemand.RawRowView(i)))
	}

	return &Model{
		n:           n,
		labels:      labels,
		a:           a,
		iMinusA:     iMinusA,
		inverse:     &inverse,
		demand:      demand,
		output:      output,
		totalOutput: floats.Sum(output.RawVector().Data),
		totalDemand: floats.Sum(demand.RawVector().Data),
	}, nil
}

// N returns the number of sector-country entries.
func (m *Model) N() int { return m.n }

// Labels returns the sector-country labels in model order. Read-only.
func (m *Model) Labels() []string { return m.labels }

// Coefficients returns the technical-coefficient matrix A. Read-only.
func (m *Model) Coefficients() *mat.Dense { return m.a }

// IMinusA returns I−A. Read-only.
func (m *Model) IMinusA() *mat.Dense { return m.iMinusA }

// Inverse returns the Leontief inverse (I−A)⁻¹. Read-only.
func (m *Model) Inverse() *mat.Dense { return m.inverse }

// Demand returns the final-demand vector (row sums of the final-demand
// block). Read-only.
func (m *Model) Demand() *mat.VecDense { return m.demand }

// Output returns the total-output vector. Read-only.
func (m *Model) Output() *mat.VecDense { return m.output }

// TotalOutput returns Σ output, the demand-shock benchmark.
func (m *Model) TotalOutput() float64 { return m.totalOutput }

// TotalDemand returns Σ final demand, the supply-shock benchmark.
func (m *Model) TotalDemand() float64 { return m.totalDemand }

// Residual reports max|A·x + d − x|, the discrepancy of the accounting
// identity. On real tables it is small but nonzero due to rounding in the
// source data; it is a diagnostic, never an enforced invariant.
func (m *Model) Residual() float64 {
	var ax mat.VecDense
	ax.MulVec(m.a, m.output)

	r := 0.0
	for i := 0; i < m.n; i++ {
		if d := math.Abs(ax.AtVec(i) + m.demand.AtVec(i) - m.output.AtVec(i)); d > r {
			r = d
		}
	}

	return r
}
