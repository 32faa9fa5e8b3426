package shock_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ioshock/icio"
	"github.com/katalvlaran/ioshock/leontief"
)

// toyModel builds the closed 3-sector economy used across the package
// tests. It balances exactly (A·x + d = x), so expected shock effects are
// hand-computable:
//
//	x = (100,100,100), d = (40,80,40), Σx = 300, Σd = 160.
func toyModel(t *testing.T) *leontief.Model {
	t.Helper()

	labels := []string{"AUS_A", "AUS_B", "DEU_A"}
	tab := &icio.Table{
		RowLabels: labels,
		ColLabels: append([]string(nil), labels...),
		Flows: mat.NewDense(3, 3, []float64{
			10, 20, 30,
			5, 10, 5,
			20, 30, 10,
		}),
		FinalDemand: mat.NewDense(3, 2, []float64{
			25, 15,
			50, 30,
			30, 10,
		}),
		Output: mat.NewVecDense(3, []float64{100, 100, 100}),
	}

	m, err := leontief.Build(tab)
	require.NoError(t, err, "toy model must build")

	return m
}
