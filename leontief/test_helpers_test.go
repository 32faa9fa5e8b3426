package leontief_test

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ioshock/icio"
)

// toyTable returns a closed 3-sector economy with round numbers:
//
//	flows  = |10 20 30|   final demand = |25 15|   output = |100|
//	         | 5 10  5|                  |50 30|            |100|
//	         |20 30 10|                  |30 10|            |100|
//
// The accounting identity A·x + d = x holds exactly, which makes every
// derived quantity hand-computable.
func toyTable() *icio.Table {
	labels := []string{"AUS_A", "AUS_B", "DEU_A"}

	return &icio.Table{
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
}
