package icio

import "gonum.org/v1/gonum/mat"

// Table is one parsed ICIO release: the intermediate-flow block, the raw
// final-demand block, the total-output column, and the labels needed for
// the model's alignment precondition. All blocks are dense float64.
//
// A Table is plain data; nothing in this package mutates it after Read
// returns, and consumers are expected to treat it as read-only.
type Table struct {
	// RowLabels holds the N sector-country row labels, in file order.
	RowLabels []string

	// ColLabels holds the first N column labels of the header, in file
	// order. leontief.Build requires RowLabels == ColLabels elementwise.
	ColLabels []string

	// Flows is the N×N intermediate-flow block: Flows[i,j] is the value
	// sold by sector i to sector j.
	Flows *mat.Dense

	// FinalDemand is the N×M block of final-demand components, one column
	// per component. The model sums it row-wise.
	FinalDemand *mat.Dense

	// Output is the length-N total-output column.
	Output *mat.VecDense
}

// Sectors returns N, the number of sector-country rows.
func (t *Table) Sectors() int { return len(t.RowLabels) }
