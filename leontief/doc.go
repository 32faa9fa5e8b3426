// Package leontief builds the Leontief model of a world economy from a
// parsed input-output table: the technical-coefficient matrix A, the
// matrix I−A, and the dense Leontief inverse (I−A)⁻¹.
//
// 🚀 What is the Leontief model?
//
//	Input-output economics in matrix form. With A[i,j] the value sector j
//	buys from sector i per unit of j's output, total output x and final
//	demand d satisfy A·x + d = x, and therefore
//
//	    x = (I − A)⁻¹ · d
//
//	The Leontief inverse measures the total — direct plus indirect —
//	output the whole economy must produce to satisfy one unit of final
//	demand in any sector.
//
// ✨ Guarantees:
//
//   - Fail-fast preconditions – misaligned row/column labels abort Build
//     with ErrLabelMismatch before any numeric work
//   - No NaN/Inf escapes – a zero-output sector yields an all-zero
//     coefficient column, exactly as the reference data pipeline does
//   - Immutable results – a built Model is never mutated; concurrent
//     readers need no synchronization
//
// ⚙️ Usage:
//
//	t, err := icio.Load("ICIO2021_2018.csv")
//	m, err := leontief.Build(t)
//	fmt.Println(m.TotalOutput, m.TotalDemand)
//
// The identity A·x + d ≈ x holds only approximately on real data due to
// rounding in the source tables; Model.Residual reports the discrepancy
// but nothing in this package enforces it.
package leontief
