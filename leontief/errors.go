// Package leontief: sentinel error set.
// Build returns these sentinels (wrapped where context helps); tests and
// callers match via errors.Is. Both conditions are unrecoverable: no
// partially built Model is ever returned alongside an error.
package leontief

import "errors"

var (
	// ErrNilTable indicates a nil *icio.Table was passed to Build.
	ErrNilTable = errors.New("leontief: table is nil")

	// ErrLabelMismatch indicates the table's row labels do not equal its
	// first-N column labels in identical order. The table is structurally
	// misaligned and no coefficient extraction is meaningful.
	ErrLabelMismatch = errors.New("leontief: row/column labels misaligned")

	// ErrSingular indicates I−A is not invertible, so no Leontief inverse
	// exists. This is a data/configuration error, not a caller error.
	ErrSingular = errors.New("leontief: I-A is singular")
)
