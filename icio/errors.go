// Package icio: sentinel error set.
// All loader failures return (possibly wrapped) sentinels from this file;
// callers match them via errors.Is. Parsing never panics on user data.
package icio

import "errors"

var (
	// ErrEmptyTable indicates the input contained no header or no data rows.
	ErrEmptyTable = errors.New("icio: empty table")

	// ErrBadLayout indicates the header is too narrow for the configured
	// layout (1 label column + N flows + M final demand + 1 output).
	ErrBadLayout = errors.New("icio: header does not match configured layout")

	// ErrShortTable indicates fewer data rows than the configured N sectors.
	ErrShortTable = errors.New("icio: fewer data rows than sectors")

	// ErrBadNumber indicates a cell could not be parsed as a float64.
	// Returned wrapped with row/column context.
	ErrBadNumber = errors.New("icio: non-numeric cell")
)
