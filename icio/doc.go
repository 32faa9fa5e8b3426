// Package icio loads OECD Inter-Country Input-Output (ICIO) tables from
// CSV into dense numeric blocks ready for Leontief-model construction.
//
// 🚀 What is an ICIO table?
//
//	One reference year of inter-sector monetary flows for the whole world
//	economy, laid out as a single wide CSV:
//	  • column 0            — row label ("sector-country", e.g. AUS_01T02)
//	  • columns 1..N        — intermediate flows, matching the row labels
//	  • columns N+1..N+M    — final-demand components (HFCE, GGFC, …)
//	  • last column         — total output per row
//	The 2018 table has N = 3195 sector-country rows and M = 402
//	final-demand columns; both counts are configurable via options.
//
// ✨ What the loader guarantees:
//
//   - Structural validation – header width, row width, row count
//   - Fully parsed output – every cell converted to float64, or a wrapped
//     parse error naming the offending row and column
//   - Immutability – the returned Table is never mutated by this package
//
// Label alignment between rows and flow columns is a model precondition,
// not a parsing concern; it is checked by leontief.Build, which fails with
// leontief.ErrLabelMismatch on violation.
//
// ⚙️ Usage:
//
//	t, err := icio.Load("ICIO2021_2018.csv")
//	if err != nil { ... }
//	m, err := leontief.Build(t)
//
// Rows past the first N (value added, taxes, output rows) are ignored,
// matching the reference slicing of the OECD file.
package icio
