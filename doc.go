// Package ioshock estimates how a localized economic shock — a drop in
// demand or supply hitting one sector in one country — propagates through
// the world economy, using a multi-region input-output (Leontief) model.
//
// 🚀 What is ioshock?
//
//	A library for quantifying systemic exposure to sector-level disruptions:
//		• ICIO ingestion: parse OECD inter-country input-output tables
//		• Leontief core: technical coefficients A and the inverse (I−A)⁻¹
//		• Shock experiments: randomized single-sector demand/supply shocks
//		• Statistics: mean, std, median, upper 5% / 1% quantiles per sample
//		• Replication: shock-size sweeps with independent parallel trials
//
// ✨ Why choose ioshock?
//
//   - Immutable model – build once, share read-only across replications
//   - Explicit randomness – inject your own *rand.Rand, seed it in tests
//   - Fail-fast errors – sentinel errors, errors.Is-friendly, no panics
//   - Dense float64 throughout – gonum-backed, no NaN/Inf escapes
//
// Everything is organized under four subpackages plus one CLI:
//
//	icio/       — OECD ICIO table loading (CSV → numeric blocks + labels)
//	leontief/   — coefficient matrix, Leontief inverse, aggregate sums
//	shock/      — single-sector shock experiments + summary statistics
//	replicate/  — shock-size × replication sweeps, embarrassingly parallel
//	cmd/ioshock — thin CLI for running experiments and printing reports
//
// Quick sketch of the data flow:
//
//	icio.Load ──▶ leontief.Build ──▶ shock.Run ──▶ replicate.Run
//
// A demand shock of size s in sector k scales final demand d[k] by (1−s)
// and measures 1 − Σ((I−A)⁻¹·d′)/Σx — the relative loss of world output.
//
//	go get github.com/katalvlaran/ioshock
package ioshock
