// Package replicate sweeps shock experiments across a set of shock sizes,
// repeating each size over independent replications and collecting the
// upper 1% quantile (P99) of every run.
//
// 🚀 What is a replication sweep?
//
//	A single shock experiment is a random sample; its P99 is itself a
//	random variable. Repeating the experiment R times per shock size
//	yields a distribution of P99 values whose mean ± std is stable across
//	runs — the "reproducible result" of the reference study (shock sizes
//	30%, 70% and 100%, 20 replications each).
//
// ✨ Behavior:
//
//   - One shared model – the caller builds the Leontief model once;
//     replications only read it, so no per-trial inversion is paid
//   - Independent randomness – a master seed fans out one derived seed
//     per trial, keeping results deterministic for a fixed Config.Seed
//     regardless of scheduling
//   - Embarrassingly parallel – trials run on an errgroup bounded by
//     Config.Parallelism (default: NumCPU)
//   - Fail-fast – the first failing replication aborts the whole sweep;
//     no partial results are returned
//
// ⚙️ Usage:
//
//	m, _ := leontief.Build(tab)
//	out, err := replicate.Run(m, replicate.DefaultConfig())
//	for _, s := range replicate.Summarize(replicate.DefaultShockSizes(), out) {
//	    fmt.Printf("size %.0f%%: %.4f ± %.4f\n", s.Size*100, s.Mean, s.StdDev)
//	}
package replicate
