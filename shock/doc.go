// Package shock runs randomized single-sector shock experiments against a
// prepared Leontief model and summarizes their economy-wide effects.
//
// 🚀 What is a shock experiment?
//
//	Pick a sector-country at random, cut its final demand (or its total
//	output) by a given fraction, and measure how much total world output
//	(or total final demand) shrinks once all direct and indirect
//	input-output linkages are accounted for:
//
//	  Demand shock:  effect = 1 − Σ((I−A)⁻¹ · d′) / Σx
//	  Supply shock:  effect = 1 − Σ((I−A)   · x′) / Σd
//
//	Repeating this over a random sample of sectors yields the expected
//	effect of a shock hitting "somewhere" in the world economy.
//
// ✨ Behavior:
//
//   - Sampling without replacement – SampleSize distinct sectors, drawn
//     uniformly from [0, N)
//   - The model is never mutated – each trial works on a private copy of
//     the demand/output vector
//   - Explicit randomness – pass a seeded *rand.Rand for reproducible
//     draws; a nil source is seeded from the clock
//   - Five summary statistics – mean, population standard deviation,
//     median, 95th and 99th percentile (linear interpolation between
//     order statistics)
//
// ⚙️ Usage:
//
//	opts := shock.DefaultOptions()
//	opts.Size = 0.3
//	res, err := shock.Run(m, shock.Demand, opts)
//	fmt.Println(res.Mean, res.P99)
//
// Complexity: O(SampleSize · N²) time, O(N) extra memory.
package shock
