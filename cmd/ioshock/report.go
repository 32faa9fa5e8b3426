package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/ioshock/leontief"
	"github.com/katalvlaran/ioshock/replicate"
	"github.com/katalvlaran/ioshock/shock"
)

// histogram rendering, stand-in for the reference matplotlib plot.
const (
	histBins  = 15
	histWidth = 40
)

// printResult renders one experiment's statistics block.
func printResult(w io.Writer, typ shock.Type, opts shock.Options, m *leontief.Model, res *shock.Result, raw bool) {
	fmt.Fprintf(w, "%s shock, size %.0f%%, %d of %d sectors sampled\n",
		typ, opts.Size*100, len(res.Effects), m.N())
	fmt.Fprintf(w, "  average            %.6f\n", res.Mean)
	fmt.Fprintf(w, "  standard deviation %.6f\n", res.StdDev)
	fmt.Fprintf(w, "  median             %.6f\n", res.Median)
	fmt.Fprintf(w, "  upper 5%% quantile  %.6f\n", res.P95)
	fmt.Fprintf(w, "  upper 1%% quantile  %.6f\n", res.P99)

	if raw {
		fmt.Fprintln(w, "  raw effects:")
		for i, e := range res.Effects {
			fmt.Fprintf(w, "    %-10s %.6f\n", m.Labels()[res.Sectors[i]], e)
		}
	}
}

// printSweep renders per-size mean ± std plus a histogram of each P99
// sequence.
func printSweep(w io.Writer, cfg replicate.Config, out map[float64][]float64) {
	for _, s := range replicate.Summarize(cfg.ShockSizes, out) {
		fmt.Fprintf(w, "shock size %.0f%%: upper 1%% quantile = %.6f +/- %.6f over %d replications\n",
			s.Size*100, s.Mean, s.StdDev, len(out[s.Size]))
		printHistogram(w, out[s.Size])
	}
}

// printHistogram draws a fixed-bin text histogram of xs.
func printHistogram(w io.Writer, xs []float64) {
	if len(xs) == 0 {
		return
	}

	lo, hi := xs[0], xs[0]
	for _, v := range xs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		fmt.Fprintf(w, "  all %d values equal %.6f\n", len(xs), lo)

		return
	}

	counts := make([]int, histBins)
	step := (hi - lo) / histBins
	maxCount := 0
	for _, v := range xs {
		b := int((v - lo) / step)
		if b == histBins { // v == hi lands in the last bin
			b--
		}
		counts[b]++
		if counts[b] > maxCount {
			maxCount = counts[b]
		}
	}

	for b, c := range counts {
		bar := strings.Repeat("#", c*histWidth/maxCount)
		fmt.Fprintf(w, "  [%.6f, %.6f) %-*s %d\n", lo+float64(b)*step, lo+float64(b+1)*step, histWidth, bar, c)
	}
}
