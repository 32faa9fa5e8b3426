package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ioshock/replicate"
)

// TestPrintHistogram_Degenerate covers the all-equal short circuit.
func TestPrintHistogram_Degenerate(t *testing.T) {
	var sb strings.Builder
	printHistogram(&sb, []float64{0.25, 0.25, 0.25})

	assert.Contains(t, sb.String(), "all 3 values equal 0.250000")
}

// TestPrintHistogram_Bins verifies every value lands in exactly one bin,
// including the maximum.
func TestPrintHistogram_Bins(t *testing.T) {
	var sb strings.Builder
	printHistogram(&sb, []float64{0, 0.5, 1})

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, histBins)

	occupied := 0
	for _, l := range lines {
		if strings.HasSuffix(l, " 1") {
			occupied++
		} else {
			assert.True(t, strings.HasSuffix(l, " 0"), "unexpected count in %q", l)
		}
	}
	assert.Equal(t, 3, occupied, "each value lands in exactly one bin")
	assert.True(t, strings.HasSuffix(lines[0], " 1"), "minimum in the first bin")
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], " 1"), "maximum in the last bin")
}

// TestPrintSweep_Order keeps size order stable in the report.
func TestPrintSweep_Order(t *testing.T) {
	cfg := replicate.DefaultConfig()
	cfg.ShockSizes = []float64{0.7, 0.3}
	out := map[float64][]float64{
		0.3: {0.1, 0.1},
		0.7: {0.2, 0.2},
	}

	var sb strings.Builder
	printSweep(&sb, cfg, out)

	s := sb.String()
	assert.Less(t, strings.Index(s, "70%"), strings.Index(s, "30%"),
		"sizes must print in configured order")
}

// TestSweepConfig_Defaults verifies zero-value YAML fields fall back to
// library defaults and the shock type is validated eagerly.
func TestSweepConfig_Defaults(t *testing.T) {
	cfg, err := sweepConfig{ShockSizes: []float64{0.5}}.toConfig()
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5}, cfg.ShockSizes)
	assert.Equal(t, replicate.DefaultReplications, cfg.Replications)

	_, err = sweepConfig{Type: "Price"}.toConfig()
	assert.Error(t, err)
}
