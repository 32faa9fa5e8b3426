package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ioshock/icio"
	"github.com/katalvlaran/ioshock/leontief"
	"github.com/katalvlaran/ioshock/shock"
)

var (
	flagShockType  string
	flagShockSize  float64
	flagSampleSize int
	flagRawEffects bool
)

var shockCmd = &cobra.Command{
	Use:   "shock",
	Short: "Run one randomized single-sector shock experiment",
	Long: `Builds the Leontief model from the ICIO table, samples random
sector-countries, shocks each one in turn and prints the effect
statistics (mean, std, median, upper 5% and 1% quantiles).`,
	RunE: runShock,
}

func init() {
	shockCmd.Flags().StringVar(&flagShockType, "type", string(shock.Demand),
		"shock type: Demand or Supply")
	shockCmd.Flags().Float64Var(&flagShockSize, "size", shock.DefaultSize,
		"fraction of demand/output removed, in [0,1]")
	shockCmd.Flags().IntVar(&flagSampleSize, "sample", shock.DefaultSampleSize,
		"number of distinct sectors sampled, in [1,N]")
	shockCmd.Flags().BoolVar(&flagRawEffects, "raw", false,
		"also print the raw per-sector effects")
}

func runShock(cmd *cobra.Command, args []string) error {
	typ, err := shock.ParseType(flagShockType)
	if err != nil {
		return err
	}

	m, err := buildModel()
	if err != nil {
		return err
	}

	opts := shock.DefaultOptions()
	opts.Size = flagShockSize
	opts.SampleSize = flagSampleSize

	start := time.Now()
	res, err := shock.Run(m, typ, opts)
	if err != nil {
		return err
	}
	logger.Debug("experiment done", zap.Duration("elapsed", time.Since(start)))

	printResult(cmd.OutOrStdout(), typ, opts, m, res, flagRawEffects)

	return nil
}

// buildModel loads the table and builds the shared read-only model.
func buildModel() (*leontief.Model, error) {
	start := time.Now()
	tab, err := icio.Load(flagTable)
	if err != nil {
		return nil, err
	}
	logger.Info("table loaded",
		zap.String("path", flagTable),
		zap.Int("sectors", tab.Sectors()),
		zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	m, err := leontief.Build(tab)
	if err != nil {
		return nil, err
	}
	logger.Info("model built",
		zap.Duration("elapsed", time.Since(start)),
		zap.Float64("residual", m.Residual()))

	return m, nil
}
