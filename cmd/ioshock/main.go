// Command ioshock runs Leontief shock experiments against an OECD ICIO
// table and prints the resulting statistics. It is the thin reporting
// layer around the ioshock library: all errors bubble up from the
// library packages and are presented here; the library itself never logs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger

	flagTable   string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ioshock",
	Short: "Leontief input-output shock experiments",
	Long: `ioshock estimates how a demand or supply shock to one random
sector-country propagates through the world economy, using a multi-region
input-output (Leontief) model built from an OECD ICIO table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if flagVerbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagTable, "table", "t", "ICIO2021_2018.csv",
		"path to the ICIO CSV table")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(shockCmd)
	rootCmd.AddCommand(replicateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
