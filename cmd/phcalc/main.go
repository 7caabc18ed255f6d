package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/frizinak/phcalc/config"
	"github.com/frizinak/phcalc/solute"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbose bool
	cfgPath string

	logger *zap.Logger
	cfg    config.Config
	reg    *solute.Registry
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "phcalc",
		Short: "Acid/base chemistry calculator",
		Long: `phcalc converts between pH, ion concentration and molar quantity,
combines volumes of liquids, and simulates diluting known solutes
with water.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgPath != "" {
				cfg, err = config.LoadFile(cfgPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}

			zcfg := zap.NewProductionConfig()
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose || cfg.LogLevel == "debug" {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			if logger, err = zcfg.Build(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			reg = solute.NewRegistry()
			if cfg.Solutes != "" {
				if err := reg.LoadFile(cfg.Solutes); err != nil {
					return err
				}
				logger.Debug("loaded custom solutes",
					zap.String("path", cfg.Solutes),
					zap.Int("total", len(reg.All())))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: user config dir)")

	root.AddCommand(
		newConvertCmd(),
		newMixCmd(),
		newSolutesCmd(),
		newRunCmd(),
		newVersionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
