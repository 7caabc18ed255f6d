package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/frizinak/phcalc/scenario"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scripted dilution scenario",
		Long: `Apply a YAML-described sequence of add-solute, add-water, drain and
empty steps to a fresh solution, printing the solution state after
every step.

Scenario format:

  solute: battery-acid
  capacity: 1.2
  steps:
    - action: add-solute
      volume: 0.1
    - action: add-water
      volume: 0.3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("running scenario",
				zap.String("path", args[0]),
				zap.String("solute", sc.Solute),
				zap.Int("steps", len(sc.Steps)))

			snaps, err := sc.Run(reg)
			out := cmd.OutOrStdout()
			for _, snap := range snaps {
				pH := "-"
				if snap.HasPH {
					pH = num(snap.PH)
				}
				fmt.Fprintf(out, "%2d %-10s  vol %s L (solute %s, water %s)  pH %s",
					snap.Step, snap.Action,
					num(snap.TotalVolume), num(snap.SoluteVolume), num(snap.WaterVolume),
					pH)
				if snap.HasPH {
					fmt.Fprintf(out, "  [H3O+] %s mol/L  [OH-] %s mol/L",
						num(snap.ConcentrationH3O), num(snap.ConcentrationOH))
				}
				fmt.Fprintln(out)
			}
			return err
		},
	}
}
