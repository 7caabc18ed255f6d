package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/frizinak/phcalc/ph"
)

func newConvertCmd() *cobra.Command {
	var (
		fromPH   float64
		fromH3O  float64
		fromOH   float64
		molesH3O float64
		molesOH  float64
		volume   float64
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between pH, concentration and molar quantity",
		Long: `Derive the full quantity set from a single source value.

Exactly one of --ph, --h3o, --oh, --moles-h3o or --moles-oh must be
given. The moles variants require --volume; with --ph, --volume is
optional and adds per-volume quantities to the output.`,
		Example: `  phcalc convert --ph 4.2
  phcalc convert --ph 2.5 --volume 0.8
  phcalc convert --h3o 1e-3
  phcalc convert --moles-oh 0.004 --volume 0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := 0
			for _, f := range []string{"ph", "h3o", "oh", "moles-h3o", "moles-oh"} {
				if cmd.Flags().Changed(f) {
					set++
				}
			}
			if set != 1 {
				return fmt.Errorf("exactly one of --ph, --h3o, --oh, --moles-h3o, --moles-oh is required")
			}

			var (
				pH  float64
				err error
			)
			switch {
			case cmd.Flags().Changed("ph"):
				pH = fromPH
				if _, err = ph.ConcentrationH3O(pH); err != nil {
					return err
				}
			case cmd.Flags().Changed("h3o"):
				pH, err = ph.PHFromConcentrationH3O(fromH3O)
			case cmd.Flags().Changed("oh"):
				pH, err = ph.PHFromConcentrationOH(fromOH)
			case cmd.Flags().Changed("moles-h3o"):
				pH, err = ph.PHFromMolesH3O(molesH3O, volume)
			case cmd.Flags().Changed("moles-oh"):
				pH, err = ph.PHFromMolesOH(molesOH, volume)
			}
			if err != nil {
				return err
			}

			return printDerived(cmd, pH, volume, cmd.Flags().Changed("volume"))
		},
	}

	cmd.Flags().Float64Var(&fromPH, "ph", 0, "pH value")
	cmd.Flags().Float64Var(&fromH3O, "h3o", 0, "hydronium concentration in mol/L")
	cmd.Flags().Float64Var(&fromOH, "oh", 0, "hydroxide concentration in mol/L")
	cmd.Flags().Float64Var(&molesH3O, "moles-h3o", 0, "hydronium molar quantity")
	cmd.Flags().Float64Var(&molesOH, "moles-oh", 0, "hydroxide molar quantity")
	cmd.Flags().Float64Var(&volume, "volume", 0, "volume in liters")
	return cmd
}

func printDerived(cmd *cobra.Command, pH, volume float64, withVolume bool) error {
	h3o, err := ph.ConcentrationH3O(pH)
	if err != nil {
		return err
	}
	oh, err := ph.ConcentrationOH(pH)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pH:        %s\n", num(pH))
	fmt.Fprintf(out, "[H3O+]:    %s mol/L\n", num(h3o))
	fmt.Fprintf(out, "[OH-]:     %s mol/L\n", num(oh))

	if !withVolume {
		return nil
	}

	h2o, err := ph.ConcentrationH2O(volume)
	if err != nil {
		return err
	}
	nh3o, err := ph.MolesH3O(pH, volume)
	if err != nil {
		return err
	}
	noh, err := ph.MolesOH(pH, volume)
	if err != nil {
		return err
	}
	nh2o, err := ph.MolesH2O(volume)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "[H2O]:     %s mol/L\n", num(h2o))
	fmt.Fprintf(out, "mol H3O+:  %s\n", num(nh3o))
	fmt.Fprintf(out, "mol OH-:   %s\n", num(noh))
	fmt.Fprintf(out, "mol H2O:   %s\n", num(nh2o))
	fmt.Fprintf(out, "# H3O+:    %s\n", num(nh3o*ph.Avogadro))
	fmt.Fprintf(out, "# OH-:     %s\n", num(noh*ph.Avogadro))
	fmt.Fprintf(out, "# H2O:     %s\n", num(nh2o*ph.Avogadro))
	return nil
}

// num formats a quantity at the configured precision, switching to
// scientific notation when plain decimal would be unreadable.
func num(v float64) string {
	prec := cfg.Precision
	if prec <= 0 {
		prec = 4
	}
	abs := v
	if abs < 0 {
		abs = -abs
	}
	if abs != 0 && (abs >= 1e6 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', prec-1, 64)
	}
	return strconv.FormatFloat(v, 'g', prec, 64)
}
