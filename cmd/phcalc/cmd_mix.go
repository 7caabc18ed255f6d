package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/frizinak/phcalc/ph"
)

func newMixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mix <pH1> <vol1> <pH2> <vol2>",
		Short: "Combine two volumes of liquid",
		Long: `Compute the pH of combining two liquids, given each one's pH and
volume in liters. Both liquids must be on the same side of neutral;
acid/base neutralization is not modeled.`,
		Example: `  phcalc mix 2 0.1 4 0.3
  phcalc mix 2.5 0.2 7 0.2`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]float64, 4)
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid decimal number: '%s'", a)
				}
				vals[i] = v
			}

			logger.Debug("combining",
				zap.Float64("ph1", vals[0]), zap.Float64("vol1", vals[1]),
				zap.Float64("ph2", vals[2]), zap.Float64("vol2", vals[3]))

			pH, err := ph.Combine(vals[0], vals[1], vals[2], vals[3])
			if errors.Is(err, ph.ErrOpposingClasses) {
				return fmt.Errorf("pH %s and pH %s sit on opposite sides of neutral: %w",
					args[0], args[2], err)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pH:      %s\n", num(pH))
			fmt.Fprintf(out, "volume:  %s L\n", num(vals[1]+vals[3]))
			return nil
		},
	}
}
