package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/containerd/console"
	"github.com/spf13/cobra"

	"github.com/frizinak/phcalc/solute"
)

func newSolutesCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "solutes",
		Short: "List the known solutes",
		Long: `List the solute registry: builtins plus any custom entries from the
configured solutes file. The swatch runs from diluted to stock color.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := reg.All()

			nameW := 0
			for _, s := range all {
				if len(s.Name) > nameW {
					nameW = len(s.Name)
				}
			}

			swatchW := 0
			if !plain {
				swatchW = swatchWidth(nameW)
			}
			out := cmd.OutOrStdout()
			for _, s := range all {
				line := fmt.Sprintf("%5.1f  %-*s  %-14s", s.PH, nameW, s.Name, s.ID)
				if !plain {
					line += "  " + swatch(s, swatchW)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "no color swatches")
	return cmd
}

// swatchWidth fits the gradient into what remains of the terminal
// line after the fixed columns.
func swatchWidth(nameW int) int {
	const min, max = 8, 32
	w := termWidth() - nameW - 26
	if w < min {
		return min
	}
	if w > max {
		return max
	}
	return w
}

func termWidth() int {
	c, err := console.ConsoleFromFile(os.Stdout)
	if err != nil {
		return 80
	}
	size, err := c.Size()
	if err != nil {
		return 80
	}
	return int(size.Width)
}

func swatch(s solute.Solute, width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		ratio := float64(i) / float64(width-1)
		c := s.Color(ratio)
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Render(" "))
	}
	return b.String()
}
