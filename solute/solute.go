// Package solute defines the substances a solution can be made of:
// named chemicals with an intrinsic pH and the colors used to tint a
// stock or diluted solution. Builtin solutes form an immutable table;
// custom solutes can be overlaid from a YAML file.
package solute

import (
	"fmt"

	"github.com/frizinak/phcalc/ph"
)

// ColorStop is an optional intermediate point in the dilute-to-stock
// color transition, for solutes whose tint does not scale linearly
// with concentration.
type ColorStop struct {
	Color Color
	Ratio float64
}

// Solute is an immutable named substance. PH is the intrinsic pH of
// the undiluted stock.
type Solute struct {
	ID          string
	Name        string
	PH          float64
	StockColor  Color
	DiluteColor Color
	Stop        *ColorStop
}

// Color returns the display color at the given solute/total volume
// ratio: 0 is fully diluted, 1 is pure stock. The ratio is clamped.
func (s Solute) Color(ratio float64) Color {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if s.Stop == nil {
		return s.DiluteColor.Blend(s.StockColor, ratio)
	}
	if ratio < s.Stop.Ratio {
		return s.DiluteColor.Blend(s.Stop.Color, ratio/s.Stop.Ratio)
	}
	return s.Stop.Color.Blend(s.StockColor, (ratio-s.Stop.Ratio)/(1-s.Stop.Ratio))
}

func (s Solute) validate() error {
	if s.ID == "" {
		return fmt.Errorf("solute has no id")
	}
	if s.PH < ph.MinPH || s.PH > ph.MaxPH {
		return fmt.Errorf("solute '%s': pH %g outside [%g, %g]", s.ID, s.PH, ph.MinPH, ph.MaxPH)
	}
	if s.Stop != nil && (s.Stop.Ratio <= 0 || s.Stop.Ratio >= 1) {
		return fmt.Errorf("solute '%s': color stop ratio %g outside (0, 1)", s.ID, s.Stop.Ratio)
	}
	return nil
}
