package solute

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB display color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color { return Color{r, g, b} }

// ParseColor parses a "#rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color '%s': %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{r, g, b}, nil
}

// Hex returns the "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend linearly interpolates from c to the target color.
// t is clamped to [0, 1].
func (c Color) Blend(to Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	mixed := c.colorful().BlendRgb(to.colorful(), t)
	r, g, b := mixed.RGB255()
	return Color{r, g, b}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
