// Package palette holds the static per-drink color and animation tables
// and the interpolation helpers both animation engines converge with.
package palette

import (
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color triple. Particle palettes use the 0-255 scale,
// liquid profiles use 0-1; each table says which.
type RGB struct {
	R, G, B float64
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Scale multiplies every channel by f.
func (c RGB) Scale(f float64) RGB {
	return RGB{c.R * f, c.G * f, c.B * f}
}

// Add adds v to every channel.
func (c RGB) Add(v float64) RGB {
	return RGB{c.R + v, c.G + v, c.B + v}
}

// Distance returns the largest per-channel difference between c and o.
func (c RGB) Distance(o RGB) float64 {
	return math.Max(math.Abs(c.R-o.R), math.Max(math.Abs(c.G-o.G), math.Abs(c.B-o.B)))
}

// RGBA formats a 0-255 color as a CSS rgba() string.
func (c RGB) RGBA(alpha float64) string {
	return "rgba(" +
		strconv.Itoa(int(math.Round(c.R))) + ", " +
		strconv.Itoa(int(math.Round(c.G))) + ", " +
		strconv.Itoa(int(math.Round(c.B))) + ", " +
		strconv.FormatFloat(alpha, 'f', 3, 64) + ")"
}

// Hex formats a 0-255 color as #rrggbb.
func (c RGB) Hex() string {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Clamped().Hex()
}

// LerpScalar moves a toward b by fraction t.
func LerpScalar(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor moves every channel of a toward b by fraction t.
func LerpColor(a, b RGB, t float64) RGB {
	c := a.colorful().BlendRgb(b.colorful(), t)
	return RGB{c.R, c.G, c.B}
}

// FramesToConverge returns the number of steps with factor k after which
// the remaining distance is below tolerance (as a fraction of the start).
func FramesToConverge(k, tolerance float64) int {
	if k <= 0 || k >= 1 || tolerance <= 0 {
		return 0
	}
	return int(math.Ceil(math.Log(tolerance) / math.Log(1-k)))
}
