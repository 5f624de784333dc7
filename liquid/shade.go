package liquid

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/simukka/brewfx/palette"
)

// Pixel is a premultiplied RGBA sample in 0-1.
type Pixel struct {
	R, G, B, A float64
}

const (
	waveStrength = 0.035
	strokeWidth  = 0.008

	// LiquidAlpha and StrokeAlpha cap the output; the effect overlays the
	// cup artwork and never hides it.
	LiquidAlpha = 0.4
	StrokeAlpha = 0.6

	noiseSeed = 1987
)

var (
	fieldNoise   = perlin.NewPerlin(2, 2, 1, noiseSeed)
	fieldFractal = perlin.NewPerlin(2, 2, 4, noiseSeed)
)

// noise01 samples single-octave noise remapped to 0-1.
func noise01(x, y float64) float64 {
	return clamp01(fieldNoise.Noise2D(x, y)*0.5 + 0.5)
}

// fbm01 samples four-octave fractal noise remapped to 0-1.
func fbm01(x, y float64) float64 {
	return clamp01(fieldFractal.Noise2D(x, y)*0.5 + 0.5)
}

// Surface returns the liquid height at horizontal position x (0-1): the
// fill level perturbed by two scrolling triangle waves.
func Surface(u Uniforms, x, seconds float64) float64 {
	t := flowTime(u, seconds)
	w1 := triangle(x*8+t*0.5) * waveStrength
	w2 := triangle(x*12-t*0.3) * waveStrength * 0.5
	return u.FillLevel + w1 + w2 - waveStrength*0.75
}

func flowTime(u Uniforms, seconds float64) float64 {
	return seconds * u.FlowSpeed * 0.3
}

// Shade computes the color of the point (x, y), both 0-1 with y growing
// upward from the bottom of the cup.
func Shade(u Uniforms, x, y, seconds float64) Pixel {
	if u.Empty() {
		return Pixel{}
	}

	t := flowTime(u, seconds)
	surface := Surface(u, x, seconds)

	inLiquid := smoothstep(0, 0.005, y) * smoothstep(surface+0.003, surface-0.003, y)
	inStroke := smoothstep(surface-strokeWidth-0.002, surface-strokeWidth, y) *
		smoothstep(surface+0.002, surface-0.002, y)

	c := u.BaseColor

	if u.HasSwirl > 0.5 {
		// ring-shaped cream ribbons around the middle of the liquid
		dx, dy := x-0.5, y-u.FillLevel*0.5
		dist := math.Hypot(dx, dy)
		angle := math.Atan2(dy, dx)

		spiral := math.Sin(angle*4+dist*15-t*1.2)*0.5 + 0.5
		mask := smoothstep(0.05, 0.15, dist) * smoothstep(0.5, 0.2, dist) * spiral
		cream := fbm01(angle*2+t*0.5, dist*5-t*0.3) * mask
		c = palette.LerpColor(c, u.SecondaryColor, cream*0.5)
	}

	// darker toward the bottom
	c = c.Scale(0.85 + smoothstep(0, surface, y)*0.15)

	shimmer := noise01(x*20+t, y*10) * 0.15 * smoothstep(surface-0.15, surface, y)
	c = c.Add(shimmer)

	movement := fbm01(x*3+t*0.2, y*3+t*0.2)
	c = palette.LerpColor(c, c.Scale(1.1), movement*0.2)

	var out Pixel
	alpha := 0.0
	if inLiquid > 0.01 {
		out.R, out.G, out.B = c.R, c.G, c.B
		alpha = inLiquid * LiquidAlpha
	}
	if inStroke > 0.01 {
		stroke := u.SecondaryColor.Scale(0.7)
		f := inStroke * 0.9
		out.R += (stroke.R - out.R) * f
		out.G += (stroke.G - out.G) * f
		out.B += (stroke.B - out.B) * f
		alpha = math.Max(alpha, inStroke*StrokeAlpha)
	}

	out.R *= alpha
	out.G *= alpha
	out.B *= alpha
	out.A = alpha
	return out
}

func triangle(v float64) float64 {
	return math.Abs(v-2*math.Floor(v/2) - 1)
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
