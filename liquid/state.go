// Package liquid renders the "cup filling" effect behind the drink menu.
// A Renderer eases its uniforms toward the selected drink's profile every
// frame and hands them to a Backend: WebGL in the browser, or a
// procedural raster fallback drawn on a 2D canvas.
package liquid

import (
	"math"

	"github.com/simukka/brewfx/palette"
)

// Convergence is the per-frame easing factor of every uniform.
const Convergence = 0.03

// Uniforms are the shader parameters of one frame. Colors are 0-1.
// HasSwirl is eased like the other fields, so it is a weight, not a flag.
type Uniforms struct {
	BaseColor      palette.RGB
	SecondaryColor palette.RGB
	Viscosity      float64
	FlowSpeed      float64
	FillLevel      float64
	FoamHeight     float64
	HasSwirl       float64
}

// FromProfile converts a liquid profile into uniforms.
func FromProfile(p palette.LiquidProfile) Uniforms {
	u := Uniforms{
		BaseColor:      p.BaseColor,
		SecondaryColor: p.SecondaryColor,
		Viscosity:      p.Viscosity,
		FlowSpeed:      p.FlowSpeed,
		FillLevel:      p.FillLevel,
		FoamHeight:     p.FoamHeight,
	}
	if p.HasSwirl {
		u.HasSwirl = 1
	}
	return u
}

// Empty reports whether u renders nothing.
func (u Uniforms) Empty() bool {
	return u.FillLevel < palette.EmptyFillThreshold
}

// Distance returns the largest absolute difference over every field.
func (u Uniforms) Distance(o Uniforms) float64 {
	d := math.Max(u.BaseColor.Distance(o.BaseColor), u.SecondaryColor.Distance(o.SecondaryColor))
	for _, pair := range [][2]float64{
		{u.Viscosity, o.Viscosity},
		{u.FlowSpeed, o.FlowSpeed},
		{u.FillLevel, o.FillLevel},
		{u.FoamHeight, o.FoamHeight},
		{u.HasSwirl, o.HasSwirl},
	} {
		d = math.Max(d, math.Abs(pair[0]-pair[1]))
	}
	return d
}

// State is the animation state of the renderer. Current moves toward
// Target on every Step and never jumps; Target is replaced wholesale.
type State struct {
	Current Uniforms
	Target  Uniforms
}

// Step moves every field of Current toward Target by fraction k.
func (s *State) Step(k float64) {
	c, t := &s.Current, s.Target
	c.BaseColor = palette.LerpColor(c.BaseColor, t.BaseColor, k)
	c.SecondaryColor = palette.LerpColor(c.SecondaryColor, t.SecondaryColor, k)
	c.Viscosity = palette.LerpScalar(c.Viscosity, t.Viscosity, k)
	c.FlowSpeed = palette.LerpScalar(c.FlowSpeed, t.FlowSpeed, k)
	c.FillLevel = palette.LerpScalar(c.FillLevel, t.FillLevel, k)
	c.FoamHeight = palette.LerpScalar(c.FoamHeight, t.FoamHeight, k)
	c.HasSwirl = palette.LerpScalar(c.HasSwirl, t.HasSwirl, k)
}
