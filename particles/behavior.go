package particles

import (
	"math"

	"github.com/simukka/brewfx/canvas"
	"github.com/simukka/brewfx/common"
	"github.com/simukka/brewfx/palette"
)

// behavior is the motion and drawing rule of one mode. The engine picks
// one at SetMode time and never branches on mode inside the frame loop.
type behavior interface {
	// spawn fills a freshly reset particle. randomizeLife staggers
	// lifetimes so a new field does not pulse in unison.
	spawn(p *Particle, f *field, randomizeLife bool)
	// update advances p by one frame, wrapping or respawning at the edges.
	update(p *Particle, f *field)
	// draw renders p shifted up by the parallax offset.
	draw(ctx canvas.Context, p *Particle, offsetY float64)
	// depth scales the scroll offset of p.
	depth(p *Particle) float64
	// glows reports whether draw leaves a shadow set on the context.
	glows() bool
}

// field is the shared environment behaviors read and mutate particles in.
type field struct {
	rng    common.Source
	width  float64
	height float64
	colors palette.ParticleColorSet
}

func (f *field) randomX() float64 {
	return f.rng.Random() * f.width
}

func (f *field) randomY() float64 {
	return f.rng.Random() * f.height
}

func (f *field) pick() palette.RGB {
	if len(f.colors) == 0 {
		return palette.RGB{}
	}
	i := int(f.rng.Random() * float64(len(f.colors)))
	if i >= len(f.colors) {
		i = len(f.colors) - 1
	}
	return f.colors[i]
}

// retarget points p at a random palette entry. Current is left alone so
// the particle eases into its new color.
func (f *field) retarget(p *Particle) {
	p.Target = f.pick()
}

func (f *field) phase() float64 {
	return f.rng.Random() * math.Pi * 2
}

func behaviorFor(m Mode) behavior {
	switch m {
	case Dots:
		return dotsBehavior{}
	case Diamonds:
		return diamondsBehavior{}
	case Dust:
		return dustBehavior{}
	case Grounds:
		return groundsBehavior{}
	default:
		return steamBehavior{}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
