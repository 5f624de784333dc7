package particles

import (
	"math"

	"github.com/simukka/brewfx/canvas"
	"github.com/simukka/brewfx/common"
)

// drift is the falling, wobbling motion shared by dots and diamonds.
type drift struct{}

func (drift) spawn(p *Particle, f *field, _ bool) {
	p.X = f.randomX()
	p.Y = f.randomY()
	p.Size = f.rng.Random()*4 + 2
	p.SpeedX = common.Centered(f.rng, 0.3)
	p.SpeedY = f.rng.Random()*0.2 + 0.05
	p.Opacity = f.rng.Random()*0.25 + 0.08
	p.Drift = &DriftState{
		Wobble:      f.phase(),
		WobbleSpeed: f.rng.Random()*0.02 + 0.005,
	}
	p.Target = f.pick()
	p.Current = p.Target
}

func (drift) update(p *Particle, f *field) {
	d := p.Drift
	d.Wobble += d.WobbleSpeed
	p.X += p.SpeedX + math.Sin(d.Wobble)*Style.DriftWobbleSway
	p.Y += p.SpeedY

	m := Style.DriftMargin
	if p.Y > f.height+m {
		p.Y = -m
		p.X = f.randomX()
		f.retarget(p)
	}
	if p.X > f.width+m {
		p.X = -m
	}
	if p.X < -m {
		p.X = f.width + m
	}
}

func (drift) depth(p *Particle) float64 {
	return p.Size / Style.DriftDepth
}

func (drift) glows() bool { return true }

type dotsBehavior struct{ drift }

func (dotsBehavior) draw(ctx canvas.Context, p *Particle, offsetY float64) {
	color := p.Color(p.Opacity)
	ctx.BeginPath()
	ctx.Arc(p.X, p.Y-offsetY, p.Size, 0, math.Pi*2)
	ctx.SetFillStyle(color)
	ctx.SetShadow(color, p.Size*Style.GlowFactor)
	ctx.Fill()
}

type diamondsBehavior struct{ drift }

func (diamondsBehavior) draw(ctx canvas.Context, p *Particle, offsetY float64) {
	color := p.Color(p.Opacity)
	size := p.Size * Style.DiamondScale

	ctx.Save()
	ctx.Translate(p.X, p.Y-offsetY)
	ctx.Rotate(math.Pi/4 + p.Drift.Wobble*0.1)
	ctx.BeginPath()
	ctx.Rect(-size/2, -size/2, size, size)
	ctx.SetFillStyle(color)
	ctx.SetShadow(color, p.Size*Style.GlowFactor)
	ctx.Fill()
	ctx.Restore()
}
