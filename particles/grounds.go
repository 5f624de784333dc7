package particles

import (
	"math"

	"github.com/simukka/brewfx/canvas"
	"github.com/simukka/brewfx/common"
)

type groundsBehavior struct{}

func (groundsBehavior) spawn(p *Particle, f *field, _ bool) {
	p.X = f.randomX()
	p.Y = f.randomY()
	p.Size = f.rng.Random()*2.5 + 1
	p.Opacity = f.rng.Random()*0.4 + 0.2
	p.SpeedX = common.Centered(f.rng, 0.08)

	// most sink, some float
	if common.Chance(f.rng, 0.7) {
		p.SpeedY = f.rng.Random()*0.12 + 0.02
	} else {
		p.SpeedY = -(f.rng.Random()*0.05 + 0.01)
	}

	p.Grounds = &GroundsState{
		Wobble:        f.phase(),
		WobbleSpeed:   f.rng.Random()*0.008 + 0.002,
		WobbleAmount:  f.rng.Random()*0.3 + 0.1,
		Rotation:      f.phase(),
		RotationSpeed: common.Centered(f.rng, 0.01),
		Stretch:       f.rng.Random()*0.5 + 0.8,
	}
	p.Target = f.pick()
	p.Current = p.Target
}

func (groundsBehavior) update(p *Particle, f *field) {
	g := p.Grounds
	g.Wobble += g.WobbleSpeed
	g.Rotation += g.RotationSpeed

	p.X += p.SpeedX + math.Sin(g.Wobble)*g.WobbleAmount
	p.Y += p.SpeedY

	// re-enter from the side opposite to the direction of travel
	m := Style.GroundsMargin
	if p.Y > f.height+m {
		p.Y = -m
		p.X = f.randomX()
		f.retarget(p)
	}
	if p.Y < -m {
		p.Y = f.height + m
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

func (groundsBehavior) draw(ctx canvas.Context, p *Particle, offsetY float64) {
	g := p.Grounds
	ctx.BeginPath()
	ctx.Ellipse(p.X, p.Y-offsetY, p.Size, p.Size*g.Stretch, g.Rotation)
	ctx.SetFillStyle(p.Color(p.Opacity))
	ctx.Fill()
}

func (groundsBehavior) depth(p *Particle) float64 {
	return p.Size / Style.GroundsDepth
}

func (groundsBehavior) glows() bool { return false }
