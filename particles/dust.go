package particles

import (
	"math"

	"github.com/simukka/brewfx/canvas"
	"github.com/simukka/brewfx/common"
)

type dustBehavior struct{}

func (dustBehavior) spawn(p *Particle, f *field, _ bool) {
	p.X = f.randomX()
	p.Y = f.randomY()
	p.Size = f.rng.Random()*3 + 1.5
	p.Opacity = f.rng.Random()*0.35 + 0.15
	p.SpeedX = common.Centered(f.rng, 0.4)
	p.SpeedY = common.Centered(f.rng, 0.15)
	p.Dust = &DustState{
		SwirlPhase:        f.phase(),
		SwirlSpeed:        f.rng.Random()*0.01 + 0.005,
		SwirlRadius:       f.rng.Random()*15 + 5,
		DirectionTimer:    common.RandomInt(f.rng, 0, 200),
		DirectionInterval: common.RandomInt(f.rng, 200, 500),
	}
	p.Target = f.pick()
	p.Current = p.Target
}

func (dustBehavior) update(p *Particle, f *field) {
	d := p.Dust
	d.SwirlPhase += d.SwirlSpeed

	// air currents
	d.DirectionTimer++
	if d.DirectionTimer >= d.DirectionInterval {
		d.DirectionTimer = 0
		d.DirectionInterval = common.RandomInt(f.rng, 200, 500)
		p.SpeedX = clamp(p.SpeedX+common.Centered(f.rng, 0.2), -0.5, 0.5)
		p.SpeedY = clamp(p.SpeedY+common.Centered(f.rng, 0.1), -0.2, 0.2)
	}

	p.X += p.SpeedX + math.Sin(d.SwirlPhase)*d.SwirlRadius*0.02
	p.Y += p.SpeedY + math.Cos(d.SwirlPhase*0.7)*d.SwirlRadius*0.01

	m := Style.DustMargin
	if p.X > f.width+m {
		p.X = -m
		f.retarget(p)
	}
	if p.X < -m {
		p.X = f.width + m
		f.retarget(p)
	}
	if p.Y > f.height+m {
		p.Y = -m
	}
	if p.Y < -m {
		p.Y = f.height + m
	}
}

func (dustBehavior) draw(ctx canvas.Context, p *Particle, offsetY float64) {
	ctx.BeginPath()
	ctx.Arc(p.X, p.Y-offsetY, p.Size, 0, math.Pi*2)
	ctx.SetFillStyle(p.Color(p.Opacity))
	ctx.Fill()
}

func (dustBehavior) depth(p *Particle) float64 {
	return p.Size / Style.DustDepth
}

func (dustBehavior) glows() bool { return false }
