package particles

import (
	"math"

	"github.com/simukka/brewfx/canvas"
)

type steamBehavior struct{}

func (steamBehavior) spawn(p *Particle, f *field, randomizeLife bool) {
	p.X = f.randomX()
	p.Y = f.height + f.rng.Random()*Style.SteamSpawnBelow
	p.Size = f.rng.Random()*6 + 3
	p.SpeedY = -(f.rng.Random()*0.4 + 0.2)

	s := &SteamState{
		OriginalSize:  p.Size,
		CurlOffset:    f.phase(),
		CurlSpeed:     f.rng.Random()*0.008 + 0.003,
		CurlAmplitude: f.rng.Random()*40 + 20,
	}
	if randomizeLife {
		s.Life = math.Floor(f.rng.Random() * 400)
	}
	s.MaxLife = f.rng.Random()*400 + 300
	p.Steam = s

	p.Target = f.pick()
	p.Current = p.Target
	steamEnvelope(p)
}

func (steamBehavior) update(p *Particle, f *field) {
	s := p.Steam
	s.Life++
	s.CurlOffset += s.CurlSpeed
	p.Y += p.SpeedY

	if s.Life >= s.MaxLife || p.Y < -Style.SteamTopMargin {
		p.X = f.randomX()
		p.Y = f.height + f.rng.Random()*Style.SteamSpawnBelow
		s.Life = 0
		s.MaxLife = f.rng.Random()*400 + 300
		s.CurlOffset = f.phase()
		s.CurlAmplitude = f.rng.Random()*40 + 20
		f.retarget(p)
	}
	steamEnvelope(p)
}

// steamEnvelope derives curl, opacity and size from the life fraction.
// Opacity fades in over the first 10% of life and out over the last 30%.
func steamEnvelope(p *Particle) {
	s := p.Steam
	ratio := 0.0
	if s.MaxLife > 0 {
		ratio = s.Life / s.MaxLife
	}

	s.CurlX = math.Sin(s.CurlOffset) * s.CurlAmplitude * ratio

	switch {
	case ratio < 0.1:
		p.Opacity = (ratio / 0.1) * Style.SteamPeak
	case ratio > 0.7:
		p.Opacity = math.Max(0, (1-ratio)/0.3) * Style.SteamPeak
	default:
		p.Opacity = Style.SteamPeak
	}

	p.Size = s.OriginalSize * (1 + math.Min(ratio, 1)*0.5)
}

func (steamBehavior) draw(ctx canvas.Context, p *Particle, offsetY float64) {
	x := p.X + p.Steam.CurlX
	y := p.Y - offsetY

	g := ctx.CreateRadialGradient(x, y, 0, x, y, p.Size)
	g.AddColorStop(0, p.Color(p.Opacity))
	g.AddColorStop(0.5, p.Color(p.Opacity*0.5))
	g.AddColorStop(1, p.Color(0))

	ctx.BeginPath()
	ctx.Arc(x, y, p.Size, 0, math.Pi*2)
	ctx.SetFillGradient(g)
	ctx.Fill()
}

func (steamBehavior) depth(p *Particle) float64 {
	return p.Steam.OriginalSize / Style.SteamDepth
}

func (steamBehavior) glows() bool { return false }
