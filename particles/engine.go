package particles

import (
	"github.com/simukka/brewfx/canvas"
	"github.com/simukka/brewfx/common"
	"github.com/simukka/brewfx/palette"
)

// Engine owns the particle pool, the active mode and the drawing surface.
// It is driven by a schedule.Loop through Tick.
type Engine struct {
	ctx    canvas.Context
	field  field
	pool   *Pool
	mode   Mode
	active behavior

	scrollY       float64
	targetScrollY float64

	Overlay *StatsOverlay
}

// NewEngine creates an engine in DefaultMode drawing the default palette.
// Nothing is drawn until Init supplies a surface.
func NewEngine(rng common.Source) *Engine {
	largest := 0
	for _, n := range Counts {
		if n > largest {
			largest = n
		}
	}
	return &Engine{
		field: field{
			rng:    rng,
			colors: palette.NewModel().ParticleColors(palette.DefaultID),
		},
		pool:    NewPool(largest),
		mode:    DefaultMode,
		active:  behaviorFor(DefaultMode),
		Overlay: NewStatsOverlay(),
	}
}

// Init attaches the drawing surface and populates the pool. A nil
// surface leaves the engine disabled.
func (e *Engine) Init(ctx canvas.Context, width, height float64) {
	if ctx == nil {
		common.Debug("particles: no drawing surface, disabled")
		return
	}
	e.ctx = ctx
	e.field.width = width
	e.field.height = height
	e.populate()
}

// Enabled reports whether the engine has a surface to draw on.
func (e *Engine) Enabled() bool {
	return e.ctx != nil
}

// Mode returns the active mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// SetMode switches to m and repopulates the pool from scratch. Particles
// are not carried over; their mode fields are not comparable.
func (e *Engine) SetMode(m Mode) {
	if !m.Valid() {
		return
	}
	e.mode = m
	e.active = behaviorFor(m)
	if e.Enabled() {
		e.populate()
	}
}

func (e *Engine) populate() {
	e.pool.Clear()
	for i := 0; i < e.mode.Count(); i++ {
		p := e.pool.Acquire()
		if p == nil {
			break
		}
		p.reset(e.mode)
		e.active.spawn(p, &e.field, true)
	}
	common.Debug("particles: mode", e.mode.String(), "count", e.pool.ActiveCount)
}

// SetTargetPalette retargets every particle at a random entry of colors.
// Positions and motion are untouched; colors converge over the next
// frames. Repeating the current palette is a no-op.
func (e *Engine) SetTargetPalette(colors palette.ParticleColorSet) {
	if len(colors) == 0 || colors.Equal(e.field.colors) {
		return
	}
	e.field.colors = append(palette.ParticleColorSet(nil), colors...)
	e.pool.ForEach(func(p *Particle, _ int) {
		e.field.retarget(p)
	})
}

// Palette returns the palette particles are converging toward.
func (e *Engine) Palette() palette.ParticleColorSet {
	return e.field.colors
}

// Size returns the surface dimensions.
func (e *Engine) Size() (width, height float64) {
	return e.field.width, e.field.height
}

// Resize scales every particle position by the change in surface size
// and clamps it to the new bounds.
func (e *Engine) Resize(width, height float64) {
	oldW, oldH := e.field.width, e.field.height
	e.field.width = width
	e.field.height = height
	if oldW <= 0 || oldH <= 0 {
		return
	}

	sx := width / oldW
	sy := height / oldH
	e.pool.ForEach(func(p *Particle, _ int) {
		p.X = clamp(p.X*sx, 0, width)
		p.Y = clamp(p.Y*sy, 0, height)
	})
}

// SetScroll records the page scroll offset the parallax eases toward.
func (e *Engine) SetScroll(y float64) {
	e.targetScrollY = y
}

// Particles returns the live particles.
func (e *Engine) Particles() []*Particle {
	return e.pool.Active()
}

// Count returns the number of live particles.
func (e *Engine) Count() int {
	return e.pool.ActiveCount
}

// Tick advances and redraws the whole field by one frame.
func (e *Engine) Tick(now float64) {
	if !e.Enabled() {
		return
	}

	e.ctx.ClearRect(0, 0, e.field.width, e.field.height)
	e.scrollY += (e.targetScrollY - e.scrollY) * Style.ScrollSmoothing

	b := e.active
	e.pool.ForEach(func(p *Particle, _ int) {
		p.Current = palette.LerpColor(p.Current, p.Target, Style.ColorConvergence)
		b.update(p, &e.field)
		offset := e.scrollY * b.depth(p) * Style.ParallaxStrength
		b.draw(e.ctx, p, offset)
	})

	if b.glows() {
		e.ctx.SetShadow(Style.ShadowReset, 0)
	}

	if e.Overlay != nil {
		e.Overlay.Render(e.ctx, e)
	}
}
