package site

import (
	"strconv"

	"github.com/simukka/brewfx/canvas"
	"github.com/simukka/brewfx/common"
	"github.com/simukka/brewfx/liquid"
	"github.com/simukka/brewfx/palette"
	"github.com/simukka/brewfx/particles"
	"github.com/simukka/brewfx/schedule"
	"github.com/simukka/brewfx/theme"
)

// Surfaces are the page resources the App draws on and reads from. Any
// of them may be missing; the matching feature then stays off.
type Surfaces struct {
	Frames schedule.FrameSource
	RNG    common.Source

	Particles canvas.Context
	// Viewport returns the particle canvas size.
	Viewport func() (width, height float64)

	Liquid liquid.Opener
	// LiquidBox returns the layout box of the liquid canvas container.
	LiquidBox func() liquid.Box

	Document theme.Document
}

// App is the drink-reactive animation core of one page.
type App struct {
	Config Config
	Model  *palette.Model

	Particles *particles.Engine
	Liquid    *liquid.Renderer
	Theme     *theme.Coordinator

	ParticleLoop *schedule.Loop
	LiquidLoop   *schedule.Loop

	// OnModeChange runs after the particle mode changes.
	OnModeChange func(m particles.Mode)

	viewport  func() (float64, float64)
	liquidBox func() liquid.Box
}

// NewApp builds every component and connects them. Nothing animates
// until Start.
func NewApp(cfg Config, s Surfaces) *App {
	common.EnableDebug = cfg.Debug

	rng := s.RNG
	if rng == nil {
		rng = common.NewTimeSeededRNG()
	}

	a := &App{
		Config:    cfg,
		Model:     palette.NewModel(),
		viewport:  s.Viewport,
		liquidBox: s.LiquidBox,
	}

	a.Particles = particles.NewEngine(rng)
	a.Particles.SetMode(cfg.ParticleMode)
	w, h := a.viewportSize()
	a.Particles.Init(s.Particles, w, h)

	a.Liquid = liquid.NewRenderer(a.Model)
	if s.LiquidBox != nil {
		a.Liquid.Resize(s.LiquidBox())
	}
	a.Liquid.Init(s.Liquid)

	a.Theme = theme.NewCoordinator(a.Model, s.Document, a.Particles, a.Liquid)

	if s.Frames != nil {
		a.ParticleLoop = schedule.NewLoop(s.Frames, a.Particles,
			schedule.ResizerFunc(a.resizeParticles), cfg.ParticleFPS)
		a.LiquidLoop = schedule.NewLoop(s.Frames, a.Liquid,
			schedule.ResizerFunc(a.resizeLiquid), cfg.LiquidFPS)
	}

	a.Particles.Overlay.Extra = a.stats
	return a
}

// Start begins both frame loops for the enabled engines.
func (a *App) Start() {
	if a.ParticleLoop != nil && a.Particles.Enabled() {
		a.ParticleLoop.Start()
	}
	if a.LiquidLoop != nil && a.Liquid.Enabled() {
		a.LiquidLoop.Start()
	}
}

// Dispose stops both frame loops for good.
func (a *App) Dispose() {
	if a.ParticleLoop != nil {
		a.ParticleLoop.Dispose()
	}
	if a.LiquidLoop != nil {
		a.LiquidLoop.Dispose()
	}
}

// Resize recomputes both surfaces after a viewport change.
func (a *App) Resize() {
	a.resizeParticles()
	a.resizeLiquid()
}

func (a *App) viewportSize() (float64, float64) {
	if a.viewport == nil {
		return 0, 0
	}
	return a.viewport()
}

func (a *App) resizeParticles() {
	w, h := a.viewportSize()
	if w <= 0 || h <= 0 {
		return
	}
	a.Particles.Resize(w, h)
}

func (a *App) resizeLiquid() {
	if a.liquidBox == nil {
		return
	}
	a.Liquid.Resize(a.liquidBox())
}

// SetScroll forwards the page scroll offset to the parallax.
func (a *App) SetScroll(y float64) {
	a.Particles.SetScroll(y)
}

// SelectDrink selects a drink; see theme.Coordinator.SelectDrink.
func (a *App) SelectDrink(id string) {
	a.Theme.SelectDrink(id)
}

// ResetSelection clears the drink selection.
func (a *App) ResetSelection() {
	a.Theme.ResetSelection()
}

// ActiveDrink returns the selected drink id.
func (a *App) ActiveDrink() string {
	return a.Theme.ActiveDrink()
}

// ContrastChanged re-applies accents after a light/dark switch.
func (a *App) ContrastChanged() {
	a.Theme.ContrastChanged()
}

// SetParticleMode switches the particle mode by name. Unknown names are
// ignored and reported as false.
func (a *App) SetParticleMode(name string) bool {
	m, ok := particles.ParseMode(name)
	if !ok {
		return false
	}
	a.setMode(m)
	return true
}

// ParticleMode returns the active particle mode name.
func (a *App) ParticleMode() string {
	return a.Particles.Mode().String()
}

// CycleParticleMode advances to the next mode, as the toggle button does.
func (a *App) CycleParticleMode() particles.Mode {
	m := a.Particles.Mode().Next()
	a.setMode(m)
	return m
}

func (a *App) setMode(m particles.Mode) {
	a.Particles.SetMode(m)
	if a.OnModeChange != nil {
		a.OnModeChange(m)
	}
}

// HandleKey runs the command bound to a key and reports whether one ran.
// The caller cancels the browser default only when it did.
func (a *App) HandleKey(k KeyPress) bool {
	switch k.Action() {
	case ToggleStats:
		a.Particles.Overlay.Toggle()
	case ToggleDebug:
		common.EnableDebug = !common.EnableDebug
	case CycleParticles:
		a.CycleParticleMode()
	case CloseDetail:
		if a.Theme.State() == theme.Unselected {
			return false
		}
		a.ResetSelection()
	default:
		return false
	}
	return true
}

func (a *App) stats() []particles.StatLine {
	lines := []particles.StatLine{
		{Label: "Drink", Value: a.ActiveDrink()},
	}
	if a.ParticleLoop != nil {
		lines = append(lines, particles.StatLine{
			Label: "Particle FPS", Value: strconv.FormatFloat(a.ParticleLoop.FPS(), 'f', 1, 64),
		})
	}
	if a.LiquidLoop != nil {
		v := "off"
		if a.Liquid.Enabled() {
			v = strconv.FormatFloat(a.LiquidLoop.FPS(), 'f', 1, 64)
		}
		lines = append(lines, particles.StatLine{Label: "Liquid FPS", Value: v})
	}
	return lines
}
