package liquid

import (
	"errors"

	"github.com/simukka/brewfx/common"
	"github.com/simukka/brewfx/palette"
)

var (
	// ErrNoContext is returned when the surface offers no graphics context.
	ErrNoContext = errors.New("liquid: graphics context unavailable")
	// ErrCompile is returned when a shader fails to compile.
	ErrCompile = errors.New("liquid: shader compile failed")
	// ErrLink is returned when the shader program fails to link.
	ErrLink = errors.New("liquid: program link failed")
)

// Backend draws one frame of the effect.
type Backend interface {
	// Resize sets the drawing buffer size in device pixels.
	Resize(width, height int)
	// Draw renders u at the given animation time.
	Draw(u Uniforms, seconds float64)
}

// Opener creates the backend once the surface is known.
type Opener func() (Backend, error)

// Box is the CSS layout box of the canvas container.
type Box struct {
	Width  float64
	Height float64
	DPR    float64
}

// Pixels returns the box size in device pixels.
func (b Box) Pixels() (int, int) {
	dpr := b.DPR
	if dpr <= 0 {
		dpr = 1
	}
	return int(b.Width * dpr), int(b.Height * dpr)
}

// Renderer owns the animation state and the backend.
type Renderer struct {
	model   *palette.Model
	backend Backend
	state   State
	drink   string

	started bool
	start   float64
	width   int
	height  int
}

// NewRenderer creates a renderer showing the empty cup.
func NewRenderer(model *palette.Model) *Renderer {
	empty := FromProfile(model.LiquidProfile(palette.NoneID))
	return &Renderer{
		model: model,
		state: State{Current: empty, Target: empty},
		drink: palette.DefaultID,
	}
}

// Init opens the backend. Failure disables the effect for the rest of the
// session; it is logged once and never reported to the caller.
func (r *Renderer) Init(open Opener) {
	if open == nil {
		return
	}
	b, err := open()
	if err != nil || b == nil {
		if err == nil {
			err = ErrNoContext
		}
		common.WarnOnce("liquid-init", "liquid effect disabled:", err.Error())
		return
	}
	r.backend = b
	if r.width > 0 && r.height > 0 {
		b.Resize(r.width, r.height)
	}
}

// Enabled reports whether a backend is attached.
func (r *Renderer) Enabled() bool {
	return r.backend != nil
}

// SetActiveDrink retargets the animation at the drink's profile. The
// change is eased in by Tick, not applied here.
func (r *Renderer) SetActiveDrink(id string) {
	r.drink = r.model.Resolve(id)
	r.state.Target = FromProfile(r.model.LiquidProfile(id))
}

// ActiveDrink returns the resolved id of the current target.
func (r *Renderer) ActiveDrink() string {
	return r.drink
}

// Resize recomputes the device-pixel size from the container box.
func (r *Renderer) Resize(box Box) {
	r.width, r.height = box.Pixels()
	if r.backend != nil {
		r.backend.Resize(r.width, r.height)
	}
}

// Tick eases the uniforms one step and draws a frame.
func (r *Renderer) Tick(now float64) {
	if !r.Enabled() {
		return
	}
	if !r.started {
		r.started = true
		r.start = now
	}
	r.state.Step(Convergence)
	r.backend.Draw(r.state.Current, (now-r.start)/1000)
}

// State returns a copy of the animation state.
func (r *Renderer) State() State {
	return r.state
}
