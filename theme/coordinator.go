package theme

import (
	"github.com/simukka/brewfx/common"
	"github.com/simukka/brewfx/palette"
)

// State is the selection state.
type State int

const (
	// Unselected means the default sentinel is active.
	Unselected State = iota
	// Selected means a themed drink is active.
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "selected"
	}
	return "unselected"
}

// Coordinator is the single owner of the active drink selection.
type Coordinator struct {
	model     *palette.Model
	doc       Document
	particles ParticleTarget
	liquid    LiquidTarget

	active string

	// OnChange, if set, runs after every applied selection.
	OnChange func(id string)
}

// NewCoordinator creates a coordinator in the Unselected state. doc,
// particles and liquid may each be nil when that surface is absent.
func NewCoordinator(model *palette.Model, doc Document, particles ParticleTarget, liquid LiquidTarget) *Coordinator {
	return &Coordinator{
		model:     model,
		doc:       doc,
		particles: particles,
		liquid:    liquid,
		active:    palette.DefaultID,
	}
}

// SelectDrink makes id the active drink and pushes its palette, liquid
// profile and accents everywhere. Unknown ids select the default.
// Selecting the active drink again re-applies the same values.
func (c *Coordinator) SelectDrink(id string) {
	resolved := c.model.Resolve(id)
	if resolved != id && id != palette.DefaultID && id != palette.NoneID {
		common.Debug("theme: unknown drink", id, "using", resolved)
	}
	c.active = resolved

	if c.particles != nil {
		c.particles.SetTargetPalette(c.model.ParticleColors(resolved))
	}
	if c.liquid != nil {
		c.liquid.SetActiveDrink(resolved)
	}
	c.apply()

	if c.OnChange != nil {
		c.OnChange(resolved)
	}
}

// ResetSelection returns to the default selection.
func (c *Coordinator) ResetSelection() {
	c.SelectDrink(palette.DefaultID)
}

// ContrastChanged re-applies the accents after a light/dark switch. The
// default selection carries no inline colors and is left alone.
func (c *Coordinator) ContrastChanged() {
	if c.active == palette.DefaultID {
		return
	}
	c.apply()
}

// ActiveDrink returns the active drink id.
func (c *Coordinator) ActiveDrink() string {
	return c.active
}

// State reports whether a drink is selected.
func (c *Coordinator) State() State {
	if c.active == palette.DefaultID {
		return Unselected
	}
	return Selected
}

// Accent resolves the styling of the active selection under mode.
func (c *Coordinator) Accent(mode palette.ThemeMode) Accent {
	a := Accent{
		ID:      c.active,
		Default: c.active == palette.DefaultID,
		Ramp:    c.model.Ramp(c.active),
	}
	if !a.Default {
		a.Color = c.model.AccentColor(c.active, mode)
	}
	return a
}

func (c *Coordinator) apply() {
	if c.doc == nil {
		return
	}
	a := c.Accent(c.doc.ThemeMode())

	for _, g := range Registry {
		for _, el := range g.elements(c.doc) {
			g.Apply(el, a)
		}
	}

	if root := c.doc.Root(); root != nil {
		for i, color := range a.Ramp {
			root.SetStyle(NavColorProperty(i), color)
		}
	}
}
