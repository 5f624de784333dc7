package palette

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParticleColorSet is an ordered list of 0-255 colors particles pick from.
type ParticleColorSet []RGB

// Equal reports whether both sets hold the same colors in the same order.
func (s ParticleColorSet) Equal(o ParticleColorSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// LiquidProfile parametrizes the liquid fill animation for one drink.
type LiquidProfile struct {
	BaseColor      RGB
	SecondaryColor RGB
	Viscosity      float64
	FlowSpeed      float64
	FillLevel      float64
	FoamHeight     float64
	HasSwirl       bool
}

// Empty reports whether the profile renders nothing.
func (p LiquidProfile) Empty() bool {
	return p.FillLevel < EmptyFillThreshold
}

// EmptyFillThreshold is the fill level below which the cup renders empty.
const EmptyFillThreshold = 0.01

// Accent holds the contrast-dependent accent colors of one drink.
type Accent struct {
	Light string
	Dark  string
	Ramp  [5]string
}

// ThemeMode is the ambient light/dark contrast mode.
type ThemeMode int

const (
	Light ThemeMode = iota
	Dark
)

// ParseThemeMode maps a data-theme attribute value to a mode.
// Anything but "dark" is light.
func ParseThemeMode(s string) ThemeMode {
	if strings.EqualFold(strings.TrimSpace(s), "dark") {
		return Dark
	}
	return Light
}

func (m ThemeMode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Model is the read-only ColorModel. Lookups of unknown ids fall back to
// the default entry; the drink catalog is edited independently of these
// tables.
type Model struct {
	particles map[string]ParticleColorSet
	liquids   map[string]LiquidProfile
	accents   map[string]Accent
	order     []string
}

// NewModel returns the model backed by the built-in tables.
func NewModel() *Model {
	return &Model{
		particles: particleColors,
		liquids:   liquidProfiles,
		accents:   accents,
		order:     drinkOrder,
	}
}

// Known reports whether id has its own tables.
func (m *Model) Known(id string) bool {
	_, ok := m.accents[id]
	return ok && id != DefaultID
}

// Resolve maps any identifier to the id whose tables will be used.
// The sentinels, the empty string and unknown ids all resolve to DefaultID.
func (m *Model) Resolve(id string) string {
	if m.Known(id) {
		return id
	}
	return DefaultID
}

// Drinks returns the themed drink ids in menu order.
func (m *Model) Drinks() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// ParticleColors returns the particle palette for id.
func (m *Model) ParticleColors(id string) ParticleColorSet {
	if set, ok := m.particles[m.Resolve(id)]; ok {
		return set
	}
	return m.particles[DefaultID]
}

// LiquidProfile returns the liquid profile for id. The default selection
// maps to the empty cup.
func (m *Model) LiquidProfile(id string) LiquidProfile {
	resolved := m.Resolve(id)
	if resolved == DefaultID {
		return m.liquids[NoneID]
	}
	if p, ok := m.liquids[resolved]; ok {
		return p
	}
	return m.liquids[NoneID]
}

// Accent returns the accent record for id.
func (m *Model) Accent(id string) Accent {
	if a, ok := m.accents[m.Resolve(id)]; ok {
		return a
	}
	return m.accents[DefaultID]
}

// AccentColor returns the logo/title accent for id under mode.
func (m *Model) AccentColor(id string, mode ThemeMode) string {
	a := m.Accent(id)
	if mode == Dark {
		return a.Dark
	}
	return a.Light
}

// Ramp returns the five-stop navigation ramp for id.
func (m *Model) Ramp(id string) [5]string {
	return m.Accent(id).Ramp
}

// GradientBorder renders a ramp as a CSS border-image value.
func GradientBorder(ramp [5]string) string {
	stops := make([]string, 0, len(ramp))
	for _, h := range ramp {
		if c, err := colorful.Hex(h); err == nil {
			h = c.Hex()
		}
		stops = append(stops, h)
	}
	return "linear-gradient(to right, " + strings.Join(stops, ", ") + ") 1"
}
