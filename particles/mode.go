// Package particles implements the decorative spice/steam particle field
// drawn behind the site. One of five modes is active at a time; each mode
// has its own spawn, motion and drawing rule.
package particles

import "strings"

// Mode selects the particle motion and rendering style.
type Mode int

const (
	Dots Mode = iota
	Diamonds
	Steam
	Dust
	Grounds
)

// DefaultMode is the mode the site starts in.
const DefaultMode = Steam

var modeNames = [...]string{
	Dots:     "dots",
	Diamonds: "diamonds",
	Steam:    "steam",
	Dust:     "dust",
	Grounds:  "grounds",
}

var modeLabels = [...]string{
	Dots:     "Dots",
	Diamonds: "Diamonds",
	Steam:    "Steam",
	Dust:     "Spice Dust",
	Grounds:  "Coffee Grounds",
}

// Counts is the pool size of each mode. Glowing modes run fewer particles
// than flat ones.
var Counts = map[Mode]int{
	Dots:     200,
	Diamonds: 200,
	Steam:    120,
	Dust:     150,
	Grounds:  100,
}

// Modes lists every mode in toggle order.
func Modes() []Mode {
	return []Mode{Dots, Diamonds, Steam, Dust, Grounds}
}

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes() {
		if m.String() == s {
			return m, true
		}
	}
	return DefaultMode, false
}

// Valid reports whether m is one of the five modes.
func (m Mode) Valid() bool {
	return m >= Dots && m <= Grounds
}

func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return modeNames[m]
}

// Label is the human-readable name shown on the toggle button.
func (m Mode) Label() string {
	if !m.Valid() {
		return ""
	}
	return modeLabels[m]
}

// Next returns the mode after m, wrapping around.
func (m Mode) Next() Mode {
	if !m.Valid() {
		return DefaultMode
	}
	return (m + 1) % Mode(len(modeNames))
}

// Count returns the pool size of m.
func (m Mode) Count() int {
	return Counts[m]
}

// ToggleLabel is the text of the particle toggle button.
func ToggleLabel(m Mode) string {
	return "Particles: " + m.Label()
}
