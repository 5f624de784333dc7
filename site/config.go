// Package site wires the color model, the two animation engines, the
// theme coordinator and their frame loops into one page-level App.
package site

import (
	"github.com/simukka/brewfx/particles"
	"github.com/simukka/brewfx/schedule"
)

// Config names the page elements the App binds to and its frame budgets.
type Config struct {
	// Element ids
	ParticleCanvasID string
	LiquidCanvasID   string
	LiquidRegionID   string
	ToggleButtonID   string
	DetailBackID     string

	// Selectors
	DrinkCardSelector string
	DrinkIDAttribute  string
	SelectedClass     string

	ParticleMode particles.Mode
	ParticleFPS  schedule.Options
	LiquidFPS    schedule.Options

	// LiquidFallback draws the liquid on a 2D canvas when WebGL is missing
	// instead of disabling it.
	LiquidFallback bool

	Debug bool
}

// DefaultConfig matches the markup of the café site.
func DefaultConfig() Config {
	return Config{
		ParticleCanvasID: "spice-canvas",
		LiquidCanvasID:   "liquid-canvas",
		LiquidRegionID:   "menu",
		ToggleButtonID:   "particleToggle",
		DetailBackID:     "drinkDetailBack",

		DrinkCardSelector: ".drink-card",
		DrinkIDAttribute:  "data-drink",
		SelectedClass:     "selected",

		ParticleMode: particles.DefaultMode,
		ParticleFPS:  schedule.DefaultOptions,
		// uncapped in the foreground, like the shader it drives
		LiquidFPS: schedule.Options{ActiveFPS: 0, InactiveFPS: schedule.DefaultOptions.InactiveFPS},
	}
}

// CardSelector matches the drink cards that carry a drink id. Clicks are
// resolved with closest(), so cards rendered after Mount are found too.
func (c Config) CardSelector() string {
	if c.DrinkIDAttribute == "" {
		return c.DrinkCardSelector
	}
	return c.DrinkCardSelector + "[" + c.DrinkIDAttribute + "]"
}
