//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/brewfx/site"
)

func main() {
	cfg := site.DefaultConfig()

	// Optional page overrides: window.BrewFXConfig = {debug: true, liquidFallback: true}
	if o := js.Global.Get("BrewFXConfig"); o != nil && o != js.Undefined {
		cfg.Debug = o.Get("debug").Bool()
		cfg.LiquidFallback = o.Get("liquidFallback").Bool()
	}

	app := site.Mount(cfg)

	// Expose the drink API to the page scripts
	js.Global.Set("BrewFX", map[string]interface{}{
		"selectDrink": func(id string) {
			app.SelectDrink(id)
		},
		"resetSelection": func() {
			app.ResetSelection()
		},
		"setParticleMode": func(mode string) bool {
			return app.SetParticleMode(mode)
		},
		"getParticleMode": func() string {
			return app.ParticleMode()
		},
		"getActiveDrinkId": func() string {
			return app.ActiveDrink()
		},
	})

	// Stop both loops when the page goes away
	js.Global.Call("addEventListener", "beforeunload", func() {
		app.Dispose()
	})

	select {}
}
