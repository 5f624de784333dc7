//go:build js
// +build js

package site

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/brewfx/canvas"
	"github.com/simukka/brewfx/common"
	"github.com/simukka/brewfx/liquid"
	"github.com/simukka/brewfx/particles"
	"github.com/simukka/brewfx/schedule"
)

// Mount builds an App on the live page, binds its DOM events and
// starts it.
func Mount(cfg Config) *App {
	doc := js.Global.Get("document")

	particleEl := doc.Call("getElementById", cfg.ParticleCanvasID)
	liquidEl := doc.Call("getElementById", cfg.LiquidCanvasID)

	s := Surfaces{
		Frames:   schedule.RAF{},
		Document: NewDocument(doc),
	}

	if ctx, ok := canvas.FromCanvas(particleEl); ok {
		s.Particles = ctx
		s.Viewport = func() (float64, float64) {
			w, h := canvas.Viewport()
			particleEl.Set("width", w)
			particleEl.Set("height", h)
			return w, h
		}
	} else {
		common.DebugWarn("particles: canvas #" + cfg.ParticleCanvasID + " not found")
	}

	if !missing(liquidEl) {
		s.Liquid = liquidOpener(liquidEl, cfg.LiquidFallback)
		s.LiquidBox = func() liquid.Box {
			w, h, dpr := canvas.ParentBox(liquidEl)
			return liquid.Box{Width: w, Height: h, DPR: dpr}
		}
	}

	a := NewApp(cfg, s)
	bind(a, doc)
	a.Start()
	return a
}

func liquidOpener(el *js.Object, fallback bool) liquid.Opener {
	return func() (liquid.Backend, error) {
		b, err := liquid.NewWebGLBackend(el)
		if err == nil || !fallback {
			return b, err
		}
		common.DebugWarn("liquid: webgl unavailable, using 2d fallback:", err.Error())
		return liquid.NewCanvasBackend(el)
	}
}

func bind(a *App, doc *js.Object) {
	cfg := a.Config
	win := js.Global

	// One delegated listener, so cards rendered after Mount still select.
	cardSel := cfg.CardSelector()
	doc.Call("addEventListener", "click", func(e *js.Object) {
		target := e.Get("target")
		if missing(target) || missing(target.Get("closest")) {
			return
		}
		card := target.Call("closest", cardSel)
		if missing(card) {
			return
		}
		a.SelectDrink(card.Call("getAttribute", cfg.DrinkIDAttribute).String())
	})

	// Keep the card highlight in step with the selection, however it changed.
	a.Theme.OnChange = func(id string) {
		cards := doc.Call("querySelectorAll", cardSel)
		for i := 0; i < cards.Length(); i++ {
			card := cards.Index(i)
			selected := card.Call("getAttribute", cfg.DrinkIDAttribute).String() == id
			card.Get("classList").Call("toggle", cfg.SelectedClass, selected)
		}
	}

	if back := doc.Call("getElementById", cfg.DetailBackID); !missing(back) {
		back.Call("addEventListener", "click", func() {
			a.ResetSelection()
		})
	}

	if toggle := doc.Call("getElementById", cfg.ToggleButtonID); !missing(toggle) {
		toggle.Set("textContent", particles.ToggleLabel(a.Particles.Mode()))
		a.OnModeChange = func(m particles.Mode) {
			toggle.Set("textContent", particles.ToggleLabel(m))
		}
		toggle.Call("addEventListener", "click", func() {
			a.CycleParticleMode()
		})
	}

	win.Call("addEventListener", "resize", func() {
		a.Resize()
	})
	win.Call("addEventListener", "scroll", func() {
		a.SetScroll(win.Get("pageYOffset").Float())
	}, map[string]interface{}{"passive": true})

	observer := win.Get("MutationObserver").New(func() {
		a.ContrastChanged()
	})
	observer.Call("observe", doc.Get("documentElement"), map[string]interface{}{
		"attributes":      true,
		"attributeFilter": []string{"data-theme"},
	})

	win.Call("addEventListener", "keydown", func(e *js.Object) {
		if a.HandleKey(keyPress(e)) {
			e.Call("preventDefault")
		}
	})

	if a.ParticleLoop != nil {
		schedule.ObserveRegion(doc.Call("getElementById", cfg.ParticleCanvasID), a.ParticleLoop)
	}
	if a.LiquidLoop != nil {
		schedule.ObserveRegion(doc.Call("getElementById", cfg.LiquidRegionID), a.LiquidLoop)
	}
	if a.ParticleLoop != nil && a.LiquidLoop != nil {
		schedule.ObserveTab(a.ParticleLoop, a.LiquidLoop)
	}
}

func keyPress(e *js.Object) KeyPress {
	k := KeyPress{
		Code:     e.Get("keyCode").Int(),
		Modified: e.Get("ctrlKey").Bool() || e.Get("metaKey").Bool() || e.Get("altKey").Bool(),
	}
	if t := e.Get("target"); !missing(t) && !missing(t.Get("tagName")) {
		k.Typing = IsEditable(t.Get("tagName").String(), t.Get("isContentEditable").Bool())
	}
	return k
}
