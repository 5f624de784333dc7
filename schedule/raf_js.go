//go:build js
// +build js

package schedule

import "github.com/gopherjs/gopherjs/js"

// RAF is the browser's requestAnimationFrame.
type RAF struct{}

// RequestFrame implements FrameSource.
func (RAF) RequestFrame(cb func(now float64)) {
	js.Global.Call("requestAnimationFrame", func(ts float64) {
		cb(ts)
	})
}

// ObserveRegion pauses the loops while el is scrolled out of view.
// A missing element leaves the loops permanently visible.
func ObserveRegion(el *js.Object, loops ...*Loop) {
	if el == nil || el == js.Undefined {
		return
	}
	ctor := js.Global.Get("IntersectionObserver")
	if ctor == nil || ctor == js.Undefined {
		return
	}
	observer := ctor.New(func(entries *js.Object) {
		for i := 0; i < entries.Length(); i++ {
			visible := entries.Index(i).Get("isIntersecting").Bool()
			for _, l := range loops {
				l.SetVisible(visible)
			}
		}
	}, map[string]interface{}{"threshold": 0.01})
	observer.Call("observe", el)
}

// ObserveTab throttles the loops while the tab is in the background.
func ObserveTab(loops ...*Loop) {
	doc := js.Global.Get("document")
	doc.Call("addEventListener", "visibilitychange", func() {
		active := !doc.Get("hidden").Bool()
		for _, l := range loops {
			l.SetTabActive(active)
		}
	})
}
