//go:build js
// +build js

package canvas

import "github.com/gopherjs/gopherjs/js"

// Offscreen creates a detached canvas element of the given size.
func Offscreen(width, height int) *js.Object {
	el := js.Global.Get("document").Call("createElement", "canvas")
	el.Set("width", width)
	el.Set("height", height)
	return el
}

// ParentBox measures the layout box of an element's parent together with
// the device pixel ratio.
func ParentBox(el *js.Object) (width, height, dpr float64) {
	dpr = 1
	if r := js.Global.Get("devicePixelRatio"); r != nil && r != js.Undefined && r.Float() > 0 {
		dpr = r.Float()
	}
	parent := el.Get("parentElement")
	if parent == nil || parent == js.Undefined {
		return el.Get("clientWidth").Float(), el.Get("clientHeight").Float(), dpr
	}
	rect := parent.Call("getBoundingClientRect")
	return rect.Get("width").Float(), rect.Get("height").Float(), dpr
}

// Viewport returns the window's inner size.
func Viewport() (width, height float64) {
	return js.Global.Get("innerWidth").Float(), js.Global.Get("innerHeight").Float()
}
