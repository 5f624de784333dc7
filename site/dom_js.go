//go:build js
// +build js

package site

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/brewfx/palette"
	"github.com/simukka/brewfx/theme"
)

func missing(o *js.Object) bool {
	return o == nil || o == js.Undefined
}

type domElement struct {
	obj *js.Object
}

func (e *domElement) SetStyle(property, value string) {
	style := e.obj.Get("style")
	if value == "" {
		style.Call("removeProperty", property)
		return
	}
	style.Call("setProperty", property, value)
}

func (e *domElement) HasClass(name string) bool {
	return e.obj.Get("classList").Call("contains", name).Bool()
}

type domDocument struct {
	doc *js.Object
}

// NewDocument adapts the browser document for the theme coordinator.
func NewDocument(doc *js.Object) theme.Document {
	return &domDocument{doc: doc}
}

func (d *domDocument) Query(selector string) theme.Element {
	el := d.doc.Call("querySelector", selector)
	if missing(el) {
		return nil
	}
	return &domElement{obj: el}
}

func (d *domDocument) QueryAll(selector string) []theme.Element {
	list := d.doc.Call("querySelectorAll", selector)
	out := make([]theme.Element, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		out = append(out, &domElement{obj: list.Index(i)})
	}
	return out
}

func (d *domDocument) Root() theme.Element {
	return &domElement{obj: d.doc.Get("documentElement")}
}

func (d *domDocument) ThemeMode() palette.ThemeMode {
	attr := d.doc.Get("documentElement").Call("getAttribute", "data-theme")
	if missing(attr) {
		return palette.Light
	}
	return palette.ParseThemeMode(attr.String())
}
