//go:build js
// +build js

package canvas

import (
	"image"
	"math"

	"github.com/gopherjs/gopherjs/js"
)

type jsGradient struct {
	obj *js.Object
}

func (g *jsGradient) AddColorStop(offset float64, color string) {
	g.obj.Call("addColorStop", offset, color)
}

type jsContext struct {
	ctx *js.Object

	// scratch canvas reused by PutImage
	scratch    *js.Object
	scratchCtx *js.Object
}

// FromCanvas acquires the 2D context of a canvas element. It returns
// false when the element is missing or has no 2D context.
func FromCanvas(el *js.Object) (Context, bool) {
	if el == nil || el == js.Undefined {
		return nil, false
	}
	ctx := el.Call("getContext", "2d")
	if ctx == nil || ctx == js.Undefined {
		return nil, false
	}
	return &jsContext{ctx: ctx}, true
}

func (c *jsContext) ClearRect(x, y, w, h float64) { c.ctx.Call("clearRect", x, y, w, h) }
func (c *jsContext) Save() { c.ctx.Call("save") }
func (c *jsContext) Restore() { c.ctx.Call("restore") }
func (c *jsContext) Translate(x, y float64) { c.ctx.Call("translate", x, y) }
func (c *jsContext) Rotate(angle float64) { c.ctx.Call("rotate", angle) }
func (c *jsContext) Scale(x, y float64) { c.ctx.Call("scale", x, y) }
func (c *jsContext) BeginPath() { c.ctx.Call("beginPath") }
func (c *jsContext) Fill() { c.ctx.Call("fill") }
func (c *jsContext) Rect(x, y, w, h float64) { c.ctx.Call("rect", x, y, w, h) }

func (c *jsContext) Arc(x, y, r, start, end float64) {
	c.ctx.Call("arc", x, y, r, start, end)
}

func (c *jsContext) Ellipse(x, y, rx, ry, rotation float64) {
	c.ctx.Call("ellipse", x, y, rx, ry, rotation, 0, math.Pi*2)
}

func (c *jsContext) SetFillStyle(style string) { c.ctx.Set("fillStyle", style) }

func (c *jsContext) SetFillGradient(g Gradient) {
	if jg, ok := g.(*jsGradient); ok {
		c.ctx.Set("fillStyle", jg.obj)
	}
}

func (c *jsContext) SetShadow(color string, blur float64) {
	c.ctx.Set("shadowColor", color)
	c.ctx.Set("shadowBlur", blur)
}

func (c *jsContext) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) Gradient {
	return &jsGradient{obj: c.ctx.Call("createRadialGradient", x0, y0, r0, x1, y1, r1)}
}

func (c *jsContext) FillRect(x, y, w, h float64) { c.ctx.Call("fillRect", x, y, w, h) }
func (c *jsContext) StrokeRect(x, y, w, h float64) { c.ctx.Call("strokeRect", x, y, w, h) }
func (c *jsContext) SetStrokeStyle(style string) { c.ctx.Set("strokeStyle", style) }
func (c *jsContext) SetLineWidth(w float64) { c.ctx.Set("lineWidth", w) }
func (c *jsContext) SetFont(font string) { c.ctx.Set("font", font) }
func (c *jsContext) SetTextAlign(align string) { c.ctx.Set("textAlign", align) }

func (c *jsContext) FillText(text string, x, y float64) {
	c.ctx.Call("fillText", text, x, y)
}

func (c *jsContext) PutImage(img *image.RGBA, x, y, w, h float64) {
	b := img.Bounds()
	if c.scratch == nil ||
		c.scratch.Get("width").Int() != b.Dx() ||
		c.scratch.Get("height").Int() != b.Dy() {
		c.scratch = Offscreen(b.Dx(), b.Dy())
		c.scratchCtx = c.scratch.Call("getContext", "2d")
	}

	pixels := js.Global.Get("Uint8ClampedArray").New(img.Pix)
	data := js.Global.Get("ImageData").New(pixels, b.Dx(), b.Dy())
	c.scratchCtx.Call("putImageData", data, 0, 0)

	c.ctx.Set("imageSmoothingEnabled", true)
	c.ctx.Call("drawImage", c.scratch, x, y, w, h)
}
