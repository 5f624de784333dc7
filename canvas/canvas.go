// Package canvas is the drawing-surface seam between the animation engines
// and the browser's CanvasRenderingContext2D.
package canvas

import "image"

// Gradient is a canvas gradient that can be used as a fill style.
type Gradient interface {
	AddColorStop(offset float64, color string)
}

// Context is the subset of the 2D canvas API the engines draw with.
type Context interface {
	ClearRect(x, y, w, h float64)
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	BeginPath()
	Arc(x, y, r, start, end float64)
	Ellipse(x, y, rx, ry, rotation float64)
	Rect(x, y, w, h float64)
	Fill()

	SetFillStyle(style string)
	SetFillGradient(g Gradient)
	SetShadow(color string, blur float64)
	CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) Gradient

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	SetStrokeStyle(style string)
	SetLineWidth(w float64)
	SetFont(font string)
	SetTextAlign(align string)
	FillText(text string, x, y float64)

	// PutImage scales img onto the destination rectangle.
	PutImage(img *image.RGBA, x, y, w, h float64)
}
