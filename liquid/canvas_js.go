//go:build js
// +build js

package liquid

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/brewfx/canvas"
)

// RasterScale is the block size of the 2D fallback in device pixels.
const RasterScale = 8

type canvasBackend struct {
	*RasterBackend
	el *js.Object
}

// NewCanvasBackend draws the effect procedurally on el's 2D context.
func NewCanvasBackend(el *js.Object) (Backend, error) {
	ctx, ok := canvas.FromCanvas(el)
	if !ok {
		return nil, ErrNoContext
	}
	return &canvasBackend{RasterBackend: NewRasterBackend(ctx, RasterScale), el: el}, nil
}

func (b *canvasBackend) Resize(width, height int) {
	b.el.Set("width", width)
	b.el.Set("height", height)
	b.RasterBackend.Resize(width, height)
}
