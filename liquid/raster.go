package liquid

import (
	"image"
	"math"

	"github.com/simukka/brewfx/canvas"
)

// RasterBackend evaluates Shade on a coarse grid and scales the result
// onto a 2D canvas. It stands in for WebGL where a GL context is missing.
type RasterBackend struct {
	ctx    canvas.Context
	scale  int
	img    *image.RGBA
	width  int
	height int
}

// NewRasterBackend shades one sample per scale x scale block of device pixels.
func NewRasterBackend(ctx canvas.Context, scale int) *RasterBackend {
	if scale < 1 {
		scale = 1
	}
	return &RasterBackend{ctx: ctx, scale: scale}
}

// Resize implements Backend.
func (b *RasterBackend) Resize(width, height int) {
	b.width, b.height = width, height
	w := (width + b.scale - 1) / b.scale
	h := (height + b.scale - 1) / b.scale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image returns the last shaded frame.
func (b *RasterBackend) Image() *image.RGBA {
	return b.img
}

// Draw implements Backend.
func (b *RasterBackend) Draw(u Uniforms, seconds float64) {
	if b.img == nil || b.width == 0 || b.height == 0 {
		return
	}
	fw, fh := float64(b.width), float64(b.height)
	b.ctx.ClearRect(0, 0, fw, fh)
	if u.Empty() {
		return
	}

	bounds := b.img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	for py := 0; py < bounds.Dy(); py++ {
		// image rows run top-down, the cup fills bottom-up
		y := 1 - (float64(py)+0.5)/ih
		for px := 0; px < bounds.Dx(); px++ {
			x := (float64(px) + 0.5) / iw
			p := Shade(u, x, y, seconds)

			i := b.img.PixOffset(px, py)
			if p.A <= 0 {
				b.img.Pix[i+0] = 0
				b.img.Pix[i+1] = 0
				b.img.Pix[i+2] = 0
				b.img.Pix[i+3] = 0
				continue
			}
			// ImageData is straight alpha
			b.img.Pix[i+0] = channel(p.R / p.A)
			b.img.Pix[i+1] = channel(p.G / p.A)
			b.img.Pix[i+2] = channel(p.B / p.A)
			b.img.Pix[i+3] = channel(p.A)
		}
	}
	b.ctx.PutImage(b.img, 0, 0, fw, fh)
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
