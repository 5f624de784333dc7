// Package canvastest provides a recording canvas.Context for tests.
package canvastest

import (
	"image"

	"github.com/simukka/brewfx/canvas"
)

// Call is one recorded drawing operation.
type Call struct {
	Op   string
	Args []float64
	Text string
}

// Gradient records its color stops.
type Gradient struct {
	Stops []string
}

// AddColorStop implements canvas.Gradient.
func (g *Gradient) AddColorStop(offset float64, color string) {
	g.Stops = append(g.Stops, color)
}

// Recorder implements canvas.Context by appending every call to Calls.
type Recorder struct {
	Calls       []Call
	FillStyle   string
	ShadowBlur  float64
	ShadowColor string
	Gradients   []*Gradient
	Images      []*image.RGBA
}

var _ canvas.Context = (*Recorder)(nil)

func (r *Recorder) add(op string, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Last returns the most recent call of op.
func (r *Recorder) Last(op string) (Call, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Op == op {
			return r.Calls[i], true
		}
	}
	return Call{}, false
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.Gradients = r.Gradients[:0]
	r.Images = r.Images[:0]
}

func (r *Recorder) ClearRect(x, y, w, h float64) { r.add("clearRect", x, y, w, h) }
func (r *Recorder) Save() { r.add("save") }
func (r *Recorder) Restore() { r.add("restore") }
func (r *Recorder) Translate(x, y float64) { r.add("translate", x, y) }
func (r *Recorder) Rotate(angle float64) { r.add("rotate", angle) }
func (r *Recorder) Scale(x, y float64) { r.add("scale", x, y) }
func (r *Recorder) BeginPath() { r.add("beginPath") }
func (r *Recorder) Arc(x, y, rad, start, end float64) { r.add("arc", x, y, rad, start, end) }
func (r *Recorder) Ellipse(x, y, rx, ry, rotation float64) { r.add("ellipse", x, y, rx, ry, rotation) }
func (r *Recorder) Rect(x, y, w, h float64) { r.add("rect", x, y, w, h) }
func (r *Recorder) Fill() { r.add("fill") }
func (r *Recorder) FillRect(x, y, w, h float64) { r.add("fillRect", x, y, w, h) }
func (r *Recorder) StrokeRect(x, y, w, h float64) { r.add("strokeRect", x, y, w, h) }
func (r *Recorder) SetLineWidth(w float64) { r.add("lineWidth", w) }
func (r *Recorder) SetStrokeStyle(style string) {}
func (r *Recorder) SetFont(font string) {}
func (r *Recorder) SetTextAlign(align string) {}

func (r *Recorder) SetFillStyle(style string) {
	r.FillStyle = style
	r.add("fillStyle")
}

func (r *Recorder) SetFillGradient(g canvas.Gradient) {
	r.FillStyle = "gradient"
	r.add("fillGradient")
}

func (r *Recorder) SetShadow(color string, blur float64) {
	r.ShadowColor = color
	r.ShadowBlur = blur
	r.add("shadow", blur)
}

func (r *Recorder) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) canvas.Gradient {
	g := &Gradient{}
	r.Gradients = append(r.Gradients, g)
	r.add("radialGradient", x0, y0, r0, x1, y1, r1)
	return g
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.Calls = append(r.Calls, Call{Op: "fillText", Args: []float64{x, y}, Text: text})
}

func (r *Recorder) PutImage(img *image.RGBA, x, y, w, h float64) {
	r.Images = append(r.Images, img)
	r.add("putImage", x, y, w, h)
}
