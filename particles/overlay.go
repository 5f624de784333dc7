package particles

import (
	"strconv"

	"github.com/simukka/brewfx/canvas"
)

// StatLine is one label/value row of the stats overlay.
type StatLine struct {
	Label string
	Value string
}

// StatsOverlay draws a small diagnostics panel over the particle field.
type StatsOverlay struct {
	Visible bool

	// Extra supplies rows owned by other components (frame rate, drink).
	Extra func() []StatLine

	// Position and styling
	PanelX      float64
	PanelY      float64
	LineHeight  float64
	PanelWidth  float64
	PanelHeight float64
}

// NewStatsOverlay creates a hidden overlay in the top-left corner.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		PanelX:      16,
		PanelY:      16,
		LineHeight:  18,
		PanelWidth:  240,
		PanelHeight: 180,
	}
}

// Toggle toggles the overlay visibility.
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// Lines returns the rows the overlay shows for e.
func (s *StatsOverlay) Lines(e *Engine) []StatLine {
	lines := []StatLine{
		{"Mode", e.Mode().Label()},
		{"Particles", strconv.Itoa(e.Count())},
		{"Palette", strconv.Itoa(len(e.field.colors))},
		{"Scroll", strconv.FormatFloat(e.scrollY, 'f', 0, 64)},
	}
	if s.Extra != nil {
		lines = append(lines, s.Extra()...)
	}
	return lines
}

// Render draws the panel if visible.
func (s *StatsOverlay) Render(ctx canvas.Context, e *Engine) {
	if !s.Visible || ctx == nil {
		return
	}

	ctx.SetShadow(Style.ShadowReset, 0)
	ctx.SetFillStyle(Style.PanelBackground)
	ctx.FillRect(s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	ctx.SetStrokeStyle(Style.PanelBorder)
	ctx.SetLineWidth(1)
	ctx.StrokeRect(s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	ctx.SetFillStyle(Style.PanelTitle)
	ctx.SetFont(Style.PanelTitleFont)
	ctx.SetTextAlign("left")
	ctx.FillText("BREWFX STATS [F10]", s.PanelX+10, s.PanelY+20)

	ctx.SetFont(Style.PanelFont)
	y := s.PanelY + 44
	for _, line := range s.Lines(e) {
		s.drawStatLine(ctx, line, y)
		y += s.LineHeight
	}
}

func (s *StatsOverlay) drawStatLine(ctx canvas.Context, line StatLine, y float64) {
	ctx.SetTextAlign("left")
	ctx.SetFillStyle(Style.PanelLabel)
	ctx.FillText(line.Label+":", s.PanelX+10, y)

	ctx.SetTextAlign("right")
	ctx.SetFillStyle(Style.PanelValue)
	ctx.FillText(line.Value, s.PanelX+s.PanelWidth-10, y)
}
