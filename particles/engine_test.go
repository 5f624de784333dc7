package particles

import (
	"math"
	"testing"

	"github.com/simukka/brewfx/canvas/canvastest"
	"github.com/simukka/brewfx/common"
	"github.com/simukka/brewfx/palette"
)

const (
	testWidth  = 800
	testHeight = 600
)

func newTestEngine(m Mode) (*Engine, *canvastest.Recorder) {
	e := NewEngine(common.NewSeededRNG(42))
	rec := &canvastest.Recorder{}
	e.SetMode(m)
	e.Init(rec, testWidth, testHeight)
	return e, rec
}

func TestEngine_InitWithoutSurfaceIsDisabled(t *testing.T) {
	e := NewEngine(common.NewSeededRNG(1))
	e.Init(nil, testWidth, testHeight)

	if e.Enabled() {
		t.Error("Expected engine without a surface to be disabled")
	}
	if e.Count() != 0 {
		t.Errorf("Expected no particles, got %d", e.Count())
	}

	// none of these may panic
	e.SetMode(Dots)
	e.SetTargetPalette(palette.ParticleColorSet{{R: 1, G: 2, B: 3}})
	e.Resize(100, 100)
	e.Tick(16)

	if e.Count() != 0 {
		t.Errorf("Expected disabled engine to stay empty, got %d", e.Count())
	}
}

func TestEngine_DefaultModeIsSteam(t *testing.T) {
	e := NewEngine(common.NewSeededRNG(1))
	if e.Mode() != Steam {
		t.Errorf("Expected steam, got %s", e.Mode())
	}
}

func TestEngine_SetModePopulatesExactCount(t *testing.T) {
	e, _ := newTestEngine(Steam)

	for _, m := range Modes() {
		e.SetMode(m)
		if e.Count() != Counts[m] {
			t.Errorf("%s: expected %d particles, got %d", m, Counts[m], e.Count())
		}
		for i, p := range e.Particles() {
			if p.Mode != m {
				t.Fatalf("%s: particle %d has mode %s", m, i, p.Mode)
			}
			if p.Variants() != 1 {
				t.Fatalf("%s: particle %d has %d variant payloads", m, i, p.Variants())
			}
			var ok bool
			switch m {
			case Dots, Diamonds:
				ok = p.Drift != nil
			case Steam:
				ok = p.Steam != nil
			case Dust:
				ok = p.Dust != nil
			case Grounds:
				ok = p.Grounds != nil
			}
			if !ok {
				t.Fatalf("%s: particle %d carries the wrong payload", m, i)
			}
		}
	}
}

func TestEngine_SetModeInvalidIgnored(t *testing.T) {
	e, _ := newTestEngine(Dust)
	e.SetMode(Mode(99))
	if e.Mode() != Dust || e.Count() != Counts[Dust] {
		t.Errorf("Expected invalid mode to be ignored, got %s with %d", e.Mode(), e.Count())
	}
}

func TestEngine_WrapConservesPopulation(t *testing.T) {
	margins := map[Mode]float64{
		Dots:     Style.DriftMargin,
		Diamonds: Style.DriftMargin,
		Dust:     Style.DustMargin,
		Grounds:  Style.GroundsMargin,
	}

	for m, margin := range margins {
		e, rec := newTestEngine(m)
		for i := 0; i < 3000; i++ {
			rec.Reset()
			e.Tick(float64(i) * 16)
		}
		if e.Count() != Counts[m] {
			t.Errorf("%s: expected %d particles after wrapping, got %d", m, Counts[m], e.Count())
		}
		for _, p := range e.Particles() {
			if p.X < -margin-1e-9 || p.X > testWidth+margin+1e-9 ||
				p.Y < -margin-1e-9 || p.Y > testHeight+margin+1e-9 {
				t.Fatalf("%s: particle escaped to (%f, %f)", m, p.X, p.Y)
			}
		}
	}
}

func TestEngine_SteamRespawnsWithinBounds(t *testing.T) {
	e, rec := newTestEngine(Steam)
	for i := 0; i < 2000; i++ {
		rec.Reset()
		e.Tick(float64(i) * 16)
	}

	if e.Count() != Counts[Steam] {
		t.Errorf("Expected %d steam particles, got %d", Counts[Steam], e.Count())
	}
	for _, p := range e.Particles() {
		s := p.Steam
		if p.Y < -Style.SteamTopMargin || p.Y > testHeight+Style.SteamSpawnBelow {
			t.Fatalf("Steam particle outside respawn band: y=%f", p.Y)
		}
		if p.Opacity < 0 || p.Opacity > Style.SteamPeak+1e-9 {
			t.Fatalf("Steam opacity out of envelope: %f", p.Opacity)
		}
		if p.Size < s.OriginalSize-1e-9 || p.Size > s.OriginalSize*1.5+1e-9 {
			t.Fatalf("Steam size %f outside [%f, %f]", p.Size, s.OriginalSize, s.OriginalSize*1.5)
		}
	}
}

func TestSteamEnvelope(t *testing.T) {
	p := &Particle{Steam: &SteamState{OriginalSize: 4, MaxLife: 100}}

	tests := []struct {
		life    float64
		opacity float64
		size    float64
	}{
		{0, 0, 4},
		{5, 0.075, 4.1},
		{50, 0.15, 5},
		{85, 0.075, 5.7},
		{100, 0, 6},
	}

	for _, tt := range tests {
		p.Steam.Life = tt.life
		steamEnvelope(p)
		if math.Abs(p.Opacity-tt.opacity) > 1e-9 {
			t.Errorf("life %v: expected opacity %v, got %v", tt.life, tt.opacity, p.Opacity)
		}
		if math.Abs(p.Size-tt.size) > 1e-9 {
			t.Errorf("life %v: expected size %v, got %v", tt.life, tt.size, p.Size)
		}
	}
}

func TestEngine_ResizeScalesProportionally(t *testing.T) {
	for _, m := range Modes() {
		e, _ := newTestEngine(m)

		type pos struct{ x, y float64 }
		before := make([]pos, e.Count())
		for i, p := range e.Particles() {
			before[i] = pos{p.X, p.Y}
		}

		e.Resize(400, 900)

		for i, p := range e.Particles() {
			wantX := clamp(before[i].x*400/testWidth, 0, 400)
			wantY := clamp(before[i].y*900/testHeight, 0, 900)
			if math.Abs(p.X-wantX) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 {
				t.Fatalf("%s: particle %d expected (%f, %f), got (%f, %f)",
					m, i, wantX, wantY, p.X, p.Y)
			}
		}
	}
}

func TestEngine_ResizeFromZeroOnlyRecordsSize(t *testing.T) {
	e := NewEngine(common.NewSeededRNG(3))
	e.Resize(320, 240)
	w, h := e.Size()
	if w != 320 || h != 240 {
		t.Errorf("Expected 320x240, got %vx%v", w, h)
	}
}

func TestEngine_SetTargetPaletteIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(Dots)
	mocha := palette.NewModel().ParticleColors(palette.Mocha)

	e.SetTargetPalette(mocha)
	ptrs := make([]*Particle, e.Count())
	targets := make([]palette.RGB, e.Count())
	for i, p := range e.Particles() {
		ptrs[i] = p
		targets[i] = p.Target
	}

	e.SetTargetPalette(mocha)

	if e.Count() != len(ptrs) {
		t.Fatalf("Expected count %d, got %d", len(ptrs), e.Count())
	}
	for i, p := range e.Particles() {
		if p != ptrs[i] {
			t.Fatalf("Particle %d was replaced", i)
		}
		if p.Target != targets[i] {
			t.Fatalf("Particle %d was retargeted by a repeated palette", i)
		}
	}
}

func TestEngine_SetTargetPaletteKeepsKinematics(t *testing.T) {
	e, _ := newTestEngine(Grounds)
	type snapshot struct{ x, y, sx, sy float64 }
	before := make([]snapshot, e.Count())
	for i, p := range e.Particles() {
		before[i] = snapshot{p.X, p.Y, p.SpeedX, p.SpeedY}
	}

	e.SetTargetPalette(palette.NewModel().ParticleColors(palette.MatchaLatte))

	for i, p := range e.Particles() {
		if (snapshot{p.X, p.Y, p.SpeedX, p.SpeedY}) != before[i] {
			t.Fatalf("Particle %d moved on palette change", i)
		}
	}
}

func TestEngine_ColorsConvergeToTarget(t *testing.T) {
	e, rec := newTestEngine(Dust)
	target := palette.RGB{R: 10, G: 200, B: 30}
	e.SetTargetPalette(palette.ParticleColorSet{target})

	for i := 0; i < 300; i++ {
		rec.Reset()
		e.Tick(float64(i) * 16)
	}

	for i, p := range e.Particles() {
		if p.Current.Distance(target) > 1 {
			t.Fatalf("Particle %d color %v did not converge to %v", i, p.Current, target)
		}
	}
}

func TestEngine_ParticleColorsAreIndependent(t *testing.T) {
	e, rec := newTestEngine(Dots)
	e.SetTargetPalette(palette.ParticleColorSet{{R: 255, G: 0, B: 0}})

	// particles start from different colors, so one tick must leave them apart
	first := e.Particles()[0]
	first.Current = palette.RGB{}
	rec.Reset()
	e.Tick(16)

	second := e.Particles()[1]
	if first.Current == second.Current {
		t.Error("Expected per-particle colors to evolve independently")
	}
}

func TestEngine_ScrollParallaxEases(t *testing.T) {
	e, rec := newTestEngine(Dots)
	e.SetScroll(1000)

	rec.Reset()
	e.Tick(16)
	if math.Abs(e.scrollY-100) > 1e-9 {
		t.Errorf("Expected first smoothed scroll of 100, got %f", e.scrollY)
	}

	for i := 0; i < 150; i++ {
		rec.Reset()
		e.Tick(float64(i) * 16)
	}
	if math.Abs(e.scrollY-1000) > 1 {
		t.Errorf("Expected smoothed scroll near 1000, got %f", e.scrollY)
	}
}

func TestEngine_GlowResetAfterGlowingModes(t *testing.T) {
	e, rec := newTestEngine(Diamonds)
	e.Tick(16)

	if rec.ShadowBlur != 0 || rec.ShadowColor != Style.ShadowReset {
		t.Errorf("Expected shadow reset after diamonds, got %q blur %f", rec.ShadowColor, rec.ShadowBlur)
	}
	if rec.Count("rect") != Counts[Diamonds] {
		t.Errorf("Expected %d rects, got %d", Counts[Diamonds], rec.Count("rect"))
	}
}

func TestEngine_DrawPrimitivesPerMode(t *testing.T) {
	tests := []struct {
		mode Mode
		op   string
	}{
		{Dots, "arc"},
		{Diamonds, "rect"},
		{Steam, "radialGradient"},
		{Dust, "arc"},
		{Grounds, "ellipse"},
	}

	for _, tt := range tests {
		e, rec := newTestEngine(tt.mode)
		rec.Reset()
		e.Tick(16)

		if rec.Count("clearRect") != 1 {
			t.Errorf("%s: expected 1 clear, got %d", tt.mode, rec.Count("clearRect"))
		}
		if got := rec.Count(tt.op); got != Counts[tt.mode] {
			t.Errorf("%s: expected %d %s calls, got %d", tt.mode, Counts[tt.mode], tt.op, got)
		}
	}
}

func TestEngine_DustAndGroundsDoNotGlow(t *testing.T) {
	for _, m := range []Mode{Dust, Grounds, Steam} {
		e, rec := newTestEngine(m)
		rec.Reset()
		e.Tick(16)
		if n := rec.Count("shadow"); n != 0 {
			t.Errorf("%s: expected no shadow calls, got %d", m, n)
		}
	}
}

func TestStatsOverlay_RendersWhenVisible(t *testing.T) {
	e, rec := newTestEngine(Dust)
	e.Overlay.Extra = func() []StatLine {
		return []StatLine{{"Drink", "latte"}}
	}

	rec.Reset()
	e.Tick(16)
	if rec.Count("fillText") != 0 {
		t.Error("Expected hidden overlay to draw nothing")
	}

	e.Overlay.Toggle()
	rec.Reset()
	e.Tick(32)

	var texts []string
	for _, c := range rec.Calls {
		if c.Op == "fillText" {
			texts = append(texts, c.Text)
		}
	}
	want := map[string]bool{"BREWFX STATS [F10]": false, "Spice Dust": false, "150": false, "latte": false}
	for _, s := range texts {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for s, seen := range want {
		if !seen {
			t.Errorf("Expected overlay to show %q", s)
		}
	}
}
