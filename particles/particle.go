package particles

import "github.com/simukka/brewfx/palette"

// Particle is one member of the field. The fields every mode uses live on
// the particle itself; mode-specific state lives in exactly one non-nil
// variant payload matching Mode.
type Particle struct {
	X, Y    float64
	Size    float64
	SpeedX  float64
	SpeedY  float64
	Opacity float64

	// Current is owned by the particle and eased toward Target every frame.
	Current palette.RGB
	Target  palette.RGB

	Mode      Mode
	PoolIndex int

	Drift   *DriftState
	Steam   *SteamState
	Dust    *DustState
	Grounds *GroundsState
}

// DriftState drives dots and diamonds.
type DriftState struct {
	Wobble      float64
	WobbleSpeed float64
}

// SteamState drives a rising, curling puff with a finite life.
type SteamState struct {
	OriginalSize  float64
	CurlOffset    float64
	CurlSpeed     float64
	CurlAmplitude float64
	CurlX         float64
	Life          float64
	MaxLife       float64
}

// DustState drives a swirling mote nudged by air currents.
type DustState struct {
	SwirlPhase        float64
	SwirlSpeed        float64
	SwirlRadius       float64
	DirectionTimer    int
	DirectionInterval int
}

// GroundsState drives a slowly sinking or floating grain.
type GroundsState struct {
	Wobble        float64
	WobbleSpeed   float64
	WobbleAmount  float64
	Rotation      float64
	RotationSpeed float64
	Stretch       float64
}

// reset clears every field so a reused particle carries nothing over
// from its previous mode.
func (p *Particle) reset(m Mode) {
	idx := p.PoolIndex
	*p = Particle{Mode: m, PoolIndex: idx}
}

// Variants returns how many variant payloads are set. A well-formed
// particle has exactly one.
func (p *Particle) Variants() int {
	n := 0
	if p.Drift != nil {
		n++
	}
	if p.Steam != nil {
		n++
	}
	if p.Dust != nil {
		n++
	}
	if p.Grounds != nil {
		n++
	}
	return n
}

// Color returns the particle's displayed color as a CSS rgba() string.
func (p *Particle) Color(opacity float64) string {
	return p.Current.RGBA(opacity)
}
