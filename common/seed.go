package common

import "time"

// Source is the randomness the animation engines draw from.
// Production code uses a time-seeded RNG; tests pass a fixed seed.
type Source interface {
	// Random returns a float64 in [0, 1).
	Random() float64
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// The same seed always produces the same particle field.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// NewTimeSeededRNG seeds the generator from the wall clock.
func NewTimeSeededRNG() *SeededRNG {
	return NewSeededRNG(uint32(time.Now().UnixNano()))
}

// Reset rewinds the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random returns the next value in [0, 1).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomInt returns an integer in [min, max).
func RandomInt(src Source, min, max int) int {
	return int(src.Random()*float64(max-min)) + min
}

// Centered returns a value in [-span/2, span/2).
func Centered(src Source, span float64) float64 {
	return (src.Random() - 0.5) * span
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Random() < p
}
