package schedule

// FPSMeter counts ticked frames and publishes a rate once per second.
type FPSMeter struct {
	FrameCount    int
	LastFPSUpdate float64
	Current       float64
}

// Update registers a frame at currentTime (milliseconds).
func (m *FPSMeter) Update(currentTime float64) {
	m.FrameCount++

	elapsed := currentTime - m.LastFPSUpdate
	if elapsed >= 1000 {
		m.Current = float64(m.FrameCount) / (elapsed / 1000)
		m.FrameCount = 0
		m.LastFPSUpdate = currentTime
	}
}
