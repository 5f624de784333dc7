package schedule

import "testing"

// fakeFrames queues callbacks instead of waiting for a display refresh.
type fakeFrames struct {
	queue []func(float64)
}

func (f *fakeFrames) RequestFrame(cb func(now float64)) {
	f.queue = append(f.queue, cb)
}

// fire runs the oldest outstanding callback.
func (f *fakeFrames) fire(now float64) bool {
	if len(f.queue) == 0 {
		return false
	}
	cb := f.queue[0]
	f.queue = f.queue[1:]
	cb(now)
	return true
}

type countingTicker struct {
	ticks []float64
}

func (c *countingTicker) Tick(now float64) {
	c.ticks = append(c.ticks, now)
}

func newTestLoop(opts Options) (*Loop, *fakeFrames, *countingTicker, *int) {
	frames := &fakeFrames{}
	ticker := &countingTicker{}
	resizes := 0
	l := NewLoop(frames, ticker, ResizerFunc(func() { resizes++ }), opts)
	return l, frames, ticker, &resizes
}

func TestLoop_StartSchedulesOneFrame(t *testing.T) {
	l, frames, _, _ := newTestLoop(DefaultOptions)

	l.Start()
	l.Start()

	if len(frames.queue) != 1 {
		t.Errorf("Expected exactly 1 outstanding frame, got %d", len(frames.queue))
	}
	if !l.Running() {
		t.Error("Expected loop to be running")
	}
}

func TestLoop_TicksAndReschedules(t *testing.T) {
	l, frames, ticker, _ := newTestLoop(DefaultOptions)
	l.Start()

	for i := 1; i <= 5; i++ {
		frames.fire(float64(i) * 20)
	}

	if len(ticker.ticks) != 5 {
		t.Errorf("Expected 5 ticks, got %d", len(ticker.ticks))
	}
	if len(frames.queue) != 1 {
		t.Errorf("Expected 1 outstanding frame, got %d", len(frames.queue))
	}
}

func TestLoop_ThrottleSkipsUnderBudget(t *testing.T) {
	l, frames, ticker, _ := newTestLoop(DefaultOptions)
	l.Start()

	frames.fire(20) // ticks
	frames.fire(25) // under 16.7ms budget
	frames.fire(30) // still under budget

	if len(ticker.ticks) != 1 {
		t.Errorf("Expected 1 tick within budget window, got %d", len(ticker.ticks))
	}
	if len(frames.queue) != 1 {
		t.Errorf("Expected skipped frames to re-request, got %d outstanding", len(frames.queue))
	}
}

func TestLoop_BackgroundTabThrottlesToInactiveRate(t *testing.T) {
	l, frames, ticker, _ := newTestLoop(DefaultOptions)
	l.SetTabActive(false)
	l.Start()

	// 60Hz refresh over one second
	for i := 1; i <= 60; i++ {
		frames.fire(float64(i) * 1000 / 60)
	}

	if n := len(ticker.ticks); n < 9 || n > 11 {
		t.Errorf("Expected about 10 ticks per second in a background tab, got %d", n)
	}
}

func TestLoop_UncappedTicksEveryFrame(t *testing.T) {
	l, frames, ticker, _ := newTestLoop(Options{ActiveFPS: 0, InactiveFPS: 10})
	l.Start()

	for i := 1; i <= 10; i++ {
		frames.fire(float64(i))
	}
	if len(ticker.ticks) != 10 {
		t.Errorf("Expected 10 ticks when uncapped, got %d", len(ticker.ticks))
	}
}

func TestLoop_HiddenSchedulesNoFrames(t *testing.T) {
	l, frames, ticker, _ := newTestLoop(DefaultOptions)
	l.Start()
	frames.fire(20)

	l.SetVisible(false)
	frames.fire(40) // the outstanding frame lapses

	if len(frames.queue) != 0 {
		t.Errorf("Expected no frame requests while hidden, got %d", len(frames.queue))
	}
	if l.Running() {
		t.Error("Expected loop to stop while hidden")
	}
	if len(ticker.ticks) != 1 {
		t.Errorf("Expected no ticks while hidden, got %d", len(ticker.ticks))
	}

	l.Start()
	if len(frames.queue) != 0 {
		t.Error("Expected Start to be ignored while hidden")
	}
}

func TestLoop_BecomingVisibleResizesOnceAndResumesOnce(t *testing.T) {
	l, frames, _, resizes := newTestLoop(DefaultOptions)
	l.Start()
	l.SetVisible(false)
	frames.fire(20)

	l.SetVisible(true)
	l.SetVisible(true)

	if *resizes != 1 {
		t.Errorf("Expected exactly 1 resize, got %d", *resizes)
	}
	if len(frames.queue) != 1 {
		t.Errorf("Expected exactly 1 resumed frame request, got %d", len(frames.queue))
	}
}

func TestLoop_QuickHideShowDoesNotDoubleSchedule(t *testing.T) {
	l, frames, _, _ := newTestLoop(DefaultOptions)
	l.Start()

	// hidden and shown again before the outstanding frame fired
	l.SetVisible(false)
	l.SetVisible(true)

	if len(frames.queue) != 1 {
		t.Errorf("Expected the outstanding frame to be reused, got %d requests", len(frames.queue))
	}
}

func TestLoop_DisposeStops(t *testing.T) {
	l, frames, ticker, _ := newTestLoop(DefaultOptions)
	l.Start()
	l.Dispose()
	frames.fire(100)

	if len(ticker.ticks) != 0 {
		t.Error("Expected no ticks after Dispose")
	}
	if len(frames.queue) != 0 {
		t.Error("Expected no frame requests after Dispose")
	}
}

func TestFPSMeter_PublishesOncePerSecond(t *testing.T) {
	var m FPSMeter
	for i := 1; i <= 30; i++ {
		m.Update(float64(i) * 1000 / 30)
	}
	if m.Current < 29 || m.Current > 31 {
		t.Errorf("Expected about 30 FPS, got %f", m.Current)
	}
}
