// Package schedule drives per-frame animation callbacks and gates them on
// region visibility and tab activity.
package schedule

// FrameSource schedules a callback for the next display refresh.
// In the browser it is requestAnimationFrame; tests supply a fake.
type FrameSource interface {
	RequestFrame(cb func(now float64))
}

// Ticker advances an animation by one frame.
type Ticker interface {
	Tick(now float64)
}

// Resizer recomputes surface dimensions.
type Resizer interface {
	Resize()
}

// ResizerFunc adapts a function to Resizer.
type ResizerFunc func()

// Resize calls f.
func (f ResizerFunc) Resize() { f() }

// Options sets frame budgets. ActiveFPS of 0 leaves the loop uncapped.
type Options struct {
	ActiveFPS   float64
	InactiveFPS float64
}

// DefaultOptions caps at 60 FPS and drops to 10 FPS in a background tab.
var DefaultOptions = Options{ActiveFPS: 60, InactiveFPS: 10}

// Loop is a cooperative frame loop. Exactly one frame request is
// outstanding while the loop runs; none while its region is hidden.
type Loop struct {
	src     FrameSource
	ticker  Ticker
	resizer Resizer
	opts    Options

	visible   bool
	tabActive bool
	pending   bool
	disposed  bool

	// LastFrameTime is the timestamp of the last frame that ticked.
	LastFrameTime float64
	Meter         FPSMeter
}

// NewLoop creates a loop that is visible, tab-active and not yet started.
// resizer may be nil.
func NewLoop(src FrameSource, ticker Ticker, resizer Resizer, opts Options) *Loop {
	return &Loop{
		src:       src,
		ticker:    ticker,
		resizer:   resizer,
		opts:      opts,
		visible:   true,
		tabActive: true,
	}
}

// Start schedules the first frame if the loop is visible and idle.
func (l *Loop) Start() {
	if l.disposed || !l.visible || l.pending {
		return
	}
	l.request()
}

// Dispose stops the loop permanently. An outstanding frame runs but does
// not tick or reschedule.
func (l *Loop) Dispose() {
	l.disposed = true
}

// Running reports whether a frame request is outstanding.
func (l *Loop) Running() bool {
	return l.pending
}

// Visible reports the last region visibility.
func (l *Loop) Visible() bool {
	return l.visible
}

// TabActive reports whether the host tab is in the foreground.
func (l *Loop) TabActive() bool {
	return l.tabActive
}

// FPS returns the measured frame rate.
func (l *Loop) FPS() float64 {
	return l.Meter.Current
}

// SetVisible records region visibility. Becoming visible recomputes the
// surface size once and resumes the loop; becoming hidden lets the
// outstanding frame lapse without a successor.
func (l *Loop) SetVisible(visible bool) {
	was := l.visible
	l.visible = visible
	if !visible || was {
		return
	}
	if l.resizer != nil {
		l.resizer.Resize()
	}
	l.Start()
}

// SetTabActive switches between the active and the background frame budget.
func (l *Loop) SetTabActive(active bool) {
	l.tabActive = active
}

// Interval returns the minimum milliseconds between ticks.
func (l *Loop) Interval() float64 {
	fps := l.opts.ActiveFPS
	if !l.tabActive {
		fps = l.opts.InactiveFPS
	}
	if fps <= 0 {
		return 0
	}
	return 1000 / fps
}

func (l *Loop) request() {
	l.pending = true
	l.src.RequestFrame(l.frame)
}

func (l *Loop) frame(now float64) {
	l.pending = false
	if l.disposed || !l.visible {
		return
	}

	// Under budget: wait for the next refresh
	if now-l.LastFrameTime < l.Interval() {
		l.request()
		return
	}

	l.LastFrameTime = now
	l.Meter.Update(now)
	l.ticker.Tick(now)
	l.request()
}
