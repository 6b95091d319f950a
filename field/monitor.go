package field

import "time"

// Quality is the outcome of a performance check
type Quality int

const (
	QualitySteady   Quality = iota // No change
	QualityDegraded                // Stars shrunk and effects disabled
	QualityRestored                // Stars grown back toward the target
)

func (q Quality) String() string {
	switch q {
	case QualityDegraded:
		return "degraded"
	case QualityRestored:
		return "restored"
	default:
		return "steady"
	}
}

// QualityChange describes a performance-driven rescale of the store
type QualityChange struct {
	Quality Quality
	FPS     float64
	Stars   int // Star count after the change
}

// Monitor measures the achieved tick rate over fixed windows
type Monitor struct {
	window     time.Duration
	frames     int
	started    bool
	windowFrom time.Duration
	fps        float64
}

// NewMonitor creates a monitor measuring over the given window
func NewMonitor(window time.Duration) *Monitor {
	return &Monitor{window: window}
}

// Restart begins a fresh measurement window at now
func (m *Monitor) Restart(now time.Duration) {
	m.frames = 0
	m.started = true
	m.windowFrom = now
}

// Frame counts one tick at now. When the window has elapsed it returns
// the measured FPS and true, and starts the next window.
func (m *Monitor) Frame(now time.Duration) (float64, bool) {
	if !m.started {
		m.Restart(now)
	}
	m.frames++

	elapsed := now - m.windowFrom
	if elapsed <= m.window {
		return 0, false
	}
	m.fps = float64(m.frames) / elapsed.Seconds()
	m.Restart(now)
	return m.fps, true
}

// FPS returns the rate measured at the end of the last complete window
func (m *Monitor) FPS() float64 {
	return m.fps
}

// Current estimates the rate of the window in progress
func (m *Monitor) Current(now time.Duration) float64 {
	elapsed := now - m.windowFrom
	if !m.started || m.frames == 0 || elapsed <= 0 {
		return m.fps
	}
	return float64(m.frames) / elapsed.Seconds()
}
