package field

import (
	"math"
	"testing"
	"time"
)

func TestMonitorMeasuresWindow(t *testing.T) {
	m := NewMonitor(5 * time.Second)

	var (
		fps  float64
		done bool
		now  time.Duration
	)
	for !done {
		fps, done = m.Frame(now)
		now += 100 * time.Millisecond
	}
	if math.Abs(fps-10) > 0.5 {
		t.Errorf("fps = %v, want about 10", fps)
	}
	if m.FPS() != fps {
		t.Errorf("FPS() = %v, want %v", m.FPS(), fps)
	}
}

func TestMonitorRestartDiscardsWindow(t *testing.T) {
	m := NewMonitor(5 * time.Second)
	m.Frame(0)
	m.Frame(time.Second)

	m.Restart(10 * time.Second)
	if _, done := m.Frame(14 * time.Second); done {
		t.Error("window completed before 5s elapsed since restart")
	}
	if _, done := m.Frame(15*time.Second + time.Millisecond); !done {
		t.Error("window should complete after 5s")
	}
}

func TestMonitorCurrent(t *testing.T) {
	m := NewMonitor(5 * time.Second)
	if got := m.Current(0); got != 0 {
		t.Errorf("Current before any frame = %v, want 0", got)
	}
	for i := 0; i < 20; i++ {
		m.Frame(time.Duration(i) * 50 * time.Millisecond)
	}
	if got := m.Current(time.Second); math.Abs(got-20) > 0.01 {
		t.Errorf("Current = %v, want 20", got)
	}
}
