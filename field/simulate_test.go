package field

import (
	"errors"
	"testing"
	"time"
)

func TestSimulateSixtyHertzHost(t *testing.T) {
	e := newTestEngine(t, testConfig(), 800, 600)

	res, err := Simulate(e, 60, 10*time.Second)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.Frames < 599 || res.Frames > 600 {
		t.Errorf("Frames = %d, want about 600", res.Frames)
	}
	if res.Ticks < 297 || res.Ticks > 301 {
		t.Errorf("Ticks = %d, want about 300", res.Ticks)
	}
	if res.Draws.Clears != res.Frames {
		t.Errorf("Clears = %d, want one per frame (%d)", res.Draws.Clears, res.Frames)
	}
	if res.Draws.Circles < res.Frames*res.Stats.Stars/2 {
		t.Errorf("Circles = %d, too few for %d stars over %d frames", res.Draws.Circles, res.Stats.Stars, res.Frames)
	}
	if len(res.Changes) != 0 {
		t.Errorf("Changes = %v, want none at full speed", res.Changes)
	}
	if !res.Performance.Running {
		t.Error("engine not running after simulation")
	}
}

func TestSimulateSlowHostDegrades(t *testing.T) {
	e := newTestEngine(t, testConfig(), 1280, 800)
	before := e.Stats().Stars

	res, err := Simulate(e, 10, 11*time.Second)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(res.Changes) == 0 || res.Changes[0].Quality != QualityDegraded {
		t.Fatalf("Changes = %v, want a degrade first", res.Changes)
	}
	if res.Stats.Stars >= before {
		t.Errorf("Stars = %d, want fewer than %d", res.Stats.Stars, before)
	}
}

func TestSimulateKeepsCallback(t *testing.T) {
	e := newTestEngine(t, testConfig(), 1280, 800)
	var seen int
	e.OnQualityChange = func(QualityChange) { seen++ }

	res, err := Simulate(e, 10, 6*time.Second)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if seen != len(res.Changes) || seen == 0 {
		t.Errorf("callback saw %d changes, result has %d", seen, len(res.Changes))
	}
	if e.OnQualityChange == nil {
		t.Error("callback not restored")
	}
}

func TestSimulateRejectsBadArguments(t *testing.T) {
	e := newTestEngine(t, testConfig(), 800, 600)
	for _, fps := range []float64{0, -1} {
		if _, err := Simulate(e, fps, time.Second); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Simulate(%v fps) error = %v, want ErrInvalidArgument", fps, err)
		}
	}
	if _, err := Simulate(e, 60, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Simulate(0 duration) error = %v, want ErrInvalidArgument", err)
	}
}
