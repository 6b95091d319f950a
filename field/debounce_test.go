package field

import (
	"testing"
	"time"
)

func TestSizeDebouncerWaitsForStableSize(t *testing.T) {
	d := NewSizeDebouncer(250*time.Millisecond, 800, 600)

	d.Observe(900, 600, 0)
	d.Observe(1000, 600, 100*time.Millisecond)
	if _, _, ok := d.Settled(300 * time.Millisecond); ok {
		t.Fatal("settled before the size was stable for the delay")
	}
	d.Observe(1000, 600, 300*time.Millisecond)

	w, h, ok := d.Settled(350 * time.Millisecond)
	if !ok || w != 1000 || h != 600 {
		t.Fatalf("Settled = %v, %v, %v; want 1000, 600, true", w, h, ok)
	}
	if _, _, ok := d.Settled(time.Second); ok {
		t.Error("settled twice for one change")
	}
}

func TestSizeDebouncerIgnoresRevert(t *testing.T) {
	d := NewSizeDebouncer(250*time.Millisecond, 800, 600)
	d.Observe(900, 600, 0)
	d.Observe(800, 600, 100*time.Millisecond)
	if _, _, ok := d.Settled(time.Second); ok {
		t.Error("settled although the size returned to the applied one")
	}
}
