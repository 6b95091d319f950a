package field

import "time"

// SizeDebouncer holds back surface size changes until they stop changing
// for a delay, so a window drag rebuilds the store once instead of every frame.
type SizeDebouncer struct {
	delay   time.Duration
	width   float64 // Last applied size
	height  float64
	pending bool
	pendW   float64
	pendH   float64
	since   time.Duration
}

// NewSizeDebouncer starts from an applied width x height
func NewSizeDebouncer(delay time.Duration, width, height float64) *SizeDebouncer {
	return &SizeDebouncer{delay: delay, width: width, height: height}
}

// Observe records the size seen at now
func (d *SizeDebouncer) Observe(width, height float64, now time.Duration) {
	if width == d.width && height == d.height {
		d.pending = false
		return
	}
	if d.pending && width == d.pendW && height == d.pendH {
		return
	}
	d.pending = true
	d.pendW, d.pendH = width, height
	d.since = now
}

// Settled returns the new size once it has been stable for the delay
func (d *SizeDebouncer) Settled(now time.Duration) (float64, float64, bool) {
	if !d.pending || now-d.since < d.delay {
		return 0, 0, false
	}
	d.pending = false
	d.width, d.height = d.pendW, d.pendH
	return d.width, d.height, true
}
