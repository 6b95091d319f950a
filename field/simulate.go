package field

import (
	"fmt"
	"image/color"
	"time"
)

// DrawCounts tallies calls made on a surface
type DrawCounts struct {
	Clears  int
	Circles int
	Glows   int
	Lines   int
	Blurs   int
}

// CountingSurface is a Surface that only counts what would be drawn
type CountingSurface struct {
	DrawCounts
}

func (c *CountingSurface) Clear()                                           { c.Clears++ }
func (c *CountingSurface) FillCircle(x, y, radius float64, clr color.NRGBA) { c.Circles++ }
func (c *CountingSurface) RadialGlow(x, y, radius float64, clr color.NRGBA) { c.Glows++ }
func (c *CountingSurface) Blur(x, y, radius, blur float64, clr color.NRGBA) { c.Blurs++ }
func (c *CountingSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	c.Lines++
}

// SimulationResult is what a headless run observed
type SimulationResult struct {
	Frames      int
	Ticks       int
	Draws       DrawCounts
	Changes     []QualityChange
	Stats       Stats
	Performance Performance
	Elapsed     time.Duration // Wall time spent in Frame and Render
}

// Simulate drives e with host frames arriving at hostFPS for d of
// simulated time, rendering every frame onto a CountingSurface
func Simulate(e *Engine, hostFPS float64, d time.Duration) (SimulationResult, error) {
	if !finite(hostFPS) || hostFPS <= 0 || d <= 0 {
		return SimulationResult{}, fmt.Errorf("simulate %v fps for %v: %w", hostFPS, d, ErrInvalidArgument)
	}

	var res SimulationResult
	prev := e.OnQualityChange
	e.OnQualityChange = func(c QualityChange) {
		res.Changes = append(res.Changes, c)
		if prev != nil {
			prev(c)
		}
	}
	defer func() { e.OnQualityChange = prev }()

	if e.State() == StateUninitialized {
		e.Start(0)
	}

	surface := &CountingSurface{}
	step := time.Duration(float64(time.Second) / hostFPS)
	start := time.Now()
	for now := e.now + step; now <= d; now += step {
		if e.Frame(now) {
			res.Ticks++
		}
		e.Render(surface)
		res.Frames++
	}
	res.Elapsed = time.Since(start)

	res.Draws = surface.DrawCounts
	res.Stats = e.Stats()
	res.Performance = e.Performance()
	return res, nil
}
