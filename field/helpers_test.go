package field

import (
	"image/color"
	"io"
	"log"
	"os"
	"testing"
	"time"
)

// tick is exactly one target frame interval
const tick = time.Second / 30

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Host = Host{CPUs: 8}
	return cfg
}

func newTestEngine(t *testing.T, cfg Config, width, height float64) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, width, height, 42)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	e.SetLogger(log.New(io.Discard, "", 0))
	return e
}

// advance calls Frame n times, step apart, starting after from, and returns the last time
func advance(e *Engine, from time.Duration, n int, step time.Duration) time.Duration {
	now := from
	for i := 0; i < n; i++ {
		now += step
		e.Frame(now)
	}
	return now
}

type drawOp struct {
	kind   string
	x, y   float64
	radius float64
	width  float64
	clr    color.NRGBA
}

// recordSurface records every draw call in order
type recordSurface struct {
	ops []drawOp
}

func (r *recordSurface) Clear() {
	r.ops = append(r.ops, drawOp{kind: "clear"})
}

func (r *recordSurface) FillCircle(x, y, radius float64, clr color.NRGBA) {
	r.ops = append(r.ops, drawOp{kind: "circle", x: x, y: y, radius: radius, clr: clr})
}

func (r *recordSurface) RadialGlow(x, y, radius float64, clr color.NRGBA) {
	r.ops = append(r.ops, drawOp{kind: "glow", x: x, y: y, radius: radius, clr: clr})
}

func (r *recordSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	r.ops = append(r.ops, drawOp{kind: "line", x: x0, y: y0, width: width, clr: clr})
}

func (r *recordSurface) Blur(x, y, radius, blur float64, clr color.NRGBA) {
	r.ops = append(r.ops, drawOp{kind: "blur", x: x, y: y, radius: radius, width: blur, clr: clr})
}

func (r *recordSurface) count(kind string) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}
