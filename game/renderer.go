package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 3, G: 5, B: 16, A: 255}
	colorHUD        = color.NRGBA{R: 180, G: 210, B: 255, A: 255}
)

// glowSteps is the number of stacked discs approximating a radial gradient
const glowSteps = 6

// screenSurface draws field particles onto an ebiten image.
// Field coordinates are logical pixels; scale maps them to device pixels.
type screenSurface struct {
	dst   *ebiten.Image
	scale float64
}

// newScreenSurface wraps an ebiten image as a field surface
func newScreenSurface(dst *ebiten.Image, scale float64) *screenSurface {
	if scale <= 0 {
		scale = 1
	}
	return &screenSurface{dst: dst, scale: scale}
}

// Clear fills the image with the night sky
func (s *screenSurface) Clear() {
	s.dst.Fill(colorBackground)
}

// FillCircle draws an antialiased filled disc
func (s *screenSurface) FillCircle(x, y, radius float64, clr color.NRGBA) {
	vector.DrawFilledCircle(s.dst, s.px(x), s.px(y), s.px(radius), clr, true)
}

// RadialGlow stacks translucent discs so the center accumulates clr's
// alpha and the rim fades to nothing
func (s *screenSurface) RadialGlow(x, y, radius float64, clr color.NRGBA) {
	step := clr
	step.A = uint8(max(1, int(clr.A)/glowSteps))
	for i := glowSteps; i >= 1; i-- {
		r := radius * float64(i) / glowSteps
		vector.DrawFilledCircle(s.dst, s.px(x), s.px(y), s.px(r), step, true)
	}
}

// StrokeLine draws an antialiased line segment
func (s *screenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	vector.StrokeLine(s.dst, s.px(x0), s.px(y0), s.px(x1), s.px(y1), s.px(width), clr, true)
}

// Blur approximates a canvas shadow as a faint glow reaching blur past the radius
func (s *screenSurface) Blur(x, y, radius, blur float64, clr color.NRGBA) {
	shadow := clr
	shadow.A /= 2
	s.RadialGlow(x, y, radius+blur, shadow)
}

func (s *screenSurface) px(v float64) float32 {
	return float32(v * s.scale)
}
