package field

import (
	"image/color"
	"math"
)

// RGB is a color with float channels in [0, 255]
type RGB struct {
	R, G, B float64
}

// NRGBA converts the color and an alpha in [0, 1] to a color.NRGBA
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(alpha * 255),
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 255)))
}

// Surface is the 2D drawing target the field renders onto.
// Callers never pass non-finite coordinates, non-positive radii or
// non-positive alphas; the renderer filters those out first.
type Surface interface {
	// Clear erases the whole surface
	Clear()

	// FillCircle draws a filled disc
	FillCircle(x, y, radius float64, clr color.NRGBA)

	// RadialGlow draws a disc fading from clr at the center to transparent at radius
	RadialGlow(x, y, radius float64, clr color.NRGBA)

	// StrokeLine draws a line segment with round caps
	StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA)

	// Blur draws a soft shadow of the given blur radius around (x, y)
	Blur(x, y, radius, blur float64, clr color.NRGBA)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
