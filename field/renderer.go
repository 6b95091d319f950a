package field

import (
	"math"
	"time"
)

// Renderer draws a store onto a surface. Every draw is validated first:
// non-finite coordinates and non-positive radii or alphas are skipped.
type Renderer struct {
	// Skipped counts draws rejected since the last ResetSkipped
	Skipped int
}

// Render clears the surface and draws all stars, then all shooting stars
func (r *Renderer) Render(s Surface, st *Store, now time.Duration) {
	s.Clear()
	for _, star := range st.Stars {
		r.drawStar(s, star, now)
	}
	for _, ss := range st.ShootingStars {
		r.drawShootingStar(s, ss)
	}
}

// ResetSkipped returns and zeroes the skipped draw counter
func (r *Renderer) ResetSkipped() int {
	n := r.Skipped
	r.Skipped = 0
	return n
}

func (r *Renderer) drawStar(s Surface, star *Star, now time.Duration) {
	if star == nil {
		r.Skipped++
		return
	}
	alpha := star.DisplayAlpha()
	if !finite(star.X, star.Y, star.Radius, alpha) || star.Radius <= 0 || alpha <= 0 {
		r.Skipped++
		return
	}

	if star.Glow && alpha > 0.5 {
		ms := float64(now) / float64(time.Millisecond)
		glowRadius := star.Radius * (2 + math.Sin(ms*0.001)*0.5)
		s.RadialGlow(star.X, star.Y, glowRadius, star.Color.NRGBA(alpha*0.1))
	}

	if star.Twinkling && star.TwinkleAlpha > 0.7 {
		s.Blur(star.X, star.Y, star.Radius, star.Radius*4, star.Color.NRGBA(0.8))
	}

	s.FillCircle(star.X, star.Y, star.Radius, star.Color.NRGBA(alpha))

	if star.Category == CategoryGiant && alpha > 0.6 {
		r.drawSpikes(s, star, alpha)
	}
}

// drawSpikes draws the four-way cross of a giant star
func (r *Renderer) drawSpikes(s Surface, star *Star, alpha float64) {
	length := star.Radius * 3
	clr := star.Color.NRGBA(alpha * 0.6)
	for i := 0; i < 4; i++ {
		angle := float64(i) * math.Pi / 2
		cos, sin := math.Cos(angle), math.Sin(angle)
		s.StrokeLine(
			star.X+cos*star.Radius, star.Y+sin*star.Radius,
			star.X+cos*length, star.Y+sin*length,
			0.5, clr,
		)
	}
}

func (r *Renderer) drawShootingStar(s Surface, ss *ShootingStar) {
	if ss == nil {
		r.Skipped++
		return
	}
	n := len(ss.Trail)
	if n < 2 {
		return
	}

	for i := 1; i < n; i++ {
		prev, curr := ss.Trail[i-1], ss.Trail[i]
		frac := float64(i) / float64(n)
		alpha := curr.Alpha * ss.Brightness * frac
		if !finite(prev.X, prev.Y, curr.X, curr.Y, alpha) || alpha <= 0 {
			r.Skipped++
			continue
		}
		s.StrokeLine(prev.X, prev.Y, curr.X, curr.Y, frac*3, ss.Color.NRGBA(alpha))
	}

	head := ss.HeadAlpha()
	if head <= 0 || !finite(ss.X, ss.Y, head) {
		return
	}
	s.FillCircle(ss.X, ss.Y, 2, ss.Color.NRGBA(head))
	if head > 0.5 {
		s.Blur(ss.X, ss.Y, 1, 8, ss.Color.NRGBA(0.5))
	}
}
