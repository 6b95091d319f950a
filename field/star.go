package field

import (
	"math"
	"math/rand"
	"time"
)

// MovementPattern selects how a star drifts
type MovementPattern int

const (
	MovementRandomWalk MovementPattern = iota // Straight drift, re-aimed every few seconds
	MovementOrbital                           // Circles a slowly wandering center
)

// WrapMargin is how far a star may overshoot an edge before it wraps
const WrapMargin = 20.0

// Star is a persistent decorative point of light
type Star struct {
	X, Y   float64
	Radius float64
	Color  RGB

	// Alpha oscillates between MinAlpha and MaxAlpha by AlphaDelta per update
	Alpha      float64
	AlphaDelta float64
	MinAlpha   float64
	MaxAlpha   float64

	Category Category
	Movement MovementPattern

	// Random walk
	VX, VY                  float64
	MoveSpeed               float64
	lastDirectionChange     time.Duration
	directionChangeInterval time.Duration

	// Orbital
	OrbitCenterX, OrbitCenterY float64
	OrbitRadius                float64
	OrbitAngle                 float64
	OrbitSpeed                 float64

	// Effect eligibility
	Glow    bool
	Pulse   bool
	Twinkle bool

	// Pulse state
	pulsePhase     float64
	pulseSpeed     float64
	pulseIntensity float64
	PulseAlpha     float64

	// Twinkle state
	twinkleChance   float64
	Twinkling       bool
	TwinkleAlpha    float64
	twinkleDuration float64

	// UpdateInterval decorrelates updates between stars
	UpdateInterval time.Duration
	lastUpdate     time.Duration
}

// NewStar creates a star at a random position on a width x height surface
func NewStar(width, height float64, rng *rand.Rand) *Star {
	s := &Star{}
	s.reset(width, height, rng)
	return s
}

func (s *Star) reset(width, height float64, rng *rand.Rand) {
	*s = Star{
		X: rng.Float64() * width,
		Y: rng.Float64() * height,
	}

	s.Category = RandomCategory(rng)
	cfg := GetCategoryConfig(s.Category)
	s.Radius = cfg.Radius.pick(rng)
	s.MoveSpeed = cfg.MoveSpeed.pick(rng)
	s.Color = randomColor(s.Category, rng)
	s.Glow = cfg.Glow
	s.Pulse = cfg.PulseChance > 0 && rng.Float64() < cfg.PulseChance

	blink := cfg.BlinkSpeed.pick(rng)
	if rng.Float64() < 0.5 {
		blink = -blink
	}
	s.AlphaDelta = blink
	s.MinAlpha = 0.1 + rng.Float64()*0.3
	s.MaxAlpha = 0.6 + rng.Float64()*0.4
	s.Alpha = clamp(0.4+rng.Float64()*0.4, s.MinAlpha, s.MaxAlpha)

	s.Twinkle = rng.Float64() < 0.12
	s.twinkleChance = 0.001 + rng.Float64()*0.002
	s.TwinkleAlpha = 1.0

	s.pulsePhase = rng.Float64() * 2 * math.Pi
	s.pulseSpeed = 0.02 + rng.Float64()*0.03
	s.pulseIntensity = 0.3 + rng.Float64()*0.4

	if rng.Float64() < 0.85 {
		s.Movement = MovementRandomWalk
		s.randomDirection(rng)
	} else {
		s.Movement = MovementOrbital
		s.OrbitCenterX = s.X
		s.OrbitCenterY = s.Y
		s.OrbitRadius = 20 + rng.Float64()*40
		s.OrbitSpeed = 0.005 + rng.Float64()*0.010
		s.OrbitAngle = rng.Float64() * 2 * math.Pi
	}

	s.directionChangeInterval = millis(1500 + rng.Float64()*3500)
	s.UpdateInterval = millis(30 + rng.Float64()*60)
}

// randomDirection re-aims a random-walk star at its current speed
func (s *Star) randomDirection(rng *rand.Rand) {
	if s.Movement != MovementRandomWalk {
		return
	}
	angle := rng.Float64() * 2 * math.Pi
	s.VX = math.Cos(angle) * s.MoveSpeed
	s.VY = math.Sin(angle) * s.MoveSpeed
}

// Update advances the star if its update interval has elapsed.
// It reports whether the star changed.
func (s *Star) Update(now time.Duration, width, height float64, rng *rand.Rand) bool {
	if now-s.lastUpdate < s.UpdateInterval {
		return false
	}
	s.lastUpdate = now

	switch s.Movement {
	case MovementOrbital:
		s.OrbitAngle += s.OrbitSpeed
		s.X = s.OrbitCenterX + math.Cos(s.OrbitAngle)*s.OrbitRadius
		s.Y = s.OrbitCenterY + math.Sin(s.OrbitAngle)*s.OrbitRadius

		if rng.Float64() < 0.0005 {
			s.OrbitCenterX = clamp(s.OrbitCenterX+(rng.Float64()-0.5)*100, 50, math.Max(50, width-50))
			s.OrbitCenterY = clamp(s.OrbitCenterY+(rng.Float64()-0.5)*100, 50, math.Max(50, height-50))
		}
	default:
		if now-s.lastDirectionChange > s.directionChangeInterval {
			s.randomDirection(rng)
			s.lastDirectionChange = now
			s.directionChangeInterval = millis(1000 + rng.Float64()*4000)
		}
		s.X += s.VX
		s.Y += s.VY
	}

	s.wrap(width, height)

	s.Alpha += s.AlphaDelta
	if s.Alpha <= s.MinAlpha || s.Alpha >= s.MaxAlpha {
		s.AlphaDelta = -s.AlphaDelta
		s.Alpha = clamp(s.Alpha, s.MinAlpha, s.MaxAlpha)
	}

	if s.Pulse {
		s.pulsePhase += s.pulseSpeed
		s.PulseAlpha = math.Sin(s.pulsePhase) * s.pulseIntensity
	}

	if s.Twinkle && !s.Twinkling && rng.Float64() < s.twinkleChance {
		s.Twinkling = true
		s.TwinkleAlpha = 1.0
		s.twinkleDuration = 6 + math.Floor(rng.Float64()*13)
	}
	if s.Twinkling {
		s.twinkleDuration--
		if s.twinkleDuration <= 0 {
			s.Twinkling = false
			s.TwinkleAlpha = 1.0
		} else {
			s.TwinkleAlpha = 0.3 + 0.7*math.Sin(s.twinkleDuration*0.5)
		}
	}
	return true
}

// wrap moves an out-of-bounds star to the opposite edge (torus, not bounce)
func (s *Star) wrap(width, height float64) {
	if s.X < -WrapMargin {
		s.X = width + WrapMargin
	} else if s.X > width+WrapMargin {
		s.X = -WrapMargin
	}
	if s.Y < -WrapMargin {
		s.Y = height + WrapMargin
	} else if s.Y > height+WrapMargin {
		s.Y = -WrapMargin
	}
}

// DisplayAlpha combines blink, pulse and twinkle into the drawn alpha
func (s *Star) DisplayAlpha() float64 {
	alpha := s.Alpha
	if s.Pulse {
		alpha += s.PulseAlpha
	}
	if s.Twinkling {
		alpha = math.Min(1, alpha*s.TwinkleAlpha)
	}
	return clamp(alpha, 0, 1)
}

// Valid reports whether the star's state is drawable
func (s *Star) Valid() bool {
	return finite(s.X, s.Y, s.Radius, s.Alpha, s.VX, s.VY)
}

// simplify drops all effects and slows the star down
func (s *Star) simplify() {
	s.Twinkle = false
	s.Twinkling = false
	s.TwinkleAlpha = 1.0
	s.Glow = false
	s.Pulse = false
	s.PulseAlpha = 0
	s.MoveSpeed *= 0.8
	s.VX *= 0.8
	s.VY *= 0.8
	s.OrbitSpeed *= 0.8
	s.UpdateInterval += 15 * time.Millisecond
}

// freeze sets a fixed random alpha for a static frame
func (s *Star) freeze(rng *rand.Rand) {
	s.Twinkling = false
	s.TwinkleAlpha = 1.0
	s.PulseAlpha = 0
	s.Alpha = clamp(0.3+rng.Float64()*0.5, s.MinAlpha, s.MaxAlpha)
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
