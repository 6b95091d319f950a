package field

import (
	"math"
	"math/rand"
)

// spawnOffset is how far outside the surface edge shooting stars start
const spawnOffset = 50.0

// TrailPoint is one recent sample of a shooting star's path
type TrailPoint struct {
	X, Y  float64
	Alpha float64
}

// ShootingStar is a transient streak crossing the field
type ShootingStar struct {
	X, Y       float64
	VX, VY     float64
	Life       float64 // Starts at 1, removed at or below 0
	Decay      float64 // Life lost per tick
	Brightness float64
	Color      RGB
	Trail      []TrailPoint

	maxTrail int
}

// NewShootingStar spawns just outside a random edge, aimed at a random interior point
func NewShootingStar(width, height, decayMin, decayMax float64, maxTrail int, rng *rand.Rand) *ShootingStar {
	maxTrail = max(maxTrail, 0)
	ss := &ShootingStar{
		Life:       1.0,
		Decay:      decayMin + rng.Float64()*(decayMax-decayMin),
		Brightness: 0.8 + rng.Float64()*0.2,
		Color:      RGB{255, 240 + rng.Float64()*15, 200 + rng.Float64()*55},
		maxTrail:   maxTrail,
		Trail:      make([]TrailPoint, 0, maxTrail+1),
	}

	switch rng.Intn(4) {
	case 0: // Top
		ss.X = rng.Float64() * width
		ss.Y = -spawnOffset
	case 1: // Right
		ss.X = width + spawnOffset
		ss.Y = rng.Float64() * height
	case 2: // Bottom
		ss.X = rng.Float64() * width
		ss.Y = height + spawnOffset
	default: // Left
		ss.X = -spawnOffset
		ss.Y = rng.Float64() * height
	}

	targetX := rng.Float64() * width
	targetY := rng.Float64() * height
	dx := targetX - ss.X
	dy := targetY - ss.Y
	distance := math.Hypot(dx, dy)
	speed := 3 + rng.Float64()*4
	if distance > 0 {
		ss.VX = dx / distance * speed
		ss.VY = dy / distance * speed
	}
	return ss
}

// Update advances the shooting star one tick and reports whether it is still alive
func (ss *ShootingStar) Update() bool {
	ss.X += ss.VX
	ss.Y += ss.VY
	ss.Life -= ss.Decay

	ss.Trail = append(ss.Trail, TrailPoint{X: ss.X, Y: ss.Y, Alpha: ss.Life})
	if len(ss.Trail) > ss.maxTrail {
		ss.Trail = append(ss.Trail[:0], ss.Trail[1:]...)
	}
	return ss.IsAlive()
}

// IsAlive returns true while life remains
func (ss *ShootingStar) IsAlive() bool {
	return ss.Life > 0
}

// HeadAlpha is the alpha of the bright head disc
func (ss *ShootingStar) HeadAlpha() float64 {
	return ss.Life * ss.Brightness
}
