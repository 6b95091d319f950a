package field

import (
	"math"
	"math/rand"
)

// Viewport widths below which the star count is capped
const (
	smallViewportWidth = 768
	touchViewportWidth = 1024
)

// StarCount returns the size-appropriate number of stars for a surface
func StarCount(width, height float64, cfg Config) int {
	if cfg.AreaPerStar <= 0 {
		return cfg.MinStars
	}
	base := int(math.Floor(width * height / cfg.AreaPerStar))

	if width <= smallViewportWidth || (cfg.Host.Touch && width <= touchViewportWidth) {
		base = min(base, cfg.SmallViewportStars)
	}
	if cfg.Host.CPUs > 0 && cfg.Host.CPUs <= 4 {
		base = int(math.Floor(float64(base) * 0.7))
	}
	return max(cfg.MinStars, min(base, cfg.MaxStars))
}

// Store owns every particle for the current surface dimensions
type Store struct {
	Width, Height float64
	Stars         []*Star
	ShootingStars []*ShootingStar
}

// NewStore builds a fresh store populated with count stars
func NewStore(width, height float64, count int, rng *rand.Rand) *Store {
	st := &Store{
		Width:         width,
		Height:        height,
		Stars:         make([]*Star, 0, count),
		ShootingStars: make([]*ShootingStar, 0, 8),
	}
	st.grow(count, rng)
	return st
}

// grow appends new stars until the store holds count of them
func (st *Store) grow(count int, rng *rand.Rand) {
	for len(st.Stars) < count {
		st.Stars = append(st.Stars, NewStar(st.Width, st.Height, rng))
	}
}

// shrink keeps the first count stars
func (st *Store) shrink(count int) {
	if count >= len(st.Stars) {
		return
	}
	for i := count; i < len(st.Stars); i++ {
		st.Stars[i] = nil
	}
	st.Stars = st.Stars[:count]
}

// updateShootingStars advances every shooting star and removes the dead ones
func (st *Store) updateShootingStars() {
	for i := len(st.ShootingStars) - 1; i >= 0; i-- {
		if !st.ShootingStars[i].Update() {
			st.ShootingStars = append(st.ShootingStars[:i], st.ShootingStars[i+1:]...)
		}
	}
}

func (st *Store) clearShootingStars() {
	st.ShootingStars = st.ShootingStars[:0]
}
