package field

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewShootingStarSpawnsOutsideEdge(t *testing.T) {
	const width, height = 800.0, 600.0
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 500; i++ {
		ss := NewShootingStar(width, height, 0.01, 0.03, 15, rng)
		inside := ss.X > -spawnOffset && ss.X < width+spawnOffset && ss.Y > -spawnOffset && ss.Y < height+spawnOffset
		if inside {
			t.Fatalf("spawned inside the surface at (%v, %v)", ss.X, ss.Y)
		}
		speed := math.Hypot(ss.VX, ss.VY)
		if speed < 3 || speed > 7 {
			t.Fatalf("speed %v outside [3, 7]", speed)
		}
		if ss.Life != 1 {
			t.Fatalf("life = %v, want 1", ss.Life)
		}
		if ss.Decay < 0.01 || ss.Decay > 0.03 {
			t.Fatalf("decay %v outside [0.01, 0.03]", ss.Decay)
		}
	}
}

func TestShootingStarLifeAndTrail(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	ss := NewShootingStar(800, 600, 0.015, 0.015, 15, rng)

	prev := ss.Life
	ticks := 0
	for ss.Update() {
		ticks++
		if ss.Life >= prev {
			t.Fatalf("tick %d: life %v did not decrease from %v", ticks, ss.Life, prev)
		}
		prev = ss.Life
		if len(ss.Trail) > 15 {
			t.Fatalf("trail length %d exceeds cap", len(ss.Trail))
		}
		head := ss.Trail[len(ss.Trail)-1]
		if head.X != ss.X || head.Y != ss.Y {
			t.Fatal("newest trail sample is not the head position")
		}
	}
	ticks++
	if ticks < 66 || ticks > 68 {
		t.Errorf("died after %d ticks, want about 67", ticks)
	}
	if ss.IsAlive() {
		t.Error("star still alive after Update returned false")
	}
}

func TestShootingStarTrailDropsOldest(t *testing.T) {
	ss := &ShootingStar{Life: 1, Decay: 0.001, VX: 1, maxTrail: 3}
	for i := 0; i < 5; i++ {
		ss.Update()
	}
	if len(ss.Trail) != 3 {
		t.Fatalf("trail length = %d, want 3", len(ss.Trail))
	}
	if ss.Trail[0].X != 3 || ss.Trail[2].X != 5 {
		t.Errorf("trail = %+v, want samples x=3..5", ss.Trail)
	}
}

func TestNegativeTrailLengthKeepsNoTrail(t *testing.T) {
	ss := NewShootingStar(800, 600, 0.01, 0.03, -3, rand.New(rand.NewSource(3)))
	for i := 0; i < 5; i++ {
		ss.Update()
	}
	if len(ss.Trail) != 0 {
		t.Errorf("trail length = %d, want 0", len(ss.Trail))
	}
}
