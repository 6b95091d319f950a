package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	showerDuration = 5 * time.Second
	speedStep      = 1.25
	minMoveSpeed   = 0.1
	maxMoveSpeed   = 10.0
)

// handleInput maps key presses onto engine controls
func (g *Game) handleInput() {
	e := g.engine

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showStats = !g.showStats
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if g.paused {
			e.Pause()
		} else {
			e.Resume()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.reduced = !g.reduced
		e.SetReducedMotion(g.reduced)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.effects.twinkle = !g.effects.twinkle
		e.ToggleTwinkle(g.effects.twinkle)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.effects.glow = !g.effects.glow
		e.ToggleGlow(g.effects.glow)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.effects.pulse = !g.effects.pulse
		e.TogglePulse(g.effects.pulse)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		e.SpawnShootingStars(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := e.StarShower(showerDuration); err != nil {
			log.Printf("starfield: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.effects.auto = !g.effects.auto
		e.SetAutoShootingStars(g.effects.auto)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.scaleSpeed(speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.scaleSpeed(1 / speedStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		e.Reset()
		g.moveSpeed = 1
		g.effects = effects{twinkle: true, glow: true, pulse: true, auto: g.effects.auto}
	}
}

// scaleSpeed multiplies star movement by factor within sane bounds
func (g *Game) scaleSpeed(factor float64) {
	next := g.moveSpeed * factor
	if next < minMoveSpeed || next > maxMoveSpeed {
		return
	}
	if err := g.engine.SetMoveSpeed(factor); err != nil {
		log.Printf("starfield: %v", err)
		return
	}
	g.moveSpeed = next
}
