package field

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"
)

var (
	// ErrInvalidSurface is returned for surfaces with non-positive or non-finite dimensions
	ErrInvalidSurface = errors.New("invalid drawing surface")

	// ErrInvalidArgument is returned by control operations given out-of-range values
	ErrInvalidArgument = errors.New("invalid argument")
)

// State is the engine lifecycle state
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StatePaused
	StateReducedMotion // One static frame, no ticks
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateReducedMotion:
		return "reduced-motion-static"
	default:
		return "uninitialized"
	}
}

// Engine owns the particle store and advances it once per tick.
// It is driven by a single host goroutine and is not safe for concurrent use.
type Engine struct {
	cfg      Config
	rng      *rand.Rand
	logger   *log.Logger
	store    *Store
	ticker   *Ticker
	monitor  *Monitor
	renderer Renderer
	dpr      float64

	started       bool
	userPaused    bool
	hidden        bool
	reducedMotion bool

	// now is the latest host time seen; renderTime drives time-varying effects
	now        time.Duration
	renderTime time.Duration

	// Shooting star spawning
	interval      time.Duration
	autoSpawn     bool
	spawnArmed    bool
	lastSpawn     time.Duration
	showering     bool
	showerUntil   time.Duration
	showerRestore time.Duration

	// One-shot recovery after a crashed tick
	crashed   bool
	recoverAt time.Duration

	// OnQualityChange is called after the monitor rescales the store
	OnQualityChange func(QualityChange)
}

// NewEngine creates an engine for a width x height surface (logical pixels).
// A zero seed seeds the random source from the clock.
func NewEngine(cfg Config, width, height float64, seed int64) (*Engine, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("new engine %vx%v: %w", width, height, ErrInvalidSurface)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		logger:    log.Default(),
		ticker:    NewTicker(cfg.FrameInterval()),
		monitor:   NewMonitor(cfg.MonitorWindow),
		dpr:       1,
		interval:  cfg.ShootingStarInterval,
		autoSpawn: true,
	}
	e.rebuild(width, height)
	return e, nil
}

func validSize(width, height float64) bool {
	return finite(width, height) && width > 0 && height > 0
}

// SetLogger replaces the engine's logger
func (e *Engine) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// rebuild discards every particle and populates a fresh store
func (e *Engine) rebuild(width, height float64) {
	count := StarCount(width, height, e.cfg)
	e.store = NewStore(width, height, count, e.rng)
	e.spawnArmed = false
	e.renderer.Skipped = 0
	e.logger.Printf("starfield: initialized %d stars for %.0fx%.0f", count, width, height)
}

// Start moves an uninitialized engine into the running state
func (e *Engine) Start(now time.Duration) {
	e.now = now
	e.started = true
	e.sync()
}

// State returns the current lifecycle state
func (e *Engine) State() State {
	switch {
	case !e.started:
		return StateUninitialized
	case e.reducedMotion:
		return StateReducedMotion
	case e.userPaused || e.hidden:
		return StatePaused
	default:
		return StateRunning
	}
}

// sync starts or stops the ticker to match the lifecycle state
func (e *Engine) sync() {
	if e.State() == StateRunning && !e.crashed {
		if !e.ticker.Running() {
			e.ticker.Start()
			e.monitor.Restart(e.now)
		}
		return
	}
	e.ticker.Stop()
}

// Frame is called by the host once per display frame. It runs at most one
// tick, skipping frames that arrive faster than the target rate, and
// reports whether a tick ran. A panic inside the tick stops the loop and
// schedules a single delayed rebuild.
func (e *Engine) Frame(now time.Duration) (ticked bool) {
	e.now = now
	e.endShower(now)

	if e.crashed {
		if now >= e.recoverAt {
			e.restart()
		}
		return false
	}
	if !e.ticker.Due(now) {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Printf("starfield: tick failed, recovering in %v: %v", e.cfg.RecoveryDelay, r)
			e.crashed = true
			e.recoverAt = now + e.cfg.RecoveryDelay
			e.ticker.Stop()
			ticked = false
		}
	}()
	e.tick(now)
	return true
}

func (e *Engine) restart() {
	e.crashed = false
	e.rebuild(e.store.Width, e.store.Height)
	if e.reducedMotion {
		e.freeze()
	}
	e.logger.Printf("starfield: recovered after failed tick")
	e.sync()
}

func (e *Engine) tick(now time.Duration) {
	st := e.store
	for i, s := range st.Stars {
		if s.Update(now, st.Width, st.Height, e.rng) && !s.Valid() {
			e.logger.Printf("starfield: star %d has invalid state, reseeding", i)
			s.reset(st.Width, st.Height, e.rng)
		}
	}
	st.updateShootingStars()
	e.renderTime = now

	if !e.spawnArmed {
		e.spawnArmed = true
		e.lastSpawn = now
	}
	if e.autoSpawn && now-e.lastSpawn >= e.interval {
		if len(st.ShootingStars) < e.cfg.AutoShootingStarCap {
			e.spawnShootingStar()
		}
		e.lastSpawn = now
	}

	if fps, done := e.monitor.Frame(now); done {
		e.adapt(fps)
	}
}

// adapt rescales the store according to the measured frame rate
func (e *Engine) adapt(fps float64) {
	st := e.store
	if skipped := e.renderer.ResetSkipped(); skipped > 0 {
		e.logger.Printf("starfield: skipped %d invalid draws", skipped)
	}

	change := QualityChange{FPS: fps}
	target := StarCount(st.Width, st.Height, e.cfg)
	switch {
	case fps < e.cfg.LowFPS:
		if len(st.Stars) > e.cfg.DegradeFloor {
			st.shrink(int(math.Floor(float64(len(st.Stars)) * 0.8)))
		}
		for _, s := range st.Stars {
			s.simplify()
		}
		st.clearShootingStars()
		change.Quality = QualityDegraded
		e.logger.Printf("starfield: %.1f fps, simplified to %d stars", fps, len(st.Stars))
	case fps > e.cfg.HighFPS && float64(len(st.Stars)) < float64(target)*0.9:
		st.grow(min(target, len(st.Stars)+e.cfg.GrowthStep), e.rng)
		change.Quality = QualityRestored
		e.logger.Printf("starfield: %.1f fps, grew to %d stars", fps, len(st.Stars))
	default:
		return
	}

	change.Stars = len(st.Stars)
	if e.OnQualityChange != nil {
		e.OnQualityChange(change)
	}
}

func (e *Engine) spawnShootingStar() {
	st := e.store
	st.ShootingStars = append(st.ShootingStars, NewShootingStar(
		st.Width, st.Height,
		e.cfg.ShootingStarDecayMin, e.cfg.ShootingStarDecayMax,
		e.cfg.TrailLength, e.rng,
	))
}

func (e *Engine) endShower(now time.Duration) {
	if e.showering && now >= e.showerUntil {
		e.showering = false
		e.interval = e.showerRestore
		e.logger.Printf("starfield: shower over, interval back to %v", e.interval)
	}
}

// Render clears the surface and draws the current store
func (e *Engine) Render(s Surface) {
	e.renderer.Render(s, e.store, e.renderTime)
}

// Resize rebuilds the store for new surface dimensions. Particles are
// discarded, not moved. dpr is capped by Config.MaxDPR.
func (e *Engine) Resize(width, height, dpr float64) error {
	if !validSize(width, height) {
		return fmt.Errorf("resize %vx%v: %w", width, height, ErrInvalidSurface)
	}
	e.ticker.Stop()
	e.dpr = clampDPR(dpr, e.cfg.MaxDPR)
	e.rebuild(width, height)
	if e.reducedMotion {
		e.freeze()
	}
	e.sync()
	return nil
}

func clampDPR(dpr, maxDPR float64) float64 {
	if !finite(dpr) || dpr < 1 {
		return 1
	}
	if maxDPR >= 1 && dpr > maxDPR {
		return maxDPR
	}
	return dpr
}

// DPR returns the capped device pixel ratio
func (e *Engine) DPR() float64 {
	return e.dpr
}

// Size returns the surface dimensions in logical pixels
func (e *Engine) Size() (float64, float64) {
	return e.store.Width, e.store.Height
}

// Store exposes the particle store for read-only inspection
func (e *Engine) Store() *Store {
	return e.store
}

// Pause stops ticking without losing state
func (e *Engine) Pause() {
	if e.userPaused {
		return
	}
	e.userPaused = true
	e.sync()
	e.logger.Printf("starfield: paused")
}

// Resume continues from the exact pre-pause state
func (e *Engine) Resume() {
	if !e.userPaused {
		return
	}
	e.userPaused = false
	e.sync()
	e.logger.Printf("starfield: resumed")
}

// SetVisible pauses the engine while the host is hidden
func (e *Engine) SetVisible(visible bool) {
	e.hidden = !visible
	e.sync()
}

// SetReducedMotion switches between full animation and a single static frame
func (e *Engine) SetReducedMotion(reduce bool) {
	if reduce == e.reducedMotion {
		return
	}
	e.reducedMotion = reduce
	if reduce {
		e.freeze()
		e.logger.Printf("starfield: reduced motion, rendering static frame")
	} else {
		e.logger.Printf("starfield: motion allowed, animating")
	}
	e.sync()
}

func (e *Engine) freeze() {
	e.store.clearShootingStars()
	for _, s := range e.store.Stars {
		s.freeze(e.rng)
	}
}

// ToggleTwinkle enables or disables twinkle bursts. Enabling re-rolls
// eligibility so roughly 12% of stars twinkle.
func (e *Engine) ToggleTwinkle(enabled bool) {
	for _, s := range e.store.Stars {
		s.Twinkle = enabled && e.rng.Float64() < 0.12
		if !s.Twinkle {
			s.Twinkling = false
			s.TwinkleAlpha = 1.0
		}
	}
}

// ToggleGlow enables or disables the halo of bright and giant stars
func (e *Engine) ToggleGlow(enabled bool) {
	for _, s := range e.store.Stars {
		if GetCategoryConfig(s.Category).Glow {
			s.Glow = enabled
		}
	}
}

// TogglePulse enables or disables pulsing on giant stars
func (e *Engine) TogglePulse(enabled bool) {
	for _, s := range e.store.Stars {
		cfg := GetCategoryConfig(s.Category)
		if cfg.PulseChance <= 0 {
			continue
		}
		s.Pulse = enabled && e.rng.Float64() < cfg.PulseChance
		if !s.Pulse {
			s.PulseAlpha = 0
		}
	}
}

// SetMoveSpeed scales the movement speed of every star
func (e *Engine) SetMoveSpeed(multiplier float64) error {
	if !finite(multiplier) || multiplier < 0 {
		return fmt.Errorf("move speed %v: %w", multiplier, ErrInvalidArgument)
	}
	for _, s := range e.store.Stars {
		s.MoveSpeed *= multiplier
		s.OrbitSpeed *= multiplier
		s.randomDirection(e.rng)
	}
	return nil
}

// SpawnShootingStars spawns up to n shooting stars without exceeding the
// manual cap and returns how many were spawned
func (e *Engine) SpawnShootingStars(n int) int {
	spawned := 0
	for spawned < n && len(e.store.ShootingStars) < e.cfg.ManualShootingStarCap {
		e.spawnShootingStar()
		spawned++
	}
	return spawned
}

// SetShootingStarInterval changes the automatic spawn interval
func (e *Engine) SetShootingStarInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("shooting star interval %v: %w", d, ErrInvalidArgument)
	}
	if e.showering {
		e.showerRestore = d
		return nil
	}
	e.interval = d
	return nil
}

// ShootingStarInterval returns the spawn interval currently in effect
func (e *Engine) ShootingStarInterval() time.Duration {
	return e.interval
}

// SetAutoShootingStars enables or disables timed spawning
func (e *Engine) SetAutoShootingStars(enabled bool) {
	e.autoSpawn = enabled
}

// StarShower shrinks the spawn interval for d, then restores it.
// A shower started during another extends it.
func (e *Engine) StarShower(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("star shower %v: %w", d, ErrInvalidArgument)
	}
	if !e.showering {
		e.showering = true
		e.showerRestore = e.interval
	}
	e.interval = e.cfg.ShowerInterval
	if until := e.now + d; until > e.showerUntil {
		e.showerUntil = until
	}
	e.logger.Printf("starfield: star shower for %v", d)
	return nil
}

// Reset rebuilds the store from scratch for the current dimensions
func (e *Engine) Reset() {
	e.ticker.Stop()
	e.crashed = false
	e.rebuild(e.store.Width, e.store.Height)
	if e.reducedMotion {
		e.freeze()
	}
	e.sync()
}
