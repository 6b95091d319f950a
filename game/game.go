package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"starfield/config"
	"starfield/field"
)

// Game hosts a starfield engine inside an ebiten window
type Game struct {
	config   config.Config
	engine   *field.Engine
	debounce *field.SizeDebouncer

	// Effect switches driven by the keyboard
	effects   effects
	paused    bool
	reduced   bool
	moveSpeed float64
	showStats bool

	// Window state seen in Layout
	outsideW, outsideH int
	deviceScale        float64
	appliedScale       float64
	focused            bool

	// Performance profiling, nil unless a profile dir is configured
	profiler *Profiler

	// Engine clock origin
	startTime time.Time
}

// effects tracks which per-star effects are switched on
type effects struct {
	twinkle bool
	glow    bool
	pulse   bool
	auto    bool
}

// NewGame creates a game with a running engine sized to the configured window
func NewGame(cfg config.Config) (*Game, error) {
	width, height := float64(cfg.ScreenWidth), float64(cfg.ScreenHeight)
	engine, err := field.NewEngine(cfg.Field, width, height, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	g := &Game{
		config:       cfg,
		engine:       engine,
		debounce:     field.NewSizeDebouncer(cfg.ResizeDebounce, width, height),
		effects:      effects{twinkle: true, glow: true, pulse: true, auto: true},
		reduced:      cfg.ReducedMotion,
		moveSpeed:    1,
		outsideW:     cfg.ScreenWidth,
		outsideH:     cfg.ScreenHeight,
		deviceScale:  1,
		appliedScale: 1,
		focused:      true,
		startTime:    time.Now(),
	}

	if cfg.ProfileDir != "" {
		g.profiler, err = NewProfiler(cfg.ProfileDir)
		if err != nil {
			return nil, err
		}
		engine.OnQualityChange = g.onQualityChange
	}

	engine.SetReducedMotion(cfg.ReducedMotion)
	engine.Start(0)
	return g, nil
}

// Engine returns the hosted engine
func (g *Game) Engine() *field.Engine {
	return g.engine
}

// onQualityChange captures a profile whenever the field has to degrade
func (g *Game) onQualityChange(c field.QualityChange) {
	log.Printf("starfield: quality %s at %.1f fps, %d stars", c.Quality, c.FPS, c.Stars)
	if c.Quality != field.QualityDegraded || g.profiler == nil {
		return
	}
	reason := fmt.Sprintf("fps%.0f-stars%d", c.FPS, c.Stars)
	if err := g.profiler.CaptureProfile(reason); err != nil {
		log.Printf("starfield: skip profile: %v", err)
	}
}

// Update advances the engine by at most one tick
func (g *Game) Update() error {
	now := time.Since(g.startTime)

	g.handleInput()

	// Window focus stands in for page visibility
	if focused := ebiten.IsFocused(); focused != g.focused {
		g.focused = focused
		g.engine.SetVisible(focused)
	}

	if g.outsideW > 0 && g.outsideH > 0 {
		g.debounce.Observe(float64(g.outsideW), float64(g.outsideH), now)
	}
	if w, h, ok := g.debounce.Settled(now); ok {
		g.resize(w, h)
	} else if g.deviceScale != g.appliedScale {
		// Moved to a monitor with another scale factor
		g.resize(g.engine.Size())
	}

	g.engine.Frame(now)
	return nil
}

func (g *Game) resize(width, height float64) {
	g.appliedScale = g.deviceScale
	if err := g.engine.Resize(width, height, g.deviceScale); err != nil {
		log.Printf("starfield: resize: %v", err)
	}
}

// Draw renders the field and, when enabled, the stats overlay
func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Render(newScreenSurface(screen, g.engine.DPR()))
	if g.showStats {
		drawHUD(screen, g.engine, g.effects, g.profiler != nil && g.profiler.IsProfiling())
	}
}

// Layout keeps the screen at the engine's last applied size until a
// resize settles; ebiten stretches it over the window meanwhile
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	if m := ebiten.Monitor(); m != nil {
		g.deviceScale = m.DeviceScaleFactor()
	}

	w, h := g.engine.Size()
	dpr := g.engine.DPR()
	return int(w * dpr), int(h * dpr)
}
