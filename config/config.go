package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"

	"starfield/field"
)

// Config holds window and field configuration
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int `env:"SCREEN_WIDTH"`

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int `env:"SCREEN_HEIGHT"`

	// Title is the window title
	Title string `env:"TITLE"`

	// ReducedMotion starts the field as a single static frame
	ReducedMotion bool `env:"REDUCED_MOTION"`

	// ResizeDebounce is how long the window size must settle before the field is rebuilt
	ResizeDebounce time.Duration `env:"RESIZE_DEBOUNCE"`

	// ProfileDir enables CPU profile capture on frame rate drops when set
	ProfileDir string `env:"PROFILE_DIR"`

	// Seed fixes the random source (0 seeds from the clock)
	Seed int64 `env:"SEED"`

	// Field holds the particle engine tunables
	Field field.Config
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	f := field.DefaultConfig()
	f.Host.CPUs = runtime.NumCPU()

	return Config{
		ScreenWidth:    1024,
		ScreenHeight:   768,
		Title:          "Starfield",
		ResizeDebounce: 250 * time.Millisecond,
		Field:          f,
	}
}

// Load returns the default configuration with STARFIELD_ environment overrides applied
func Load() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "STARFIELD_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the field cannot run with
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	case c.Field.TargetFPS <= 0:
		return fmt.Errorf("target fps %v must be positive", c.Field.TargetFPS)
	case c.Field.MinStars < 0 || c.Field.MaxStars < c.Field.MinStars:
		return fmt.Errorf("star bounds [%d, %d] are invalid", c.Field.MinStars, c.Field.MaxStars)
	case c.Field.ShootingStarInterval <= 0:
		return fmt.Errorf("shooting star interval %v must be positive", c.Field.ShootingStarInterval)
	case c.Field.ShootingStarDecayMin <= 0 || c.Field.ShootingStarDecayMax < c.Field.ShootingStarDecayMin:
		return fmt.Errorf("shooting star decay [%v, %v] is invalid", c.Field.ShootingStarDecayMin, c.Field.ShootingStarDecayMax)
	case c.Field.MonitorWindow <= 0:
		return fmt.Errorf("monitor window %v must be positive", c.Field.MonitorWindow)
	case c.Field.TrailLength < 0:
		return fmt.Errorf("trail length %d must not be negative", c.Field.TrailLength)
	case c.Field.AutoShootingStarCap < 0 || c.Field.ManualShootingStarCap < 0:
		return fmt.Errorf("shooting star caps %d/%d must not be negative", c.Field.AutoShootingStarCap, c.Field.ManualShootingStarCap)
	case c.Field.DegradeFloor < 0:
		return fmt.Errorf("degrade floor %d must not be negative", c.Field.DegradeFloor)
	case c.Field.GrowthStep < 0:
		return fmt.Errorf("growth step %d must not be negative", c.Field.GrowthStep)
	}
	return nil
}
