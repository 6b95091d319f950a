package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScreenWidth != 1024 || cfg.ScreenHeight != 768 {
		t.Errorf("screen = %dx%d, want 1024x768", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.Field.ShootingStarInterval != 5*time.Second {
		t.Errorf("shooting star interval = %v, want 5s", cfg.Field.ShootingStarInterval)
	}
	if cfg.Field.Host.CPUs <= 0 {
		t.Errorf("host cpus = %d, want detected count", cfg.Field.Host.CPUs)
	}
	if cfg.ResizeDebounce != 250*time.Millisecond {
		t.Errorf("resize debounce = %v, want 250ms", cfg.ResizeDebounce)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STARFIELD_SCREEN_WIDTH", "1280")
	t.Setenv("STARFIELD_REDUCED_MOTION", "true")
	t.Setenv("STARFIELD_SHOOTING_STAR_INTERVAL", "3s")
	t.Setenv("STARFIELD_MAX_STARS", "200")
	t.Setenv("STARFIELD_HOST_CPUS", "2")
	t.Setenv("STARFIELD_HOST_TOUCH", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScreenWidth != 1280 {
		t.Errorf("screen width = %d, want 1280", cfg.ScreenWidth)
	}
	if cfg.ScreenHeight != 768 {
		t.Errorf("screen height = %d, want default 768", cfg.ScreenHeight)
	}
	if !cfg.ReducedMotion {
		t.Error("reduced motion not set")
	}
	if cfg.Field.ShootingStarInterval != 3*time.Second {
		t.Errorf("shooting star interval = %v, want 3s", cfg.Field.ShootingStarInterval)
	}
	if cfg.Field.MaxStars != 200 {
		t.Errorf("max stars = %d, want 200", cfg.Field.MaxStars)
	}
	if cfg.Field.Host.CPUs != 2 || !cfg.Field.Host.Touch {
		t.Errorf("host = %+v, want 2 cpus with touch", cfg.Field.Host)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("STARFIELD_SCREEN_WIDTH", "wide")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsNegativeTrailLength(t *testing.T) {
	t.Setenv("STARFIELD_TRAIL_LENGTH", "-3")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a negative trail length")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.ScreenWidth = 0 }},
		{"zero fps", func(c *Config) { c.Field.TargetFPS = 0 }},
		{"inverted star bounds", func(c *Config) { c.Field.MaxStars = c.Field.MinStars - 1 }},
		{"zero interval", func(c *Config) { c.Field.ShootingStarInterval = 0 }},
		{"inverted decay", func(c *Config) { c.Field.ShootingStarDecayMax = c.Field.ShootingStarDecayMin / 2 }},
		{"zero monitor window", func(c *Config) { c.Field.MonitorWindow = 0 }},
		{"negative trail length", func(c *Config) { c.Field.TrailLength = -3 }},
		{"negative auto cap", func(c *Config) { c.Field.AutoShootingStarCap = -1 }},
		{"negative manual cap", func(c *Config) { c.Field.ManualShootingStarCap = -1 }},
		{"negative degrade floor", func(c *Config) { c.Field.DegradeFloor = -1 }},
		{"negative growth step", func(c *Config) { c.Field.GrowthStep = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
