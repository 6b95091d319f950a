package field

import "time"

// Config holds the tunable constants of the particle field.
type Config struct {
	// TargetFPS caps the tick rate; faster frames are skipped, not queued
	TargetFPS float64 `env:"TARGET_FPS"`

	// AreaPerStar is the surface area (px^2) that buys one star
	AreaPerStar float64 `env:"AREA_PER_STAR"`

	// MinStars and MaxStars bound the size-appropriate star count
	MinStars int `env:"MIN_STARS"`
	MaxStars int `env:"MAX_STARS"`

	// SmallViewportStars caps the count on small or touch viewports
	SmallViewportStars int `env:"SMALL_VIEWPORT_STARS"`

	// MaxDPR caps the device pixel ratio used for the backing surface
	MaxDPR float64 `env:"MAX_DPR"`

	// ShootingStarInterval is the automatic spawn interval
	ShootingStarInterval time.Duration `env:"SHOOTING_STAR_INTERVAL"`

	// ShowerInterval replaces the spawn interval during a shower
	ShowerInterval time.Duration `env:"SHOWER_INTERVAL"`

	// AutoShootingStarCap limits concurrent automatic shooting stars
	AutoShootingStarCap int `env:"AUTO_SHOOTING_STAR_CAP"`

	// ManualShootingStarCap limits concurrent shooting stars for manual spawns
	ManualShootingStarCap int `env:"MANUAL_SHOOTING_STAR_CAP"`

	// ShootingStarDecayMin/Max bound the per-tick life decay
	ShootingStarDecayMin float64 `env:"SHOOTING_STAR_DECAY_MIN"`
	ShootingStarDecayMax float64 `env:"SHOOTING_STAR_DECAY_MAX"`

	// TrailLength caps the shooting star trail
	TrailLength int `env:"TRAIL_LENGTH"`

	// MonitorWindow is how often the achieved frame rate is measured
	MonitorWindow time.Duration `env:"MONITOR_WINDOW"`

	// LowFPS and HighFPS are the degrade/restore thresholds
	LowFPS  float64 `env:"LOW_FPS"`
	HighFPS float64 `env:"HIGH_FPS"`

	// DegradeFloor is the star count below which degrading stops shrinking
	DegradeFloor int `env:"DEGRADE_FLOOR"`

	// GrowthStep is the most stars added by one restore check
	GrowthStep int `env:"GROWTH_STEP"`

	// RecoveryDelay is the wait before the one-shot rebuild after a crashed tick
	RecoveryDelay time.Duration `env:"RECOVERY_DELAY"`

	// Host describes the machine the field runs on
	Host Host `envPrefix:"HOST_"`
}

// Host carries the device facts that scale the star count.
type Host struct {
	// CPUs is the number of logical processors (0 means unknown)
	CPUs int `env:"CPUS"`

	// Touch reports a touch-first device
	Touch bool `env:"TOUCH"`
}

// DefaultConfig returns the default field configuration
func DefaultConfig() Config {
	return Config{
		TargetFPS:             30,
		AreaPerStar:           12000,
		MinStars:              50,
		MaxStars:              280,
		SmallViewportStars:    120,
		MaxDPR:                2,
		ShootingStarInterval:  5 * time.Second,
		ShowerInterval:        200 * time.Millisecond,
		AutoShootingStarCap:   3,
		ManualShootingStarCap: 5,
		ShootingStarDecayMin:  0.01,
		ShootingStarDecayMax:  0.03,
		TrailLength:           15,
		MonitorWindow:         5 * time.Second,
		LowFPS:                18,
		HighFPS:               25,
		DegradeFloor:          80,
		GrowthStep:            15,
		RecoveryDelay:         time.Second,
	}
}

// FrameInterval returns the minimum time between two ticks
func (c Config) FrameInterval() time.Duration {
	if c.TargetFPS <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / c.TargetFPS)
}
