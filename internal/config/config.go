// Package config handles tool configuration loading and management.
package config

import "fmt"

// Config holds all baking and pathfinding settings.
type Config struct {
	Bake    BakeConfig    `yaml:"bake"`
	Path    PathConfig    `yaml:"path"`
	Logging LoggingConfig `yaml:"logging"`
}

// BakeConfig holds walkability filter settings.
type BakeConfig struct {
	// MaxStep is the tallest ledge an agent can climb, in world units.
	MaxStep float32 `yaml:"max_step"`
	// MaxSlopeDegrees is the steepest surface an agent can walk,
	// measured from horizontal.
	MaxSlopeDegrees float32 `yaml:"max_slope_degrees"`
}

// PathConfig holds path post-processing settings.
type PathConfig struct {
	Shaper       string `yaml:"shaper"` // "smooth", "funnel" or "none"
	SmoothPasses int    `yaml:"smooth_passes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Bake: BakeConfig{
			MaxStep:         0.4,
			MaxSlopeDegrees: 60,
		},
		Path: PathConfig{
			Shaper:       "smooth",
			SmoothPasses: 2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that the settings can drive a bake.
func (c *Config) Validate() error {
	if c.Bake.MaxStep < 0 {
		return fmt.Errorf("bake.max_step must not be negative: %g", c.Bake.MaxStep)
	}
	if c.Bake.MaxSlopeDegrees < 0 || c.Bake.MaxSlopeDegrees > 90 {
		return fmt.Errorf("bake.max_slope_degrees must be between 0 and 90: %g", c.Bake.MaxSlopeDegrees)
	}
	switch c.Path.Shaper {
	case "smooth", "funnel", "none":
	default:
		return fmt.Errorf("path.shaper must be smooth, funnel or none: %q", c.Path.Shaper)
	}
	if c.Path.SmoothPasses < 0 {
		return fmt.Errorf("path.smooth_passes must not be negative: %d", c.Path.SmoothPasses)
	}
	return nil
}
