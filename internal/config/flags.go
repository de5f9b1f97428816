package config

import "flag"

// Flags holds the override pointers registered on one flag set.
type Flags struct {
	Config       *string
	Debug        *bool
	LogFile      *string
	MaxStep      *float64
	MaxSlope     *float64
	Shaper       *string
	SmoothPasses *int

	fs *flag.FlagSet
}

// AddFlags registers the shared configuration overrides on fs, so
// every subcommand accepts the same switches.
func AddFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Config:       fs.String("config", "", "Path to config file"),
		Debug:        fs.Bool("debug", false, "Enable debug logging"),
		LogFile:      fs.String("log-file", "", "Write logs to this file"),
		MaxStep:      fs.Float64("max-step", 0, "Maximum climbable step height"),
		MaxSlope:     fs.Float64("max-slope", 0, "Maximum walkable slope in degrees"),
		Shaper:       fs.String("shaper", "", "Path shaper: smooth, funnel or none"),
		SmoothPasses: fs.Int("smooth-passes", 0, "Smoothing passes for the smooth shaper"),
		fs:           fs,
	}
}

// Apply copies the flags the user actually set into cfg, so file
// values survive unless overridden on the command line. Explicit
// zeros count as set.
func (f *Flags) Apply(cfg *Config) {
	set := make(map[string]bool)
	f.fs.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})

	if set["debug"] && *f.Debug {
		cfg.Logging.Level = "debug"
	}
	if set["log-file"] {
		cfg.Logging.LogFile = *f.LogFile
	}
	if set["max-step"] {
		cfg.Bake.MaxStep = float32(*f.MaxStep)
	}
	if set["max-slope"] {
		cfg.Bake.MaxSlopeDegrees = float32(*f.MaxSlope)
	}
	if set["shaper"] {
		cfg.Path.Shaper = *f.Shaper
	}
	if set["smooth-passes"] {
		cfg.Path.SmoothPasses = *f.SmoothPasses
	}
}
