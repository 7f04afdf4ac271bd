package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLog       = flag.String("log", "", "Log file path")
	flagFriction  = flag.Float64("friction", -1, "Deceleration set on press, deg/s²")
	flagIdleSpeed = flag.Float64("idle-speed", -1, "Initial spin speed, deg/s")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLog != "" {
		cfg.Logging.LogFile = *flagLog
	}
	if *flagFriction >= 0 {
		cfg.Physics.PressFriction = *flagFriction
	}
	if *flagIdleSpeed >= 0 {
		cfg.Physics.IdleSpeed = *flagIdleSpeed
	}
}
