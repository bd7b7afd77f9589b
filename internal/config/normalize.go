// internal/config/normalize.go
package config

// Defaults match the game's local telemetry surface.
const (
	DefaultHost       = "127.0.0.1"
	DefaultPort       = 8111
	DefaultTimeoutMs  = 2000
	DefaultIntervalMs = 1000
	DefaultLogLevel   = "info"
)

// Normalize applies post-validation defaulting.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	src := &cfg.Session.Source
	if src.Host == "" {
		src.Host = DefaultHost
	}
	if src.Port == 0 {
		src.Port = DefaultPort
	}
	if src.TimeoutMs == 0 {
		src.TimeoutMs = DefaultTimeoutMs
	}

	if cfg.Session.Poll.IntervalMs == 0 {
		cfg.Session.Poll.IntervalMs = DefaultIntervalMs
	}

	if cfg.Session.Logging.Level == "" {
		cfg.Session.Logging.Level = DefaultLogLevel
	}
}
