// internal/config/validate.go
package config

import "fmt"

// validLogLevels are the zerolog levels the daemon accepts.
var validLogLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {},
}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values are allowed where Normalize() supplies a default.
func Validate(cfg *Config) error {
	src := cfg.Session.Source

	if src.Port < 0 || src.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", src.Port)
	}

	if src.TimeoutMs < 0 {
		return fmt.Errorf("config: timeout_ms must be >= 0")
	}

	if cfg.Session.Poll.IntervalMs < 0 {
		return fmt.Errorf("config: interval_ms must be >= 0")
	}

	if lvl := cfg.Session.Logging.Level; lvl != "" {
		if _, ok := validLogLevels[lvl]; !ok {
			return fmt.Errorf("config: unknown log level %q", lvl)
		}
	}

	return nil
}
