// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeTempConfig(t, `
session:
  source:
    host: 192.168.1.10
    port: 8112
    timeout_ms: 500
  poll:
    interval_ms: 250
  logs:
    comments: true
    events: true
  logging:
    level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}

	if cfg.Session.Source.Host != "192.168.1.10" {
		t.Fatalf("host=%q", cfg.Session.Source.Host)
	}
	if cfg.Session.Source.Port != 8112 {
		t.Fatalf("port=%d", cfg.Session.Source.Port)
	}
	if cfg.Session.Poll.IntervalMs != 250 {
		t.Fatalf("interval_ms=%d", cfg.Session.Poll.IntervalMs)
	}
	if !cfg.Session.Logs.Comments || !cfg.Session.Logs.Events {
		t.Fatal("log fetch toggles not read")
	}
	if cfg.Session.Logging.Level != "debug" {
		t.Fatalf("level=%q", cfg.Session.Logging.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, `
session:
  source:
    host: 192.168.1.10
    port: 8112
`)

	t.Setenv("WT_HOST", "10.0.0.5")
	t.Setenv("WT_PORT", "9000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}

	if cfg.Session.Source.Host != "10.0.0.5" {
		t.Fatalf("host=%q, env must win", cfg.Session.Source.Host)
	}
	if cfg.Session.Source.Port != 9000 {
		t.Fatalf("port=%d, env must win", cfg.Session.Source.Port)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}
	if cfg.Session.Source.Host != "" {
		t.Fatalf("expected zero config, host=%q", cfg.Session.Source.Host)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// ---- validate ----

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg); err != nil {
		t.Fatalf("zero config must validate: %v", err)
	}
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{}
	cfg.Session.Source.Port = 70000
	if err := Validate(cfg); err == nil {
		t.Fatal("expected port range error")
	}

	cfg.Session.Source.Port = -1
	if err := Validate(cfg); err == nil {
		t.Fatal("expected port range error")
	}
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := &Config{}
	cfg.Session.Logging.Level = "verbose"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected log level error")
	}

	cfg.Session.Logging.Level = "warn"
	if err := Validate(cfg); err != nil {
		t.Fatalf("warn must validate: %v", err)
	}
}

func TestValidate_NegativeDurations(t *testing.T) {
	cfg := &Config{}
	cfg.Session.Source.TimeoutMs = -1
	if err := Validate(cfg); err == nil {
		t.Fatal("expected timeout error")
	}

	cfg = &Config{}
	cfg.Session.Poll.IntervalMs = -1
	if err := Validate(cfg); err == nil {
		t.Fatal("expected interval error")
	}
}

// ---- normalize ----

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{}
	Normalize(cfg)

	if cfg.Session.Source.Host != DefaultHost {
		t.Fatalf("host=%q", cfg.Session.Source.Host)
	}
	if cfg.Session.Source.Port != DefaultPort {
		t.Fatalf("port=%d", cfg.Session.Source.Port)
	}
	if cfg.Session.Source.TimeoutMs != DefaultTimeoutMs {
		t.Fatalf("timeout_ms=%d", cfg.Session.Source.TimeoutMs)
	}
	if cfg.Session.Poll.IntervalMs != DefaultIntervalMs {
		t.Fatalf("interval_ms=%d", cfg.Session.Poll.IntervalMs)
	}
	if cfg.Session.Logging.Level != DefaultLogLevel {
		t.Fatalf("level=%q", cfg.Session.Logging.Level)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Session.Source.Host = "10.1.1.1"
	cfg.Session.Poll.IntervalMs = 50

	Normalize(cfg)

	if cfg.Session.Source.Host != "10.1.1.1" {
		t.Fatalf("host=%q", cfg.Session.Source.Host)
	}
	if cfg.Session.Poll.IntervalMs != 50 {
		t.Fatalf("interval_ms=%d", cfg.Session.Poll.IntervalMs)
	}
}
