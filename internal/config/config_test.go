package config

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
)

var availableOps = []string{"nat.add", "int.div", "poly.gcd"}

func TestParseConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("digitcalc", []string{"nat.add", "1", "2"}, io.Discard, availableOps)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Timeout != DefaultTimeout {
			t.Errorf("Expected default Timeout %v, got %v", DefaultTimeout, cfg.Timeout)
		}
		if cfg.Concurrency != DefaultConcurrency || cfg.MaxDigits != DefaultMaxDigits {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
		if cfg.Port != DefaultPort || cfg.LogLevel != DefaultLogLevel {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("PositionalOperation", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("digitcalc", []string{"-json", "INT.DIV", "-7", "2"}, io.Discard, availableOps)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Op != "int.div" {
			t.Errorf("Expected Op 'int.div', got %q", cfg.Op)
		}
		if len(cfg.Args) != 2 || cfg.Args[0] != "-7" || cfg.Args[1] != "2" {
			t.Errorf("Expected negative operand kept as positional, got %v", cfg.Args)
		}
		if !cfg.JSONOutput {
			t.Error("Expected JSONOutput true")
		}
	})

	t.Run("ValidFlags", func(t *testing.T) {
		t.Parallel()
		args := []string{
			"-timeout", "10s",
			"-server",
			"-port", "9090",
			"-concurrency", "8",
			"-max-digits", "0",
			"-log-level", "debug",
			"-q",
			"-o", "result.txt",
		}
		cfg, err := ParseConfig("digitcalc", args, io.Discard, availableOps)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Timeout != 10*time.Second {
			t.Errorf("Expected Timeout 10s, got %v", cfg.Timeout)
		}
		if !cfg.ServerMode || cfg.Port != "9090" {
			t.Errorf("Expected server on 9090, got %v %s", cfg.ServerMode, cfg.Port)
		}
		if cfg.Concurrency != 8 || cfg.MaxDigits != 0 || cfg.LogLevel != "debug" {
			t.Errorf("unexpected values: %+v", cfg)
		}
		if !cfg.Quiet || cfg.OutputFile != "result.txt" {
			t.Errorf("shorthand flags not applied: %+v", cfg)
		}
	})

	t.Run("ModesWithoutOperation", func(t *testing.T) {
		t.Parallel()
		for _, args := range [][]string{
			{"-server"},
			{"-interactive"},
			{"-i"},
			{"-batch", "jobs.toml"},
			{"-completion", "zsh"},
			{"-list"},
		} {
			if _, err := ParseConfig("digitcalc", args, io.Discard, availableOps); err != nil {
				t.Errorf("ParseConfig(%v) unexpected error: %v", args, err)
			}
		}
	})

	t.Run("InvalidFlag", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseConfig("digitcalc", []string{"-unknown"}, io.Discard, availableOps); err == nil {
			t.Error("Expected error for unknown flag")
		}
	})

	t.Run("ValidationPrintsUsage", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		_, err := ParseConfig("digitcalc", []string{"nat.pow", "2"}, &buf, availableOps)
		if err == nil {
			t.Fatal("Expected error for unknown operation")
		}
		out := buf.String()
		if !strings.Contains(out, "unrecognized operation: 'nat.pow'") {
			t.Errorf("missing validation message in %q", out)
		}
		if !strings.Contains(out, "Usage:") || !strings.Contains(out, "-max-digits") {
			t.Errorf("usage not printed: %q", out)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()
	base := AppConfig{
		Op:          "nat.add",
		Timeout:     time.Second,
		Concurrency: 1,
		Port:        DefaultPort,
		LogLevel:    "info",
	}
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"valid", func(*AppConfig) {}, ""},
		{"zero timeout", func(c *AppConfig) { c.Timeout = 0 }, "timeout"},
		{"zero concurrency", func(c *AppConfig) { c.Concurrency = 0 }, "concurrency"},
		{"negative max digits", func(c *AppConfig) { c.MaxDigits = -1 }, "max digits"},
		{"bad log level", func(c *AppConfig) { c.LogLevel = "loud" }, "log level"},
		{"bad shell", func(c *AppConfig) { c.Completion = "powershell" }, "unsupported shell"},
		{"server without port", func(c *AppConfig) { c.ServerMode = true; c.Port = "" }, "port"},
		{"missing operation", func(c *AppConfig) { c.Op = "" }, "no operation"},
		{"unknown operation", func(c *AppConfig) { c.Op = "nat.pow" }, "unrecognized operation"},
		{"batch ignores operation", func(c *AppConfig) { c.Op = ""; c.BatchFile = "jobs.txt" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate(availableOps)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		"DIGITCALC_TIMEOUT":     "2m",
		"DIGITCALC_PORT":        "3000",
		"DIGITCALC_CONCURRENCY": "16",
		"DIGITCALC_MAX_DIGITS":  "50",
		"DIGITCALC_LOG_LEVEL":   "warn",
		"DIGITCALC_OUTPUT":      "out.txt",
		"DIGITCALC_SERVER":      "true",
		"DIGITCALC_JSON":        "yes",
		"DIGITCALC_QUIET":       "1",
		"DIGITCALC_NO_COLOR":    "true",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := ParseConfig("digitcalc", []string{}, io.Discard, availableOps)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Timeout != 2*time.Minute || cfg.Port != "3000" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Concurrency != 16 || cfg.MaxDigits != 50 || cfg.LogLevel != "warn" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if !cfg.ServerMode || !cfg.JSONOutput || !cfg.Quiet || !cfg.NoColor || cfg.OutputFile != "out.txt" {
		t.Errorf("env booleans not applied: %+v", cfg)
	}

	// Flags win over the environment.
	cfg, err = ParseConfig("digitcalc", []string{"-port", "4000", "-concurrency", "2"}, io.Discard, availableOps)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Port != "4000" || cfg.Concurrency != 2 {
		t.Errorf("flags should take precedence: %+v", cfg)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv(EnvPrefix+"TEST", "")

	if val := getEnvString("TEST", "default"); val != "default" {
		t.Errorf("expected default, got %s", val)
	}
	t.Setenv(EnvPrefix+"TEST", "custom")
	if val := getEnvString("TEST", "default"); val != "custom" {
		t.Errorf("expected custom, got %s", val)
	}

	t.Setenv(EnvPrefix+"TEST", "75")
	if val := getEnvInt("TEST", 50); val != 75 {
		t.Errorf("expected 75, got %d", val)
	}
	t.Setenv(EnvPrefix+"TEST", "invalid")
	if val := getEnvInt("TEST", 50); val != 50 {
		t.Errorf("expected default 50 for invalid, got %d", val)
	}

	t.Setenv(EnvPrefix+"TEST", "NO")
	if val := getEnvBool("TEST", true); val {
		t.Error("expected false for NO")
	}
	t.Setenv(EnvPrefix+"TEST", "maybe")
	if val := getEnvBool("TEST", true); !val {
		t.Error("expected default for unrecognized value")
	}

	t.Setenv(EnvPrefix+"TEST", "1h30m")
	if val := getEnvDuration("TEST", time.Second); val != 90*time.Minute {
		t.Errorf("expected 1h30m, got %v", val)
	}
}
