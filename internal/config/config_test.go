// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Document.LoadDelay != 500*time.Millisecond {
		t.Errorf("Document.LoadDelay = %v, want 500ms", cfg.Document.LoadDelay)
	}
	if cfg.Audit.Store != "memory" {
		t.Errorf("Audit.Store = %q, want memory", cfg.Audit.Store)
	}
	if cfg.Chain.Order != "audit,access,lazy" {
		t.Errorf("Chain.Order = %q, want audit,access,lazy", cfg.Chain.Order)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
logging:
  level: debug
  format: json
document:
  load_delay: 10ms
chain:
  order: access,audit,lazy
`
	path := filepath.Join(t.TempDir(), "docgate.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Document.LoadDelay != 10*time.Millisecond {
		t.Errorf("Document.LoadDelay = %v, want 10ms", cfg.Document.LoadDelay)
	}
	if cfg.Chain.Order != "access,audit,lazy" {
		t.Errorf("Chain.Order = %q, want access,audit,lazy", cfg.Chain.Order)
	}
	// Untouched values keep their defaults.
	if cfg.Audit.MaxEvents != 10000 {
		t.Errorf("Audit.MaxEvents = %d, want default 10000", cfg.Audit.MaxEvents)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	content := "logging:\n  level: debug\n"
	path := filepath.Join(t.TempDir(), "docgate.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("DOCGATE_LOGGING_LEVEL", "error")
	t.Setenv("DOCGATE_AUDIT_MAX_EVENTS", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want env override error", cfg.Logging.Level)
	}
	if cfg.Audit.MaxEvents != 50 {
		t.Errorf("Audit.MaxEvents = %d, want env override 50", cfg.Audit.MaxEvents)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad audit store", func(c *Config) { c.Audit.Store = "duckdb" }},
		{"zero max events", func(c *Config) { c.Audit.MaxEvents = 0 }},
		{"negative delay", func(c *Config) { c.Document.LoadDelay = -time.Second }},
		{"badger without dir", func(c *Config) { c.Audit.Store = "badger"; c.Audit.DataDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"DOCGATE_LOGGING_LEVEL", "logging.level"},
		{"DOCGATE_CHAIN_ORDER", "chain.order"},
		{"DOCGATE_DOCUMENT_LOAD_DELAY", "document.load_delay"},
		{"DOCGATE_AUDIT_DATA_DIR", "audit.data_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransform(tt.input); got != tt.want {
				t.Errorf("envTransform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
