// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

// Package config loads Docgate configuration with koanf: struct defaults
// first, then an optional YAML file, then DOCGATE_* environment variables.
//
// Only ambient knobs live here (logging, load simulation, audit store,
// chain ordering preset). Role, actor and document identity are explicit
// construction arguments in the driver, not configuration.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration.
type Config struct {
	Logging  LoggingConfig  `koanf:"logging"`
	Document DocumentConfig `koanf:"document"`
	Audit    AuditConfig    `koanf:"audit"`
	Chain    ChainConfig    `koanf:"chain"`
}

// LoggingConfig controls the global zerolog logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// DocumentConfig controls the terminal document loader.
type DocumentConfig struct {
	// LoadDelay is the simulated cost of constructing a document.
	LoadDelay time.Duration `koanf:"load_delay" validate:"gte=0"`

	// DataDir is the BadgerDB content store directory. Empty selects the
	// in-process static loader instead.
	DataDir string `koanf:"data_dir"`
}

// AuditConfig controls where audit events are kept.
type AuditConfig struct {
	// Store selects the audit sink: memory or badger.
	Store string `koanf:"store" validate:"oneof=memory badger"`

	// MaxEvents bounds the memory store.
	MaxEvents int `koanf:"max_events" validate:"gt=0"`

	// DataDir is the BadgerDB directory for the badger store.
	DataDir string `koanf:"data_dir"`
}

// ChainConfig presets the mediator stacking used by the driver.
type ChainConfig struct {
	// Order lists layers outermost first, comma separated.
	Order string `koanf:"order"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Document: DocumentConfig{
			LoadDelay: 500 * time.Millisecond,
			DataDir:   "",
		},
		Audit: AuditConfig{
			Store:     "memory",
			MaxEvents: 10000,
			DataDir:   "/data/docgate/audit",
		},
		Chain: ChainConfig{
			Order: "audit,access,lazy",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Audit.Store == "badger" && c.Audit.DataDir == "" {
		return fmt.Errorf("invalid configuration: audit.data_dir is required for the badger store")
	}
	return nil
}
