// Docgate - Mediated Document Access Layer
// Copyright 2026 The Docgate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/docgate/docgate

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, first hit wins.
var DefaultConfigPaths = []string{
	"docgate.yaml",
	"docgate.yml",
	"/etc/docgate/config.yaml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "DOCGATE_CONFIG"

// envPrefix namespaces Docgate environment variables.
const envPrefix = "DOCGATE_"

// Load builds the configuration: struct defaults, then the first config
// file found (or the one named by DOCGATE_CONFIG), then DOCGATE_* env vars.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// DOCGATE_LOGGING_LEVEL becomes logging.level.
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKeyOverrides maps variables whose key names contain underscores,
// which the generic transform would split incorrectly.
var envKeyOverrides = map[string]string{
	"DOCGATE_DOCUMENT_LOAD_DELAY": "document.load_delay",
	"DOCGATE_DOCUMENT_DATA_DIR":   "document.data_dir",
	"DOCGATE_AUDIT_MAX_EVENTS":    "audit.max_events",
	"DOCGATE_AUDIT_DATA_DIR":      "audit.data_dir",
}

// envTransform maps an environment variable name to a koanf path.
func envTransform(s string) string {
	if path, ok := envKeyOverrides[s]; ok {
		return path
	}
	s = strings.TrimPrefix(s, envPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "_", ".")
}

// findConfigFile returns the config file path to load, or empty.
func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	for _, path := range DefaultConfigPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
