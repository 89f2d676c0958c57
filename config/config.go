// Copyright (c) 2025 A Bit of Help, Inc.

package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// RunnerConfig is the configuration for the phone number CLI/batch-parse
// exerciser: where its metadata document lives, which region a bare
// (non-"+") input falls back to, and which regions to pre-warm the shared
// regex cache for at startup.
type RunnerConfig struct {
	MetadataPath  string   `koanf:"metadataPath"`
	DefaultRegion string   `koanf:"defaultRegion"`
	WarmRegions   []string `koanf:"warmRegions"`
	LogLevel      string   `koanf:"logLevel"`
	Development   bool     `koanf:"development"`
}

// defaults mirror the builtin metadata snapshot so the exerciser runs
// against something useful with no configuration file at all.
func defaults() RunnerConfig {
	return RunnerConfig{
		DefaultRegion: "US",
		WarmRegions:   []string{"US", "NZ", "GB", "DE", "IT", "AR"},
		LogLevel:      "info",
		Development:   true,
	}
}

// Load decodes a YAML configuration document into a RunnerConfig, seeded
// with defaults() so a document only needs to override what it cares
// about. It follows the same koanf.New(".") + rawbytes.Provider +
// yaml.Parser sequence metadata.LoadFromYAML uses — both are "decode bytes
// into a typed snapshot at startup" problems.
func Load(data []byte) (RunnerConfig, error) {
	cfg := defaults()

	if len(data) == 0 {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return RunnerConfig{}, fmt.Errorf("config: load yaml: %w", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, nil
}
