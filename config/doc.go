// Copyright (c) 2025 A Bit of Help, Inc.

// Package config loads the kernel exerciser's own configuration — where to
// find a metadata document, which region to default to, and which regions
// to warm the regex cache for at startup — from a YAML document decoded
// with koanf, the same loading sequence metadata.LoadFromYAML uses for the
// metadata document itself.
//
// This is configuration for the CLI/batch-parse exerciser, never the
// metadata blob: the kernel packages (normalize, stripper, countrycode,
// validator, formatter, matcher) take a *metadata.Store by parameter and
// have no configuration of their own.
package config
