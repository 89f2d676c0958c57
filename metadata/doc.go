// Copyright (c) 2025 A Bit of Help, Inc.

// Package metadata defines the per-territory descriptors the parsing,
// validation, and formatting kernel is driven by, and an immutable,
// concurrency-safe store for looking them up by region code or country
// calling code.
//
// The wire format of the metadata source is an external concern (see
// config.RunnerConfig.MetadataPath); this package only deals with already-decoded
// TerritoryMetadata values.
package metadata
