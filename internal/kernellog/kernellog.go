// Copyright (c) 2025 A Bit of Help, Inc.

// Package kernellog is the thin zap wrapper the metadata loader and the
// phonenumber-cli exerciser use to log structurally at init and on load
// failures. It follows logging.NewLogger's level-parsing and dev/prod
// encoder setup; the kernel packages (normalize, stripper, countrycode,
// validator, formatter, matcher) import neither this package nor logging,
// staying pure functions per spec §5.
package kernellog

import (
	"github.com/abitofhelp/phonenumber/logging"
	"go.uber.org/zap"
)

// New builds a *zap.Logger configured for the exerciser, named "phonenumber"
// so its log lines are distinguishable from a host application's own.
func New(level string, development bool) (*zap.Logger, error) {
	base, err := logging.NewLogger(level, development)
	if err != nil {
		return nil, err
	}
	return base.Named("phonenumber"), nil
}

// MetadataLoaded logs how many regions a Store was built from.
func MetadataLoaded(logger *zap.Logger, regionCount int, source string) {
	logger.Info("metadata loaded",
		zap.Int("region_count", regionCount),
		zap.String("source", source))
}

// MetadataLoadFailed logs a metadata load failure.
func MetadataLoadFailed(logger *zap.Logger, source string, err error) {
	logger.Error("metadata load failed",
		zap.String("source", source),
		zap.Error(err))
}

// CacheWarmed logs how many regex patterns were pre-compiled at startup.
func CacheWarmed(logger *zap.Logger, regions []string, patternCount int) {
	logger.Info("regex cache warmed",
		zap.Strings("regions", regions),
		zap.Int("pattern_count", patternCount))
}
