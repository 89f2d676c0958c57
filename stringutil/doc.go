// Copyright (c) 2025 A Bit of Help, Inc.

// Package stringutil provides the small set of string-manipulation helpers
// the kernel's token-stripping and orchestration code actually needs.
//
// This package offers the handful of helper functions shared by the
// token stripper, matcher, parser orchestrator, batch-parse handler, and
// CLI exerciser — not a general
// grab-bag of string utilities.
//
// Key features:
//   - Multiple prefix checking (HasAnyPrefix), used for the '+'/fullwidth-'+'
//     checks in international-prefix stripping and lenient match parsing
//   - Whitespace detection and removal (IsEmpty, IsNotEmpty, RemoveWhitespace)
//
// Example usage:
//
//	// Multi-prefix check ('+' or its fullwidth form)
//	if stringutil.HasAnyPrefix(buf, "+", "＋") {
//	    // strip the leading plus sign
//	}
//
//	// Blank-input short circuit
//	if stringutil.IsEmpty(line) {
//	    continue
//	}
package stringutil
