// Copyright (c) 2025 A Bit of Help, Inc.

// Package phonenumber parses, validates, formats, and compares phone
// numbers against an immutable, caller-supplied snapshot of territory
// metadata, in the manner of Google's libphonenumber.
//
// The package is a thin orchestrator over its sibling kernel packages —
// normalize, stripper, countrycode, validator, formatter, and matcher —
// each of which is a pure function over (input, metadata snapshot). Parse
// wires those stages together into the ten-step pipeline described in the
// package's design notes; every other exported function is a direct
// delegation to one kernel package plus, where needed, NANPA sub-region
// disambiguation.
package phonenumber
