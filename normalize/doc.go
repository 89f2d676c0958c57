// Copyright (c) 2025 A Bit of Help, Inc.

// Package normalize provides the character-level canonicalization step of
// the phone number kernel: mapping wide and non-Latin digits to ASCII,
// mapping alphabetic keypad letters to digits, and the early-reject
// viability check that the parser runs before any metadata lookup.
//
// Every function here is pure: no I/O, no shared state, safe to call
// concurrently from any number of goroutines.
package normalize
