// Copyright (c) 2025 A Bit of Help, Inc.

// Package stripper implements the token-stripping stage of the phone
// number kernel: extension extraction, international-prefix/'+' stripping,
// and national-prefix stripping with metadata-driven transform rules.
//
// Each function operates on a working string and reports what it did via a
// return value rather than mutating shared state, so callers can thread the
// result through the rest of the parsing pipeline.
package stripper
