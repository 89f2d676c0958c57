// Copyright (c) 2025 A Bit of Help, Inc.

// Package formatter renders a PhoneNumber in NATIONAL, INTERNATIONAL, E164,
// or RFC3966 style by selecting a NumberFormat rule from the resolved
// region's metadata (leading-digits pattern, then full pattern) and
// applying its "$1 $2 $3"-style template, followed by the region's
// national-prefix formatting rule when rendering NATIONAL.
package formatter
