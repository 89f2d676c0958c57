// Copyright (c) 2025 A Bit of Help, Inc.

// Package countrycode implements the country-code inference stage of the
// phone number kernel: given a (possibly prefixed) number and a default
// region's metadata, it decides which country calling code the number
// belongs to and what remains of the national significant number.
package countrycode
