// Copyright (c) 2025 A Bit of Help, Inc.

// Package validator applies metadata-driven length and pattern checks to a
// parsed PhoneNumber: possible-length validation, full validity, and
// number-type classification. Every function here is total — none of them
// error; they return an enum value describing the outcome.
package validator
