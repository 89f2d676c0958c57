// Copyright (c) 2025 A Bit of Help, Inc.

// Package pn defines the canonical PhoneNumber value and the enumerations
// the kernel's components share: format, type, validation result, and
// match type. It exists separately from the root phonenumber package so
// that validator, formatter, and matcher can depend on the value type
// without importing the orchestrator that depends on them.
package pn
