// Copyright (c) 2025 A Bit of Help, Inc.

// Package context attaches request/trace/correlation IDs to a
// context.Context for the phone number CLI/batch-parse exerciser. The
// kernel packages take no context of their own (spec §5: pure functions,
// no blocking, no cancellation model); this package exists purely for the
// layer that drives the kernel and wants to correlate a batch of parses
// in its logs.
package context
