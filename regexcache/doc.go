// Copyright (c) 2025 A Bit of Help, Inc.

// Package regexcache provides a concurrency-safe cache of compiled regular
// expressions, keyed by pattern string.
//
// Metadata patterns are compiled lazily the first time a parse/format/match
// call needs them and then reused for the lifetime of the process (spec
// §5: "Regex objects compiled from metadata patterns must be cached ...
// and the cache must be safe for concurrent readers and writers"). This
// package adapts the teacher's generic cache (cache/cache.go)'s
// read-mostly-map-guarded-by-a-lock shape, dropping the TTL/expiration
// machinery that package carries: a compiled regexp never goes stale, so
// there is nothing to expire.
package regexcache
