// Copyright (c) 2025 A Bit of Help, Inc.

package regexcache

import (
	"regexp"
	"sync"
)

// Cache is a read-mostly map of pattern string to compiled *regexp.Regexp,
// guarded by a single RWMutex. Regex compilation is idempotent, so a race
// between two goroutines compiling the same pattern for the first time is
// tolerated: both compile, one write wins, both callers get an equivalent
// *regexp.Regexp back.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*regexp.Regexp
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{items: make(map[string]*regexp.Regexp)}
}

// global is the package-level cache used by the Compile/MustCompile
// convenience functions, mirroring how the kernel's parser/formatter/matcher
// packages share one immutable metadata.Store.
var global = New()

// Compile returns the cached compiled regexp for pattern, compiling and
// storing it on first use.
func (c *Cache) Compile(pattern string) (*regexp.Regexp, error) {
	c.mu.RLock()
	re, ok := c.items[pattern]
	c.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items[pattern] = re
	c.mu.Unlock()

	return re, nil
}

// MustCompile is like Compile but panics on an invalid pattern. Metadata
// patterns are validated at metadata-authoring time, so a panic here
// indicates a corrupt metadata source, not a runtime input error.
func (c *Cache) MustCompile(pattern string) *regexp.Regexp {
	re, err := c.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Len reports the number of distinct patterns currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// CompileFull is like Compile, but wraps pattern as `\A(?:pattern)\z` before
// compiling (and caches it under that wrapped form) so the result only ever
// reports a match when pattern accounts for the entire input. Go's regexp
// package is leftmost-first, not leftmost-longest: without anchoring, a
// pattern with a top-level alternation whose earlier branch matches a
// proper prefix of the input (e.g. "a|ab" against "ab") could be found by
// FindStringIndex/FindStringSubmatchIndex at a position that doesn't span
// the whole string, silently turning a full-match check into a partial
// one. Metadata national-number and possible-number patterns are contracted
// to be full-match descriptors, so callers that need that guarantee should
// compile through CompileFull/MustCompileFull rather than Compile/MustCompile
// plus a manual span check.
func (c *Cache) CompileFull(pattern string) (*regexp.Regexp, error) {
	return c.Compile(`\A(?:` + pattern + `)\z`)
}

// MustCompileFull is like CompileFull but panics on an invalid pattern; see
// Cache.MustCompile.
func (c *Cache) MustCompileFull(pattern string) *regexp.Regexp {
	re, err := c.CompileFull(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Compile returns the package-level cache's compiled regexp for pattern.
func Compile(pattern string) (*regexp.Regexp, error) {
	return global.Compile(pattern)
}

// MustCompile panics on an invalid pattern; see Cache.MustCompile.
func MustCompile(pattern string) *regexp.Regexp {
	return global.MustCompile(pattern)
}

// CompileFull returns the package-level cache's anchored compiled regexp
// for pattern; see Cache.CompileFull.
func CompileFull(pattern string) (*regexp.Regexp, error) {
	return global.CompileFull(pattern)
}

// MustCompileFull panics on an invalid pattern; see Cache.CompileFull.
func MustCompileFull(pattern string) *regexp.Regexp {
	return global.MustCompileFull(pattern)
}
