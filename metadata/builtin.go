// Copyright (c) 2025 A Bit of Help, Inc.

package metadata

import (
	_ "embed"
	"sync"
)

//go:embed testdata.yaml
var builtinYAML []byte

var (
	builtinOnce  sync.Once
	builtinStore *Store
	builtinErr   error
)

// Builtin returns a small, hand-maintained snapshot covering the regions
// this module's own tests and the CLI exerciser exercise (US, NZ, GB, DE,
// IT, AR). It exists because the real metadata source — the binary blob
// described in spec §1 — is an external collaborator this module does not
// own; callers with access to that collaborator should build their Store
// with LoadFromYAML (or NewStore directly) instead.
func Builtin() (*Store, error) {
	builtinOnce.Do(func() {
		builtinStore, builtinErr = LoadFromYAML(builtinYAML)
	})
	return builtinStore, builtinErr
}
