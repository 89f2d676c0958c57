// Copyright (c) 2025 A Bit of Help, Inc.

package metadata

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// document is the on-disk shape a metadata source decodes into: a flat list
// of territories under a single top-level key. The binary/wire format of
// the real metadata source is an external concern (spec §1); this loader
// only has to agree with whatever collaborator hands it bytes in this shape.
type document struct {
	Territories []TerritoryMetadata `koanf:"territories"`
}

// LoadFromYAML decodes a YAML metadata document into an immutable Store.
// It follows the same koanf.New(".") + rawbytes.Provider + yaml.Parser
// loading sequence the teacher's telemetry configuration uses, because the
// metadata source and application configuration are both "decode bytes into
// a typed snapshot at startup" problems.
func LoadFromYAML(data []byte) (*Store, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("metadata: load yaml: %w", err)
	}

	var doc document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("metadata: unmarshal territories: %w", err)
	}

	if len(doc.Territories) == 0 {
		return nil, fmt.Errorf("metadata: document contains no territories")
	}

	return NewStore(doc.Territories), nil
}
