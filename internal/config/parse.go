package config

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ErrParse indicates a file that exists but is not valid TOML. The resolver
// treats this as fatal: a broken file must be fixed or removed, never
// silently replaced with defaults.
var ErrParse = errors.New("config file is not valid TOML")

const (
	// versionKey is the distinguished schema version field.
	versionKey = "schema_version"

	// OldestSchemaVersion is assumed for files with no recognizable
	// version tag: every config predating the tag is schema 1.
	OldestSchemaVersion = 1

	// CurrentSchemaVersion is the schema this build reads and writes.
	CurrentSchemaVersion = 3
)

// Parse decodes raw config file contents into a Document. A missing or
// unrecognizable schema_version is not an error; the file is treated as the
// oldest known schema and left to the migrator. All keys are preserved,
// including ones this build does not know about.
func Parse(data []byte) (*Document, error) {
	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	doc := NewDocument(OldestSchemaVersion)
	if tag, ok := raw[versionKey]; ok {
		if version, ok := tag.(int64); ok && version > 0 {
			doc.Version = int(version)
		}
		delete(raw, versionKey)
	}

	for key, item := range raw {
		val, err := valueFromAny(item)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrParse, key, err)
		}
		doc.Settings[key] = val
	}
	return doc, nil
}
