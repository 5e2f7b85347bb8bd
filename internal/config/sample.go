package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed sample_config.toml
var sampleConfig string

// CreateSample writes the annotated sample configuration to path. It
// refuses to clobber an existing file; `config init` is for first-time
// setup, edits go through the editor or set/unset.
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), defaultFileMode); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
