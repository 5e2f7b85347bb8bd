package config

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound indicates that none of the candidate paths holds a readable
// config file. Callers fall back to the compiled-in defaults.
var ErrNotFound = errors.New("no config file found")

// SystemConfigPath is the system-wide config location, checked first.
const SystemConfigPath = "/etc/ssm/config.toml"

// UserConfigPath returns the per-user config location, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func UserConfigPath() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "ssm", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("~", ".config", "ssm", "config.toml")
	}
	return filepath.Join(home, ".config", "ssm", "config.toml")
}

// CandidatePaths returns the config file locations in priority order:
// system-wide first, then per-user. The first existing readable file wins.
func CandidatePaths() []string {
	return []string{SystemConfigPath, UserConfigPath()}
}

// Locate returns the first candidate path that exists and is readable, or
// ErrNotFound. It only checks accessibility; content validation is the
// parser's job. A path that exists but cannot be opened for reading is
// skipped rather than treated as an error, so an unreadable system-wide
// file does not shadow a usable per-user one.
func Locate(paths []string) (string, error) {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		file, err := os.Open(path)
		if err != nil {
			continue
		}
		file.Close()
		return path, nil
	}
	return "", ErrNotFound
}
