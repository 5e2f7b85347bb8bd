package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLocatePrefersFirstCandidate(t *testing.T) {
	dir := t.TempDir()
	system := writeTempConfig(t, dir, "system.toml", "schema_version = 3\n")
	user := writeTempConfig(t, dir, "user.toml", "schema_version = 3\n")

	path, err := Locate([]string{system, user})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if path != system {
		t.Errorf("Locate = %q, want %q", path, system)
	}
}

func TestLocateFallsThroughToLaterCandidate(t *testing.T) {
	dir := t.TempDir()
	user := writeTempConfig(t, dir, "user.toml", "schema_version = 3\n")

	path, err := Locate([]string{filepath.Join(dir, "missing.toml"), user})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if path != user {
		t.Errorf("Locate = %q, want %q", path, user)
	}
}

func TestLocateNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := Locate([]string{filepath.Join(dir, "a.toml"), filepath.Join(dir, "b.toml")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Locate error = %v, want ErrNotFound", err)
	}
}

func TestLocateSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	asDir := filepath.Join(dir, "config.toml")
	if err := os.Mkdir(asDir, 0o755); err != nil {
		t.Fatal(err)
	}
	user := writeTempConfig(t, dir, "user.toml", "schema_version = 3\n")

	path, err := Locate([]string{asDir, user})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if path != user {
		t.Errorf("Locate = %q, want %q", path, user)
	}
}

func TestLocateSkipsUnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores file modes")
	}
	dir := t.TempDir()
	locked := writeTempConfig(t, dir, "locked.toml", "schema_version = 3\n")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	user := writeTempConfig(t, dir, "user.toml", "schema_version = 3\n")

	path, err := Locate([]string{locked, user})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if path != user {
		t.Errorf("Locate = %q, want %q", path, user)
	}
}

func TestUserConfigPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "ssm", "config.toml")
	if got := UserConfigPath(); got != want {
		t.Errorf("UserConfigPath = %q, want %q", got, want)
	}
}
