package config

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

const defaultFileMode fs.FileMode = 0o644

// WriteDocument persists a document to path atomically: content goes to a
// temp file in the same directory and replaces the target via rename, so a
// second invocation running concurrently never observes a half-written
// file. An advisory lock serializes writers. The existing file's mode is
// preserved when there is one.
func WriteDocument(path string, doc *Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock config file: %w", err)
	}
	defer lock.Unlock()

	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tempPath := path + ".tmp." + randomSuffix()
	file, err := os.OpenFile(tempPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace config file: %w", err)
	}
	return nil
}

// encodeDocument renders a document as TOML with the schema version pinned
// to the first line, where a human editing the file will see it.
func encodeDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s = %d\n\n", versionKey, doc.Version)

	settings := make(map[string]any, len(doc.Settings))
	for key, val := range doc.Settings {
		settings[key] = val.toAny()
	}
	body, err := toml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	buf.Write(body)
	return buf.Bytes(), nil
}

func randomSuffix() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", os.Getpid())
	}
	return fmt.Sprintf("%x", b)
}
