package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	doc := NewDocument(CurrentSchemaVersion)
	doc.Settings["ssh_port"] = IntValue(2222)
	doc.Settings["sshpass"] = BoolValue(true)
	doc.Settings["domains"] = StringListValue("example.com", "example.net")
	doc.Settings["hosts"] = TableValue(map[string]Value{
		"web": StringValue("web01.example.com"),
	})

	if err := WriteDocument(path, doc); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "schema_version = 3\n") {
		t.Errorf("schema_version is not the first line:\n%s", data)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !doc.Equal(parsed) {
		t.Errorf("round trip changed the document:\nwrote %+v\nread %+v", doc, parsed)
	}
}

func TestWriteDocumentPreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	doc, err := Parse([]byte("schema_version = 3\nfuture_knob = \"keep me\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := WriteDocument(path, doc); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := Parse(data)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if val, ok := reparsed.Settings["future_knob"].AsString(); !ok || val != "keep me" {
		t.Errorf("future_knob = %q, %v", val, ok)
	}
}

func TestWriteDocumentLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := WriteDocument(path, DefaultDocument()); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp.") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestWriteDocumentPreservesFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("schema_version = 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := WriteDocument(path, DefaultDocument()); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mode = %o, want 600", perm)
	}
}

func TestWriteDocumentCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ssm", "config.toml")
	if err := WriteDocument(path, DefaultDocument()); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file missing after write: %v", err)
	}
}

func TestCreateSampleRefusesToClobber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("sample does not parse: %v", err)
	}
	if doc.Version != CurrentSchemaVersion {
		t.Errorf("sample schema = %d, want %d", doc.Version, CurrentSchemaVersion)
	}

	if err := CreateSample(path); err == nil {
		t.Error("CreateSample overwrote an existing file")
	}
}
