package config

import (
	"errors"
	"testing"
)

func TestParseCurrentSchema(t *testing.T) {
	doc, err := Parse([]byte(`
schema_version = 3
ssh_port = 2222
sshpass = true
domains = ["example.com", "example.net"]

[hosts]
web = "web01.example.com"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Version != 3 {
		t.Errorf("Version = %d, want 3", doc.Version)
	}
	if _, ok := doc.Settings[versionKey]; ok {
		t.Error("schema_version leaked into Settings")
	}

	if port, ok := doc.Settings["ssh_port"].AsInt(); !ok || port != 2222 {
		t.Errorf("ssh_port = %v, %v", port, ok)
	}
	if pass, ok := doc.Settings["sshpass"].AsBool(); !ok || !pass {
		t.Errorf("sshpass = %v, %v", pass, ok)
	}
	domains, ok := doc.Settings["domains"].AsList()
	if !ok || len(domains) != 2 {
		t.Fatalf("domains = %v, %v", domains, ok)
	}
	hosts, ok := doc.Settings["hosts"].AsTable()
	if !ok {
		t.Fatal("hosts is not a table")
	}
	if target, _ := hosts["web"].AsString(); target != "web01.example.com" {
		t.Errorf("hosts.web = %q", target)
	}
}

func TestParseMissingVersionIsOldestSchema(t *testing.T) {
	doc, err := Parse([]byte(`port = "2222"`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Version != OldestSchemaVersion {
		t.Errorf("Version = %d, want %d", doc.Version, OldestSchemaVersion)
	}
}

func TestParseUnrecognizableVersionIsOldestSchema(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
	}{
		{"string tag", `schema_version = "two"`},
		{"zero tag", `schema_version = 0`},
		{"negative tag", `schema_version = -1`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if doc.Version != OldestSchemaVersion {
				t.Errorf("Version = %d, want %d", doc.Version, OldestSchemaVersion)
			}
		})
	}
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte(`this is not = [valid`))
	if !errors.Is(err, ErrParse) {
		t.Errorf("Parse error = %v, want ErrParse", err)
	}
}

func TestParsePreservesUnknownKeys(t *testing.T) {
	doc, err := Parse([]byte(`
schema_version = 3
future_knob = "keep me"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if val, ok := doc.Settings["future_knob"].AsString(); !ok || val != "keep me" {
		t.Errorf("future_knob = %q, %v", val, ok)
	}
}
