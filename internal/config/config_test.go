package config

import (
	"reflect"
	"testing"
)

func TestDecodeRejectsWrongKinds(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  Value
	}{
		{"string port", "ssh_port", StringValue("22")},
		{"int jump host", "jump_host", IntValue(5)},
		{"string domains", "domains", StringValue("example.com")},
		{"int sshpass", "sshpass", IntValue(1)},
		{"list hosts", "hosts", StringListValue("web")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument(CurrentSchemaVersion)
			doc.Settings[tt.key] = tt.val
			if _, err := decode(doc); err == nil {
				t.Errorf("decode accepted %s as %s", tt.val.Kind(), tt.key)
			}
		})
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	doc := NewDocument(CurrentSchemaVersion)
	doc.Settings["future_knob"] = StringValue("keep me")
	if _, err := decode(doc); err != nil {
		t.Errorf("decode: %v", err)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := &Config{Domains: []string{" example.com. ", "example.net"}}
	cfg.normalize()

	defaults := Default()
	if cfg.SSHPort != defaults.SSHPort || cfg.TunnelPort != defaults.TunnelPort {
		t.Errorf("ports = %d/%d, want defaults", cfg.SSHPort, cfg.TunnelPort)
	}
	if !reflect.DeepEqual(cfg.SSHOptions, defaults.SSHOptions) {
		t.Errorf("SSHOptions = %v", cfg.SSHOptions)
	}
	if !reflect.DeepEqual(cfg.Domains, []string{"example.com", "example.net"}) {
		t.Errorf("Domains = %v, want trimmed", cfg.Domains)
	}
	if cfg.Hosts == nil {
		t.Error("Hosts = nil after normalize")
	}
}

func TestValidate(t *testing.T) {
	valid := Default()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"ssh port too high", func(c *Config) { c.SSHPort = 70000 }, true},
		{"tunnel port zero", func(c *Config) { c.TunnelPort = 0 }, true},
		{"empty domain entry", func(c *Config) { c.Domains = []string{""} }, true},
		{"option without equals", func(c *Config) { c.SSHOptions = []string{"Compression"} }, true},
		{"alias without target", func(c *Config) { c.Hosts = map[string]string{"web": " "} }, true},
		{"well formed", func(c *Config) {
			c.Domains = []string{"example.com"}
			c.Hosts = map[string]string{"web": "web01.example.com"}
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAliasNamesSorted(t *testing.T) {
	cfg := Config{Hosts: map[string]string{
		"web": "web01", "db": "db01", "app": "app01",
	}}
	got := cfg.AliasNames()
	want := []string{"app", "db", "web"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AliasNames = %v, want %v", got, want)
	}
}

func TestValidateDocument(t *testing.T) {
	doc := DefaultDocument()
	if err := ValidateDocument(doc); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}

	doc.Settings["ssh_options"] = StringListValue("NotKeyValue")
	if err := ValidateDocument(doc); err == nil {
		t.Error("malformed ssh option passed validation")
	}
}
