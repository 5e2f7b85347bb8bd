package main

import (
	"reflect"
	"testing"

	"github.com/malathair/ssm/internal/config"
)

func TestApplySetting(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, doc *config.Document)
	}{
		{
			name: "ssh port", key: "ssh_port", value: "2222",
			check: func(t *testing.T, doc *config.Document) {
				if port, ok := doc.Settings["ssh_port"].AsInt(); !ok || port != 2222 {
					t.Errorf("ssh_port = %v, %v", port, ok)
				}
			},
		},
		{name: "ssh port not a number", key: "ssh_port", value: "abc", wantErr: true},
		{
			name: "sshpass", key: "sshpass", value: "true",
			check: func(t *testing.T, doc *config.Document) {
				if pass, ok := doc.Settings["sshpass"].AsBool(); !ok || !pass {
					t.Errorf("sshpass = %v, %v", pass, ok)
				}
			},
		},
		{name: "sshpass not a bool", key: "sshpass", value: "maybe", wantErr: true},
		{
			name: "jump host", key: "jump_host", value: "bastion",
			check: func(t *testing.T, doc *config.Document) {
				if jump, ok := doc.Settings["jump_host"].AsString(); !ok || jump != "bastion" {
					t.Errorf("jump_host = %v, %v", jump, ok)
				}
			},
		},
		{
			name: "domains split on commas and spaces", key: "domains", value: "example.com, example.net",
			check: func(t *testing.T, doc *config.Document) {
				want := config.StringListValue("example.com", "example.net")
				if !doc.Settings["domains"].Equal(want) {
					t.Errorf("domains = %v", doc.Settings["domains"])
				}
			},
		},
		{
			name: "host alias", key: "hosts.web", value: "web01.example.com",
			check: func(t *testing.T, doc *config.Document) {
				hosts, ok := doc.Settings["hosts"].AsTable()
				if !ok {
					t.Fatal("hosts is not a table")
				}
				if target, _ := hosts["web"].AsString(); target != "web01.example.com" {
					t.Errorf("hosts.web = %q", target)
				}
			},
		},
		{name: "unknown key", key: "no_such_setting", value: "x", wantErr: true},
		{name: "empty alias name", key: "hosts.", value: "x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := config.NewDocument(config.CurrentSchemaVersion)
			err := applySetting(doc, tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applySetting(%q, %q) = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, doc)
			}
		})
	}
}

func TestApplySettingMergesAliases(t *testing.T) {
	doc := config.NewDocument(config.CurrentSchemaVersion)
	doc.Settings["hosts"] = config.TableValue(map[string]config.Value{
		"db": config.StringValue("db01.example.com"),
	})

	if err := applySetting(doc, "hosts.web", "web01.example.com"); err != nil {
		t.Fatalf("applySetting: %v", err)
	}
	hosts, _ := doc.Settings["hosts"].AsTable()
	if len(hosts) != 2 {
		t.Errorf("hosts = %v, want both aliases", hosts)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a b c", []string{"a", "b", "c"}},
		{"a, b,c", []string{"a", "b", "c"}},
		{"  a \t b  ", []string{"a", "b"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := splitList(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"1", "22", "65535", " 8080 "} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"0", "65536", "-1", "abc", ""} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) accepted", bad)
		}
	}
}
