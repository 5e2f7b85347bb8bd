package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Config is the typed Effective Configuration handed to the rest of the
// program once resolution is done. It exists only in memory for the life of
// one invocation; the on-disk artifact stays a Document.
type Config struct {
	// SSHPort is the default port for SSH sessions.
	SSHPort int
	// TunnelPort is the local port for -t SOCKS5 dynamic forwarding.
	TunnelPort int
	// JumpHost is the host used by the -j flag. Subject to the same domain
	// completion as connection targets.
	JumpHost string
	// Domains are tried in order as suffixes when completing bare host
	// names into FQDNs.
	Domains []string
	// Sshpass enables wrapping the ssh invocation in "sshpass -e".
	Sshpass bool
	// SSHOptions are passed through as repeated -o flags.
	SSHOptions []string
	// Hosts maps short aliases to connect targets, consulted before DNS.
	Hosts map[string]string
}

// decode pattern-matches a current-schema document into the typed config.
// Keys the schema does not define are ignored here; they stay in the
// document and survive write-back.
func decode(doc *Document) (*Config, error) {
	if doc.Version != CurrentSchemaVersion {
		return nil, fmt.Errorf("cannot decode schema %d document (want %d)", doc.Version, CurrentSchemaVersion)
	}

	cfg := &Config{}
	for key, val := range doc.Settings {
		var err error
		switch key {
		case "ssh_port":
			cfg.SSHPort, err = intSetting(key, val)
		case "tunnel_port":
			cfg.TunnelPort, err = intSetting(key, val)
		case "jump_host":
			cfg.JumpHost, err = stringSetting(key, val)
		case "sshpass":
			cfg.Sshpass, err = boolSetting(key, val)
		case "domains":
			cfg.Domains, err = stringListSetting(key, val)
		case "ssh_options":
			cfg.SSHOptions, err = stringListSetting(key, val)
		case "hosts":
			cfg.Hosts, err = hostTableSetting(key, val)
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// normalize fills absent settings from the defaults and tidies values, the
// same way every invocation sees an identical shape regardless of how
// sparse the file is.
func (c *Config) normalize() {
	defaults := Default()
	if c.SSHPort == 0 {
		c.SSHPort = defaults.SSHPort
	}
	if c.TunnelPort == 0 {
		c.TunnelPort = defaults.TunnelPort
	}
	c.JumpHost = strings.TrimSpace(c.JumpHost)
	if c.Domains == nil {
		c.Domains = []string{}
	}
	for i, domain := range c.Domains {
		c.Domains[i] = strings.Trim(strings.TrimSpace(domain), ".")
	}
	if c.SSHOptions == nil {
		c.SSHOptions = append([]string{}, defaults.SSHOptions...)
	}
	if c.Hosts == nil {
		c.Hosts = map[string]string{}
	}
}

// Validate ensures the configuration is usable before anything is exec'd.
func (c *Config) Validate() error {
	if c.SSHPort < 1 || c.SSHPort > 65535 {
		return fmt.Errorf("ssh_port %d is outside 1-65535", c.SSHPort)
	}
	if c.TunnelPort < 1 || c.TunnelPort > 65535 {
		return fmt.Errorf("tunnel_port %d is outside 1-65535", c.TunnelPort)
	}
	for _, domain := range c.Domains {
		if domain == "" {
			return errors.New("domains must not contain empty entries")
		}
	}
	for _, opt := range c.SSHOptions {
		if !strings.Contains(opt, "=") {
			return fmt.Errorf("ssh option %q is not in Key=Value form", opt)
		}
	}
	for alias, target := range c.Hosts {
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(target) == "" {
			return fmt.Errorf("host alias %q=%q must have both sides set", alias, target)
		}
	}
	return nil
}

// ValidateDocument checks that a current-schema document decodes into a
// usable configuration. The editor runs edits through this before letting
// them touch the disk.
func ValidateDocument(doc *Document) error {
	cfg, err := decode(doc)
	if err != nil {
		return err
	}
	cfg.normalize()
	return cfg.Validate()
}

// AliasNames returns the configured host aliases in sorted order.
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.Hosts))
	for name := range c.Hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func intSetting(key string, v Value) (int, error) {
	n, ok := v.AsInt()
	if !ok {
		return 0, fmt.Errorf("%s: expected integer, found %s", key, v.Kind())
	}
	return int(n), nil
}

func stringSetting(key string, v Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", fmt.Errorf("%s: expected string, found %s", key, v.Kind())
	}
	return s, nil
}

func boolSetting(key string, v Value) (bool, error) {
	b, ok := v.AsBool()
	if !ok {
		return false, fmt.Errorf("%s: expected boolean, found %s", key, v.Kind())
	}
	return b, nil
}

func stringListSetting(key string, v Value) ([]string, error) {
	list, ok := v.AsList()
	if !ok {
		return nil, fmt.Errorf("%s: expected list of strings, found %s", key, v.Kind())
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.AsString()
		if !ok {
			return nil, fmt.Errorf("%s: expected list of strings, found %s entry", key, item.Kind())
		}
		out = append(out, s)
	}
	return out, nil
}

func hostTableSetting(key string, v Value) (map[string]string, error) {
	table, ok := v.AsTable()
	if !ok {
		return nil, fmt.Errorf("%s: expected table of alias = \"fqdn\" entries, found %s", key, v.Kind())
	}
	out := make(map[string]string, len(table))
	for alias, item := range table {
		target, ok := item.AsString()
		if !ok {
			return nil, fmt.Errorf("%s.%s: expected string, found %s", key, alias, item.Kind())
		}
		out[alias] = target
	}
	return out, nil
}
