package config

const (
	defaultSSHPort    = 22
	defaultTunnelPort = 1080
)

// Default returns the compiled-in Effective Configuration used when no
// config file exists anywhere on the candidate paths. It is a plain value;
// callers get their own copy and there is no process-wide mutable state.
func Default() Config {
	return Config{
		SSHPort:    defaultSSHPort,
		TunnelPort: defaultTunnelPort,
		Domains:    []string{},
		SSHOptions: []string{"StrictHostKeyChecking=no"},
		Hosts:      map[string]string{},
	}
}

// DefaultDocument returns the defaults as a current-schema document, the
// starting point for the config editor when no file exists yet.
func DefaultDocument() *Document {
	cfg := Default()
	doc := NewDocument(CurrentSchemaVersion)
	doc.Settings["ssh_port"] = IntValue(int64(cfg.SSHPort))
	doc.Settings["tunnel_port"] = IntValue(int64(cfg.TunnelPort))
	doc.Settings["sshpass"] = BoolValue(cfg.Sshpass)
	doc.Settings["domains"] = StringListValue(cfg.Domains...)
	doc.Settings["ssh_options"] = StringListValue(cfg.SSHOptions...)
	doc.Settings["hosts"] = TableValue(map[string]Value{})
	return doc
}
