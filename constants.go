package main

// Application constants
const (
	// Application identifiers
	ClientName = "ssm"

	// External binaries this tool wraps
	SSHBinary     = "ssh"
	SshpassBinary = "sshpass"

	// ssh accepts at most three -v flags
	MaxSSHVerbosity = 3
)
