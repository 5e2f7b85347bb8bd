package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/malathair/ssm/internal/config"
	apperrors "github.com/malathair/ssm/internal/errors"
)

// runSession resolves configuration and target, builds the ssh argv, and
// hands the terminal over to the underlying client.
func runSession(opts *sessionOptions) error {
	logger := getLogger(opts.verbosity > 0)

	cfg, _, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	target, err := resolveTarget(opts.target, cfg, dnsLookup, logger)
	if err != nil {
		return err
	}

	jumpHost := ""
	if opts.jump || opts.jumpHost != "" {
		jumpHost, err = resolveJumpHost(opts, cfg, dnsLookup, logger)
		if err != nil {
			return err
		}
	}

	if opts.noPubkey {
		fmt.Fprintln(os.Stderr, warningStyle.Render(T("warn_nopubkey_deprecated")))
		fmt.Fprintln(os.Stderr, warningStyle.Render("  - "+T("warn_nopubkey_future")))
	}

	argv := buildSSHCommand(cfg, opts, target, jumpHost)

	if opts.dryRun {
		fmt.Println(strings.Join(argv, " "))
		return nil
	}
	return runCommand(argv)
}

// buildSSHCommand assembles the argv for the underlying OpenSSH client
// from the effective configuration plus per-invocation flags. Pure; no
// side effects.
func buildSSHCommand(cfg *config.Config, opts *sessionOptions, target, jumpHost string) []string {
	port := cfg.SSHPort
	if opts.port != 0 {
		port = opts.port
	}

	argv := []string{SSHBinary, "-p", strconv.Itoa(port)}

	if opts.verbosity > 0 {
		level := opts.verbosity
		if level > MaxSSHVerbosity {
			level = MaxSSHVerbosity
		}
		argv = append(argv, "-"+strings.Repeat("v", level))
	}

	for _, opt := range cfg.SSHOptions {
		argv = append(argv, "-o", opt)
	}
	if opts.noPubkey {
		argv = append(argv, "-o", "PubkeyAuthentication=no")
	}

	// sshpass and jump hosts do not mix, and sshpass makes no sense when
	// the target names a different user than the stored password's.
	altUser := strings.Contains(target, "@")
	if jumpHost != "" {
		argv = append(argv, "-J", jumpHost)
	} else if cfg.Sshpass && !altUser {
		argv = append([]string{SshpassBinary, "-e"}, argv...)
	}

	// Dynamic port forward for SOCKS5 tunneling; pointless for one-shot
	// remote commands, so -c wins over -t.
	if opts.tunnel && opts.remoteCmd == "" {
		argv = append(argv, "-D", strconv.Itoa(cfg.TunnelPort))
	}

	argv = append(argv, target)

	if opts.remoteCmd != "" {
		argv = append(argv, opts.remoteCmd)
	}
	return argv
}

// runCommand executes the assembled invocation with this process's stdio
// and propagates the child's exit code.
func runCommand(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			// ssh already printed what went wrong; mirror its exit code.
			os.Exit(exitErr.ExitCode())
		}
		return apperrors.NewCommandExecError(argv[0], err)
	}
	return nil
}
