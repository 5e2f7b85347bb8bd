package main

import (
	"errors"
	"log"
	"net"
	"net/netip"
	"strings"

	"github.com/malathair/ssm/internal/config"
	apperrors "github.com/malathair/ssm/internal/errors"
)

// lookupFunc resolves a host name; nil means resolvable. Injected so the
// completion logic is testable without real DNS.
type lookupFunc func(host string) error

func dnsLookup(host string) error {
	_, err := net.LookupHost(host)
	return err
}

// resolveTarget maps the user-supplied host shorthand onto the value handed
// to ssh, preserving any user@ prefix. Resolution order:
//
//  1. configured alias table
//  2. IP literal, used as-is
//  3. a name containing "." tried as-is via DNS
//  4. each configured domain suffix in turn
//
// Names without a dot skip step 3: resolver timeouts on non-FQDN lookups
// are painfully slow against public DNS, and the domain list exists exactly
// for those names. A site running a private DNS zone with bare-name records
// can work around this with a single-entry domain list.
func resolveTarget(arg string, cfg *config.Config, lookup lookupFunc, logger *log.Logger) (string, error) {
	prefix := ""
	host := arg
	if at := strings.LastIndex(arg, "@"); at != -1 {
		prefix = arg[:at+1]
		host = arg[at+1:]
	}
	if host == "" {
		return "", apperrors.NewHostLookupError(arg, errors.New(T("err_empty_host")))
	}

	if target, ok := cfg.Hosts[host]; ok {
		logger.Printf("alias %q -> %q", host, target)
		return prefix + target, nil
	}

	if _, err := netip.ParseAddr(host); err == nil {
		return arg, nil
	}

	if strings.Contains(host, ".") {
		if err := lookup(host); err == nil {
			return arg, nil
		} else {
			logger.Printf("lookup for %s failed: %v", host, err)
		}
	}

	for _, domain := range cfg.Domains {
		candidate := host + "." + domain
		if err := lookup(candidate); err == nil {
			return arg + "." + domain, nil
		} else {
			logger.Printf("lookup for %s failed: %v", candidate, err)
		}
	}

	return "", apperrors.NewHostLookupError(host, errors.New(T("err_no_fqdn")))
}

// resolveJumpHost picks the jump host (flag override wins over config) and
// runs it through the same completion as the target.
func resolveJumpHost(opts *sessionOptions, cfg *config.Config, lookup lookupFunc, logger *log.Logger) (string, error) {
	host := cfg.JumpHost
	if opts.jumpHost != "" {
		host = opts.jumpHost
	}
	if host == "" {
		return "", apperrors.NewUserInputError("--jump", errors.New(T("err_no_jumphost")))
	}
	return resolveTarget(host, cfg, lookup, logger)
}
