package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/malathair/ssm/internal/config"
	apperrors "github.com/malathair/ssm/internal/errors"
)

// runConfigEdit presents the interactive editing surface. Edits are applied
// to the raw document so keys this build does not know about survive the
// round trip, then written through the same atomic writer the migrator
// uses.
func runConfigEdit(opts *sessionOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return apperrors.NewUserInputError("config edit",
			errors.New(T("err_edit_needs_tty")))
	}

	cfg, _, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	doc, result, err := config.ResolveDocument(config.CandidatePaths(), getLogger(opts.verbosity > 0))
	if err != nil {
		return classifyConfigError(err)
	}
	path := result.Path
	if path == "" {
		path = config.UserConfigPath()
	}

	sshPort := strconv.Itoa(cfg.SSHPort)
	tunnelPort := strconv.Itoa(cfg.TunnelPort)
	jumpHost := cfg.JumpHost
	domains := strings.Join(cfg.Domains, " ")
	options := strings.Join(cfg.SSHOptions, ", ")
	sshpass := cfg.Sshpass

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(T("edit_ssh_port")).
				Validate(validatePort).
				Value(&sshPort),
			huh.NewInput().
				Title(T("edit_tunnel_port")).
				Validate(validatePort).
				Value(&tunnelPort),
			huh.NewInput().
				Title(T("edit_jump_host")).
				Description(T("edit_jump_host_desc")).
				Value(&jumpHost),
			huh.NewInput().
				Title(T("edit_domains")).
				Description(T("edit_domains_desc")).
				Value(&domains),
			huh.NewInput().
				Title(T("edit_ssh_options")).
				Description(T("edit_ssh_options_desc")).
				Value(&options),
			huh.NewConfirm().
				Title(T("edit_sshpass")).
				Description(T("edit_sshpass_desc")).
				Value(&sshpass),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return apperrors.NewUserInputError("config edit", err)
	}

	port, _ := strconv.ParseInt(sshPort, 10, 64)
	tunnel, _ := strconv.ParseInt(tunnelPort, 10, 64)
	doc.Settings["ssh_port"] = config.IntValue(port)
	doc.Settings["tunnel_port"] = config.IntValue(tunnel)
	doc.Settings["sshpass"] = config.BoolValue(sshpass)
	doc.Settings["domains"] = config.StringListValue(splitList(domains)...)
	doc.Settings["ssh_options"] = config.StringListValue(splitList(options)...)
	if jumpHost = strings.TrimSpace(jumpHost); jumpHost != "" {
		doc.Settings["jump_host"] = config.StringValue(jumpHost)
	} else {
		delete(doc.Settings, "jump_host")
	}

	return persistDocument(path, doc)
}

// runConfigSet applies a single key=value edit without the interactive
// form. Alias entries use the hosts.<alias> form.
func runConfigSet(opts *sessionOptions, assignment string) error {
	key, raw, found := strings.Cut(assignment, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return apperrors.NewUserInputError(assignment, errors.New(T("err_expected_key_value")))
	}

	doc, path, err := editableDocument(opts)
	if err != nil {
		return err
	}
	if err := applySetting(doc, key, strings.TrimSpace(raw)); err != nil {
		return apperrors.NewUserInputError(assignment, err)
	}
	return persistDocument(path, doc)
}

// runConfigUnset removes a key (or a hosts.<alias> entry) from the file.
func runConfigUnset(opts *sessionOptions, key string) error {
	doc, path, err := editableDocument(opts)
	if err != nil {
		return err
	}

	if alias, ok := strings.CutPrefix(key, "hosts."); ok {
		hosts, _ := doc.Settings["hosts"].AsTable()
		if _, exists := hosts[alias]; !exists {
			return apperrors.NewUserInputError(key, errors.New(T("err_unknown_key")))
		}
		delete(hosts, alias)
		doc.Settings["hosts"] = config.TableValue(hosts)
		return persistDocument(path, doc)
	}

	if _, exists := doc.Settings[key]; !exists {
		return apperrors.NewUserInputError(key, errors.New(T("err_unknown_key")))
	}
	delete(doc.Settings, key)
	return persistDocument(path, doc)
}

func editableDocument(opts *sessionOptions) (*config.Document, string, error) {
	doc, result, err := config.ResolveDocument(config.CandidatePaths(), getLogger(opts.verbosity > 0))
	if err != nil {
		return nil, "", classifyConfigError(err)
	}
	path := result.Path
	if path == "" {
		path = config.UserConfigPath()
	}
	return doc, path, nil
}

// applySetting parses value according to the key's schema type and stores
// it in the document.
func applySetting(doc *config.Document, key, value string) error {
	switch key {
	case "ssh_port", "tunnel_port":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %s", key, T("err_expected_number"))
		}
		doc.Settings[key] = config.IntValue(n)
	case "sshpass":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %s", key, T("err_expected_bool"))
		}
		doc.Settings[key] = config.BoolValue(b)
	case "jump_host":
		doc.Settings[key] = config.StringValue(value)
	case "domains", "ssh_options":
		doc.Settings[key] = config.StringListValue(splitList(value)...)
	default:
		if alias, ok := strings.CutPrefix(key, "hosts."); ok && alias != "" {
			hosts, _ := doc.Settings["hosts"].AsTable()
			merged := make(map[string]config.Value, len(hosts)+1)
			for k, v := range hosts {
				merged[k] = v
			}
			merged[alias] = config.StringValue(value)
			doc.Settings["hosts"] = config.TableValue(merged)
			return nil
		}
		return errors.New(T("err_unknown_key"))
	}
	return nil
}

func persistDocument(path string, doc *config.Document) error {
	if err := config.ValidateDocument(doc); err != nil {
		return apperrors.NewUserInputError("config", err)
	}
	if err := config.WriteDocument(path, doc); err != nil {
		return apperrors.NewConfigWriteError(path, err)
	}
	fmt.Println(successStyle.Render(T("config_saved", path)))
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 65535 {
		return errors.New(T("err_invalid_port"))
	}
	return nil
}

// splitList accepts both comma- and whitespace-separated input.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}
