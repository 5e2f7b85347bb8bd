package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/malathair/ssm/internal/config"
)

// printResolutionWarnings surfaces the migration report to the user, once,
// as a warning. Unmigrated settings are not an error; the session proceeds.
func printResolutionWarnings(result *config.Result) {
	if result == nil || !result.Migrated {
		return
	}

	fmt.Fprintln(os.Stderr, infoStyle.Render(
		T("migration_done", result.FromVersion, config.CurrentSchemaVersion)))

	if len(result.Report) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, warningStyle.Render(T("migration_report_header")))
	for _, entry := range result.Report {
		fmt.Fprintln(os.Stderr, warningStyle.Render(
			fmt.Sprintf("  - %s: %s", entry.Key, entry.Reason)))
	}
}

// runConfigShow renders the Effective Configuration, including where it
// came from.
func runConfigShow(opts *sessionOptions) error {
	cfg, result, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	source := T("config_source_defaults")
	if result.Path != "" {
		source = result.Path
	}
	fmt.Println(headerStyle.Render(T("config_show_header", source)))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{T("col_setting"), T("col_value")})
	t.AppendRows([]table.Row{
		{"ssh_port", strconv.Itoa(cfg.SSHPort)},
		{"tunnel_port", strconv.Itoa(cfg.TunnelPort)},
		{"jump_host", cfg.JumpHost},
		{"domains", strings.Join(cfg.Domains, ", ")},
		{"sshpass", strconv.FormatBool(cfg.Sshpass)},
		{"ssh_options", strings.Join(cfg.SSHOptions, ", ")},
	})
	for _, alias := range cfg.AliasNames() {
		t.AppendRow(table.Row{"hosts." + alias, cfg.Hosts[alias]})
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleDefault)
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateColumns = false
	}
	t.Render()
	return nil
}
