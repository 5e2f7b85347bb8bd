package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/malathair/ssm/internal/config"
	apperrors "github.com/malathair/ssm/internal/errors"
)

// Style definitions using lipgloss
var (
	// Theme colors
	primaryColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	warningColor = lipgloss.Color("#FFA500")
	infoColor    = lipgloss.Color("#3B82F6")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(infoColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Underline(true)
)

// sessionOptions collects everything the root command needs to build one
// ssh invocation.
type sessionOptions struct {
	target    string
	command   string
	remoteCmd string
	jump      bool
	jumpHost  string
	noPubkey  bool
	port      int
	tunnel    bool
	dryRun    bool
	verbosity int
	lang      string
}

// NewRootCmd creates the command tree.
func NewRootCmd() *cobra.Command {
	opts := &sessionOptions{}

	rootCmd := &cobra.Command{
		Use:          "ssm [flags] host [command...]",
		Short:        T("root_short"),
		Long:         titleStyle.Render(ClientName) + " - " + T("root_long"),
		Example:      T("root_examples"),
		Version:      version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initI18n(opts.lang)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			opts.target = args[0]
			if len(args) > 1 {
				if opts.command != "" {
					return apperrors.NewUserInputError(strings.Join(args[1:], " "),
						errors.New(T("err_command_twice")))
				}
				opts.remoteCmd = strings.Join(args[1:], " ")
			} else {
				opts.remoteCmd = opts.command
			}
			return runSession(opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.command, "command", "c", "", T("flag_command_help"))
	rootCmd.Flags().BoolVarP(&opts.jump, "jump", "j", false, T("flag_jump_help"))
	rootCmd.Flags().StringVarP(&opts.jumpHost, "jumphost", "J", "", T("flag_jumphost_help"))
	rootCmd.Flags().BoolVarP(&opts.noPubkey, "nopubkey", "o", false, T("flag_nopubkey_help"))
	rootCmd.Flags().IntVarP(&opts.port, "port", "p", 0, T("flag_port_help"))
	rootCmd.Flags().BoolVarP(&opts.tunnel, "tunnel", "t", false, T("flag_tunnel_help"))
	rootCmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, T("flag_dry_run_help"))
	rootCmd.Flags().CountVarP(&opts.verbosity, "verbose", "v", T("flag_verbose_help"))
	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", "", T("flag_lang_help"))
	rootCmd.MarkFlagsMutuallyExclusive("jump", "jumphost")

	rootCmd.AddCommand(
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// newConfigCmd creates the config subcommand family: the interactive
// editing surface plus scripted set/unset, all writing through the same
// atomic writer the migrator uses.
func newConfigCmd(opts *sessionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: T("config_short"),
		Long:  T("config_long"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(opts)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: T("config_show_short"),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigShow(opts)
			},
		},
		&cobra.Command{
			Use:   "edit",
			Short: T("config_edit_short"),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigEdit(opts)
			},
		},
		&cobra.Command{
			Use:   "set key=value",
			Short: T("config_set_short"),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigSet(opts, args[0])
			},
		},
		&cobra.Command{
			Use:   "unset key",
			Short: T("config_unset_short"),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigUnset(opts, args[0])
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: T("config_init_short"),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := config.UserConfigPath()
				if err := config.CreateSample(path); err != nil {
					return apperrors.NewConfigWriteError(path, err)
				}
				fmt.Println(successStyle.Render(T("config_init_done", path)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: T("config_path_short"),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.Locate(config.CandidatePaths())
				if errors.Is(err, config.ErrNotFound) {
					fmt.Println(T("config_path_none"))
					return nil
				}
				fmt.Println(path)
				return nil
			},
		},
	)

	return cmd
}

// newVersionCmd creates the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: T("version_short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s %s\n", ClientName, version)
			return nil
		},
	}
}

// getLogger returns a debug logger that actually prints only in verbose
// mode.
func getLogger(verbose bool) *log.Logger {
	if verbose {
		return log.New(os.Stderr, ClientName+": ", 0)
	}
	return log.New(io.Discard, "", 0)
}

// resolveConfig loads the Effective Configuration and surfaces resolution
// warnings. Fatal taxonomy errors (corrupt file, newer-than-known schema)
// come back classified.
func resolveConfig(opts *sessionOptions) (*config.Config, *config.Result, error) {
	logger := getLogger(opts.verbosity > 0)
	cfg, result, err := config.Resolve(logger)
	if err != nil {
		return nil, nil, classifyConfigError(err)
	}

	printResolutionWarnings(result)
	if result.PersistErr != nil {
		eh := apperrors.NewErrorHandler(getLogger(true), opts.verbosity > 0)
		eh.Handle(apperrors.NewConfigWriteError(result.Path, result.PersistErr))
	}
	return cfg, result, nil
}

func classifyConfigError(err error) error {
	path := config.SystemConfigPath
	if located, lerr := config.Locate(config.CandidatePaths()); lerr == nil {
		path = located
	}
	switch {
	case errors.Is(err, config.ErrParse):
		return apperrors.NewConfigCorruptError(path, err)
	case errors.Is(err, config.ErrUnsupportedSchema):
		return apperrors.NewUnsupportedSchemaError(path, err)
	default:
		return err
	}
}
