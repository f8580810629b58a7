package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonioJCosta/aliasview/internal/core/services/session"
	"github.com/AntonioJCosta/aliasview/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// Options holds the persistent flags shared by every command.
type Options struct {
	SourceFile string
	ConfigFile string
	Verbose    bool
	NoColor    bool
}

// SessionBuilder wires a session from the parsed flags. It runs once per
// invocation, before the selected command.
type SessionBuilder func(opts Options, logger *slog.Logger) (*session.Session, error)

// app is the state shared between the root command and its subcommands.
type app struct {
	opts    Options
	logger  *slog.Logger
	session *session.Session
}

var rootCmd *cobra.Command

func NewRootCommand(version string, build SessionBuilder) *cobra.Command {
	a := &app{}

	rootCmd = &cobra.Command{
		Use:   "aliasview",
		Short: "aliasview shows and searches the aliases in your shell configuration.",
		Long: `aliasview reads alias definitions from your shell configuration file
(~/.zshrc by default), lists them in a searchable table, and opens the
file in your editor.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.NoColor {
				ui.DisableColors()
			}
			a.logger = newLogger(cmd.ErrOrStderr(), a.opts.Verbose)
			if build == nil {
				return fmt.Errorf("session builder not initialized for command %s", cmd.Name())
			}
			s, err := build(a.opts, a.logger)
			if err != nil {
				return fmt.Errorf("could not initialize: %w", err)
			}
			a.session = s
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.opts.SourceFile, "file", "f", "", "Shell configuration file to read aliases from (default: rc file for $SHELL).")
	flags.StringVar(&a.opts.ConfigFile, "config", "", "Settings file (default: $XDG_CONFIG_HOME/aliasview/config.yaml).")
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "Log debug details and report skipped malformed alias lines.")
	flags.BoolVar(&a.opts.NoColor, "no-color", false, "Disable colored output.")

	rootCmd.AddCommand(NewListCommand(a))
	rootCmd.AddCommand(NewSearchCommand(a))
	rootCmd.AddCommand(NewEditCommand(a))
	rootCmd.AddCommand(NewPickCommand(a))
	rootCmd.AddCommand(NewBrowseCommand(a))
	rootCmd.AddCommand(NewPromptCommand(a))
	rootCmd.AddCommand(NewPathCommand(a))

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
