package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/aliasview/internal/handlers/ui"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// lineReader is the part of *readline.Instance the prompt loop needs.
type lineReader interface {
	Readline() (string, error)
}

const promptHelp = `Type a query to search aliases. Commands:
  :reset    show every alias
  :reload   re-read the shell configuration file
  :edit     open the file in your editor, then reload
  :quit     leave (also :q or Ctrl-D)`

// NewPromptCommand creates the interactive line-based search command.
func NewPromptCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Search aliases interactively, one query per line.",
		Long:  promptHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.loadSnapshot(cmd.ErrOrStderr()); err != nil {
				return err
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:            ui.PromptColor("alias> "),
				InterruptPrompt:   "^C",
				EOFPrompt:         ":quit",
				HistorySearchFold: true,
				AutoComplete: readline.NewPrefixCompleter(
					readline.PcItem(":reset"),
					readline.PcItem(":reload"),
					readline.PcItem(":edit"),
					readline.PcItem(":quit"),
				),
				Stdin:  io.NopCloser(cmd.InOrStdin()),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to initialize prompt: %w", err)
			}
			defer rl.Close()

			fmt.Fprintln(cmd.OutOrStdout(), ui.DetailColor(promptHelp))
			return runPromptLoop(rl, cmd.OutOrStdout(), a)
		},
	}
}

// runPromptLoop reads queries until EOF or :quit. Ctrl-C clears the line.
func runPromptLoop(reader lineReader, out io.Writer, a *app) error {
	for {
		line, err := reader.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimSpace(line)
		switch input {
		case ":quit", ":q":
			return nil

		case ":reset":
			aliases, err := a.session.Reset()
			if err != nil {
				return fmt.Errorf("could not list aliases: %w", err)
			}
			if len(aliases) == 0 {
				fmt.Fprintln(out, ui.InfoColor("No aliases found."))
				continue
			}
			renderAliasTable(out, aliases)

		case ":reload":
			if _, err := a.loadSnapshot(out); err != nil {
				fmt.Fprintln(out, ui.ErrorColor(err.Error()))
				continue
			}
			snapshot, _ := a.session.Current()
			fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Reloaded %d alias(es).", snapshot.Mapping.Len())))

		case ":edit":
			snapshot, err := a.session.EditSource()
			if err != nil {
				fmt.Fprintln(out, ui.ErrorColor(fmt.Sprintf("Edit failed: %v", err)))
				continue
			}
			reportDiagnostics(out, snapshot, a.opts.Verbose)
			fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Reloaded %d alias(es).", snapshot.Mapping.Len())))

		default:
			matches, err := a.session.Search(input)
			if err != nil {
				return fmt.Errorf("could not search aliases: %w", err)
			}
			if len(matches) == 0 {
				fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases match %q.", input)))
				continue
			}
			renderAliasTable(out, matches)
		}
	}
}
