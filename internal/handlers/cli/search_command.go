package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliasview/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the 'search' subcommand.
func NewSearchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Show aliases whose name or command contains the query.",
		Long: `Case-insensitive substring search over alias names and commands.
Multiple arguments are joined with single spaces into one query.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearchCmd(cmd, args, a)
		},
	}
	return cmd
}

func runSearchCmd(cmd *cobra.Command, args []string, a *app) error {
	query := strings.Join(args, " ")

	snapshot, err := a.loadSnapshot(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	matches, err := a.session.Search(query)
	if err != nil {
		return fmt.Errorf("could not search aliases: %w", err)
	}
	a.logger.Debug("search", "query", query, "matches", len(matches))

	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases match %q.", query)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases matching %q:", query)))
	renderAliasTable(out, matches)
	printSourceFooter(out, snapshot, len(matches))
	return nil
}
