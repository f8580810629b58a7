package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasview/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every alias in the shell configuration file.",
		Long:  `Displays all aliases defined with 'alias name=value' lines, in file order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, a)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, _ []string, a *app) error {
	snapshot, err := a.loadSnapshot(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	aliases, err := a.session.Reset()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases found."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Aliases:"))
	renderAliasTable(out, aliases)
	printSourceFooter(out, snapshot, len(aliases))
	return nil
}
