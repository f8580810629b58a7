package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasview/internal/handlers/ui"
	"github.com/AntonioJCosta/aliasview/internal/repositories/shellconfig"
	"github.com/spf13/cobra"
)

// NewEditCommand creates the command that opens the alias source in an editor.
func NewEditCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the shell configuration file in your editor.",
		Long: `Opens the alias source with the editor from the settings file, $VISUAL,
$EDITOR, or vi, waits for it to exit, and reloads the aliases.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.loadSnapshot(cmd.ErrOrStderr()); err != nil {
				return err
			}

			snapshot, err := a.session.EditSource()
			if err != nil {
				return fmt.Errorf("could not edit aliases: %w", err)
			}

			reportDiagnostics(cmd.ErrOrStderr(), snapshot, a.opts.Verbose)
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Reloaded %d alias(es) from %s.",
				snapshot.Mapping.Len(), shellconfig.UserFriendlyPath(snapshot.Source))))
			return nil
		},
	}
	return cmd
}

// NewPathCommand creates the command that prints the resolved alias source path.
func NewPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path of the shell configuration file being read.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.session.SourcePath()
			if err != nil {
				return fmt.Errorf("could not resolve alias source: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
