package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasview/internal/handlers/tui"
	"github.com/spf13/cobra"
)

// runBrowser is swapped in tests; the real browser needs a terminal.
var runBrowser = tui.Run

// NewBrowseCommand creates the full-screen alias browser command.
func NewBrowseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and search aliases in a full-screen view.",
		Long: `Opens a full-screen alias list that narrows as you type.
Enter prints the selected alias's command on stdout. Ctrl-R resets the
search, Ctrl-E opens the file in your editor, Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.loadSnapshot(cmd.ErrOrStderr()); err != nil {
				return err
			}

			chosen, err := runBrowser(a.session)
			if err != nil {
				return err
			}
			if chosen != nil {
				fmt.Fprintln(cmd.OutOrStdout(), chosen.Command)
			}
			return nil
		},
	}
}
