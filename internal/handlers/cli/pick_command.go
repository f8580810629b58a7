package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasview/internal/handlers/ui"
	"github.com/spf13/cobra"
)

func NewPickCommand(a *app) *cobra.Command {
	var printNames bool

	cmd := &cobra.Command{
		Use:   "pick [query]",
		Short: "Interactively pick aliases and print their commands.",
		Long: `Narrows the aliases with an optional query, then lets you select some of them.
Uses fzf for selection if available, otherwise falls back to numeric input.
The selected commands are printed one per line on stdout; prompts go to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPickCmd(cmd, args, a, printNames)
		},
	}

	cmd.Flags().BoolVarP(&printNames, "names", "n", false, "Print alias names instead of commands.")

	return cmd
}

func runPickCmd(cmd *cobra.Command, args []string, a *app, printNames bool) error {
	errOut := cmd.ErrOrStderr()

	if _, err := a.loadSnapshot(errOut); err != nil {
		return err
	}
	candidates, err := a.session.Search(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("could not search aliases: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Fprintln(errOut, ui.InfoColor("No aliases to pick from."))
		return nil
	}

	var chosen []alias.Alias
	var selectionErr error

	fzfSelected, fzfErr := selectAliasesViaFZF(candidates)

	if fzfErr == nil {
		chosen = fzfSelected
	} else if errors.Is(fzfErr, ErrFZFNotFound) {
		fmt.Fprintln(errOut, ui.WarningColor("fzf not found in PATH. Falling back to numeric selection."))
		chosen, selectionErr = selectAliasesNumerically(cmd.InOrStdin(), errOut, candidates)
	} else if errors.Is(fzfErr, ErrFZFCancelled) {
		fmt.Fprintln(errOut, ui.InfoColor("Selection cancelled via fzf."))
		return nil
	} else {
		fmt.Fprintln(errOut, ui.ErrorColor(fmt.Sprintf("Error during fzf selection: %v. Falling back to numeric selection.", fzfErr)))
		chosen, selectionErr = selectAliasesNumerically(cmd.InOrStdin(), errOut, candidates)
	}

	if selectionErr != nil {
		return fmt.Errorf("error during alias selection: %w", selectionErr)
	}
	if len(chosen) == 0 {
		fmt.Fprintln(errOut, ui.InfoColor("No aliases selected."))
		return nil
	}

	out := cmd.OutOrStdout()
	for _, c := range chosen {
		if printNames {
			fmt.Fprintln(out, c.Name)
		} else {
			fmt.Fprintln(out, c.Command)
		}
	}
	return nil
}
