package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasview/internal/handlers/ui"
	"github.com/AntonioJCosta/aliasview/internal/repositories/shellconfig"
	"github.com/olekukonko/tablewriter"
)

// loadSnapshot loads the alias source and reports its diagnostics on errOut.
// A missing source is a warning; malformed lines are only listed when verbose.
func (a *app) loadSnapshot(errOut io.Writer) (*alias.Snapshot, error) {
	snapshot, err := a.session.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load aliases: %w", err)
	}
	reportDiagnostics(errOut, snapshot, a.opts.Verbose)
	return snapshot, nil
}

func reportDiagnostics(errOut io.Writer, snapshot *alias.Snapshot, verbose bool) {
	if snapshot.SourceMissing() {
		fmt.Fprintln(errOut, ui.WarningColor(fmt.Sprintf("No such file: %s", shellconfig.UserFriendlyPath(snapshot.Source))))
	}
	if !verbose {
		return
	}
	for _, d := range snapshot.Malformed() {
		fmt.Fprintln(errOut, ui.WarningColor(fmt.Sprintf("Warning: line %d: skipped alias definition without '=': %s", d.Line, d.Text)))
	}
}

// renderAliasTable writes aliases as a bordered two-column table.
func renderAliasTable(w io.Writer, aliases []alias.Alias) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Alias", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, a.Command})
	}
	table.Render()
}

func printSourceFooter(w io.Writer, snapshot *alias.Snapshot, shown int) {
	fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("(%d of %d aliases, source: %s)",
		shown, snapshot.Mapping.Len(), shellconfig.UserFriendlyPath(snapshot.Source))))
}
