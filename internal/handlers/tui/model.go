package tui

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Viewer is the alias session the browser presents. *session.Session
// satisfies it.
type Viewer interface {
	Search(query string) ([]alias.Alias, error)
	Reset() ([]alias.Alias, error)
	EditSource() (*alias.Snapshot, error)
	SourcePath() (string, error)
}

// Lines used by the header, query, status and help rows.
const chromeHeight = 5

// defaultListHeight is used until the first WindowSizeMsg arrives.
const defaultListHeight = 20

// editFinishedMsg is delivered once the editor process has exited and,
// on success, the aliases have been reloaded.
type editFinishedMsg struct {
	snapshot *alias.Snapshot
	err      error
}

// Model is the bubbletea model for the alias browser. It re-runs the
// search on every change to the query, so the visible rows always match
// what is typed.
type Model struct {
	viewer Viewer
	keys   KeyMap
	theme  Theme

	query   string
	aliases []alias.Alias
	cursor  int
	offset  int

	status string
	err    error

	chosen *alias.Alias

	width  int
	height int
}

// NewModel creates a browser showing every alias the viewer holds.
func NewModel(viewer Viewer) Model {
	model := Model{
		viewer: viewer,
		keys:   DefaultKeyMap,
		theme:  DefaultTheme,
	}
	model.aliases, model.err = viewer.Reset()
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Chosen returns the alias selected with Enter, or nil if the browser
// was quit without a selection.
func (model Model) Chosen() *alias.Alias {
	return model.chosen
}

// Query returns the current search text.
func (model Model) Query() string {
	return model.query
}

// Aliases returns the rows currently shown.
func (model Model) Aliases() []alias.Alias {
	return model.aliases
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.clampOffset()
		return model, nil

	case editFinishedMsg:
		if message.err != nil {
			model.status = fmt.Sprintf("Edit failed: %v", message.err)
			return model, nil
		}
		model.status = fmt.Sprintf("Reloaded %d alias(es).", message.snapshot.Mapping.Len())
		model.refresh()
		return model, nil

	case tea.KeyMsg:
		return model.handleKeys(message)
	}
	return model, nil
}

func (model Model) handleKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Select):
		if len(model.aliases) == 0 {
			return model, nil
		}
		selected := model.aliases[model.cursor]
		model.chosen = &selected
		return model, tea.Quit

	case key.Matches(message, model.keys.Reset):
		model.query = ""
		model.status = ""
		model.aliases, model.err = model.viewer.Reset()
		model.gotoTop()
		return model, nil

	case key.Matches(message, model.keys.Edit):
		edit := &editCommand{viewer: model.viewer}
		return model, tea.Exec(edit, func(err error) tea.Msg {
			return editFinishedMsg{snapshot: edit.snapshot, err: err}
		})

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)
		return model, nil

	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)
		return model, nil

	case message.Type == tea.KeyBackspace:
		if model.query == "" {
			return model, nil
		}
		runes := []rune(model.query)
		model.query = string(runes[:len(runes)-1])
		model.refresh()
		return model, nil

	case message.Type == tea.KeySpace:
		model.query += " "
		model.refresh()
		return model, nil

	case message.Type == tea.KeyRunes:
		model.query += string(message.Runes)
		model.refresh()
		return model, nil
	}
	return model, nil
}

// refresh re-runs the search for the current query and moves the
// cursor back to the first row.
func (model *Model) refresh() {
	model.aliases, model.err = model.viewer.Search(model.query)
	model.gotoTop()
}

func (model *Model) gotoTop() {
	model.cursor = 0
	model.offset = 0
}

func (model *Model) moveCursor(delta int) {
	if len(model.aliases) == 0 {
		return
	}
	model.cursor = max(0, min(len(model.aliases)-1, model.cursor+delta))
	model.clampOffset()
}

// clampOffset keeps the cursor inside the visible window.
func (model *Model) clampOffset() {
	rows := model.listHeight()
	if model.cursor < model.offset {
		model.offset = model.cursor
	}
	if model.cursor >= model.offset+rows {
		model.offset = model.cursor - rows + 1
	}
}

func (model Model) listHeight() int {
	if model.height == 0 {
		return defaultListHeight
	}
	return max(1, model.height-chromeHeight)
}

// View implements tea.Model.
func (model Model) View() string {
	var builder strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderText).Bold(true)
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	source, _ := model.viewer.SourcePath()
	builder.WriteString(headerStyle.Render("aliasview"))
	builder.WriteString(" ")
	builder.WriteString(faintStyle.Render(fmt.Sprintf("%s (%d shown)", source, len(model.aliases))))
	builder.WriteString("\n")

	promptStyle := lipgloss.NewStyle().Foreground(model.theme.QueryPrompt).Bold(true)
	builder.WriteString(promptStyle.Render("> "))
	builder.WriteString(model.query)
	builder.WriteString(lipgloss.NewStyle().Reverse(true).Render(" "))
	builder.WriteString("\n")

	builder.WriteString(model.renderRows())

	switch {
	case model.err != nil:
		builder.WriteString(lipgloss.NewStyle().Foreground(model.theme.ErrorText).Render(model.err.Error()))
	case model.status != "":
		builder.WriteString(faintStyle.Render(model.status))
	}
	builder.WriteString("\n")
	builder.WriteString(model.renderHelp())
	return builder.String()
}

func (model Model) renderRows() string {
	if len(model.aliases) == 0 {
		empty := "No aliases found."
		if model.query != "" {
			empty = fmt.Sprintf("No aliases match %q.", model.query)
		}
		return lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(empty) + "\n"
	}

	end := min(len(model.aliases), model.offset+model.listHeight())
	visible := model.aliases[model.offset:end]

	nameWidth := 0
	for _, a := range visible {
		nameWidth = max(nameWidth, lipgloss.Width(a.Name))
	}

	nameStyle := lipgloss.NewStyle().Foreground(model.theme.AliasName).Width(nameWidth + 2)
	commandStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	selectedStyle := lipgloss.NewStyle().
		Background(model.theme.SelectedBackground).
		Foreground(model.theme.SelectedForeground)

	var builder strings.Builder
	for i, a := range visible {
		var row string
		if model.offset+i == model.cursor {
			row = selectedStyle.Render(fmt.Sprintf("%-*s%s", nameWidth+2, a.Name, a.Command))
		} else {
			row = nameStyle.Render(a.Name) + commandStyle.Render(a.Command)
		}
		if model.width > 0 {
			row = lipgloss.NewStyle().MaxWidth(model.width).Render(row)
		}
		builder.WriteString(row)
		builder.WriteString("\n")
	}
	return builder.String()
}

func (model Model) renderHelp() string {
	parts := make([]string, 0, len(model.keys.ShortHelp()))
	for _, binding := range model.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(strings.Join(parts, " · "))
}
