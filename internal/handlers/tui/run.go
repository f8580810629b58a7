package tui

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	tea "github.com/charmbracelet/bubbletea"
)

// editCommand runs the viewer's edit action as a tea.ExecCommand, so the
// editor gets the terminal while the browser is suspended.
type editCommand struct {
	viewer   Viewer
	snapshot *alias.Snapshot
}

func (c *editCommand) Run() error {
	snapshot, err := c.viewer.EditSource()
	if err != nil {
		return err
	}
	c.snapshot = snapshot
	return nil
}

// The editor launcher owns its own standard streams.
func (c *editCommand) SetStdin(io.Reader)  {}
func (c *editCommand) SetStdout(io.Writer) {}
func (c *editCommand) SetStderr(io.Writer) {}

// Run starts the browser on the alternate screen and blocks until the
// user quits. It returns the alias chosen with Enter, or nil.
func Run(viewer Viewer) (*alias.Alias, error) {
	program := tea.NewProgram(NewModel(viewer), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run alias browser: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return model.Chosen(), nil
}
