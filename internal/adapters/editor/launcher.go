package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasview/internal/core/ports"
)

// DefaultEditor is used when neither the settings file nor the environment names one.
const DefaultEditor = "vi"

// OSEditorLauncher implements the EditorLauncher interface by running the
// editor as a child process attached to the terminal.
type OSEditorLauncher struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// NewOSEditorLauncher creates a launcher. configured is the editor from the
// settings file and may be empty; $VISUAL, $EDITOR and then vi are tried next.
func NewOSEditorLauncher(configured string) ports.EditorLauncher {
	return &OSEditorLauncher{
		command: ResolveEditor(configured),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// ResolveEditor returns the editor command line to use.
func ResolveEditor(configured string) string {
	for _, candidate := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	return DefaultEditor
}

// Command returns the resolved editor command line.
func (l *OSEditorLauncher) Command() string {
	return l.command
}

// Open runs the editor on path and waits for it to exit.
// The editor command may carry arguments, e.g. "code --wait".
func (l *OSEditorLauncher) Open(path string) error {
	fields := strings.Fields(l.command)
	if len(fields) == 0 {
		return fmt.Errorf("empty editor command: %w", alias.ErrEditorLaunch)
	}

	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with status %d", alias.ErrEditorLaunch, fields[0], exitErr.ExitCode())
		}
		return fmt.Errorf("%w: starting %s: %w", alias.ErrEditorLaunch, fields[0], err)
	}
	return nil
}
