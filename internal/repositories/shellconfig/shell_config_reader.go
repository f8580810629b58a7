package shellconfig

import (
	"bufio"
	"fmt"
	"os"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasview/internal/core/ports"
)

// maxLineLength bounds a single configuration line; shell rc files with
// very long lines (generated completions, base64 blobs) exceed bufio's default.
const maxLineLength = 1024 * 1024

// ShellConfigReader reads the shell configuration file that holds aliases.
type ShellConfigReader struct {
	sourcePath string
}

// NewShellConfigReader creates a reader for the file located by finder.
func NewShellConfigReader(finder ports.SourceFinder) (ports.ShellConfigReader, error) {
	if finder == nil {
		return nil, fmt.Errorf("source finder cannot be nil")
	}
	path, err := finder.Find()
	if err != nil {
		return nil, fmt.Errorf("failed to locate alias source: %w", err)
	}
	if path == "" {
		return nil, fmt.Errorf("alias source path is empty")
	}
	return &ShellConfigReader{sourcePath: path}, nil
}

// SourcePath implements the ports.ShellConfigReader interface.
func (r *ShellConfigReader) SourcePath() string {
	return r.sourcePath
}

// ReadLines implements the ports.ShellConfigReader interface.
// A missing, unreadable or non-regular file is reported as alias.ErrSourceNotFound.
func (r *ShellConfigReader) ReadLines() ([]string, error) {
	file, err := os.Open(r.sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", alias.ErrSourceNotFound, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", alias.ErrSourceNotFound, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", alias.ErrSourceNotFound, toUserFriendlyPath(r.sourcePath))
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning alias source %s: %w", toUserFriendlyPath(r.sourcePath), err)
	}
	return lines, nil
}
