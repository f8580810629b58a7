package testutil

import (
	"errors"

	"github.com/AntonioJCosta/aliasview/internal/core/ports"
)

// MockShellConfigReader is a mock implementation of ports.ShellConfigReader for testing.
type MockShellConfigReader struct {
	ReadLinesFunc  func() ([]string, error)
	SourcePathFunc func() string
	ReadLinesCalls int
}

func (m *MockShellConfigReader) ReadLines() ([]string, error) {
	m.ReadLinesCalls++
	if m.ReadLinesFunc != nil {
		return m.ReadLinesFunc()
	}
	return nil, errors.New("MockShellConfigReader: ReadLinesFunc not implemented")
}

func (m *MockShellConfigReader) SourcePath() string {
	if m.SourcePathFunc != nil {
		return m.SourcePathFunc()
	}
	return "/home/test/.zshrc"
}

// StaticShellConfigReader returns a reader that always yields lines.
func StaticShellConfigReader(lines ...string) *MockShellConfigReader {
	return &MockShellConfigReader{
		ReadLinesFunc: func() ([]string, error) {
			out := make([]string, len(lines))
			copy(out, lines)
			return out, nil
		},
	}
}

var _ ports.ShellConfigReader = (*MockShellConfigReader)(nil)
