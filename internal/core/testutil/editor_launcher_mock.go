package testutil

import "github.com/AntonioJCosta/aliasview/internal/core/ports"

// MockEditorLauncher is a mock implementation of ports.EditorLauncher.
type MockEditorLauncher struct {
	OpenFunc func(path string) error
	// OpenCalls records every path passed to Open.
	OpenCalls []string
}

// Open records the call and delegates to OpenFunc. It succeeds when OpenFunc is unset.
func (m *MockEditorLauncher) Open(path string) error {
	m.OpenCalls = append(m.OpenCalls, path)
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	return nil
}

var _ ports.EditorLauncher = (*MockEditorLauncher)(nil)
