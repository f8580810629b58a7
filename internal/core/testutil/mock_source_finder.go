package testutil

import "github.com/AntonioJCosta/aliasview/internal/core/ports"

// MockSourceFinder is a mock implementation of ports.SourceFinder.
type MockSourceFinder struct {
	FindFunc func() (string, error)
}

// Find mocks the Find method.
func (m *MockSourceFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return "", nil // Default behavior
}

var _ ports.SourceFinder = (*MockSourceFinder)(nil)
