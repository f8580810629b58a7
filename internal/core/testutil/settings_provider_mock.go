package testutil

import "github.com/AntonioJCosta/aliasview/internal/core/ports"

// MockSettingsProvider is a mock implementation of ports.SettingsProvider.
type MockSettingsProvider struct {
	GetSettingsFunc func() (ports.Settings, error)
}

func (m *MockSettingsProvider) GetSettings() (ports.Settings, error) {
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc()
	}
	return ports.Settings{}, nil
}

var _ ports.SettingsProvider = (*MockSettingsProvider)(nil)
