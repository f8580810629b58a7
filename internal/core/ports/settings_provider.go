package ports

// Settings holds user preferences loaded from the settings file.
type Settings struct {
	Source string `yaml:"source"`
	Editor string `yaml:"editor"`
}

// SettingsProvider defines the interface for loading user settings.
type SettingsProvider interface {
	// GetSettings loads settings. A missing or empty settings file yields
	// zero Settings and no error.
	GetSettings() (Settings, error)
}
