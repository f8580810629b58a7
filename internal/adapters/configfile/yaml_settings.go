package configfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/aliasview/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const (
	appDirName       = "aliasview"
	settingsFilename = "config.yaml"
)

// YAMLSettingsProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLSettingsProvider struct {
	filePath string
}

// NewYAMLSettingsProvider creates a new YAMLSettingsProvider.
// filePath is the path to the YAML settings file.
func NewYAMLSettingsProvider(filePath string) (ports.SettingsProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML settings file path cannot be empty")
	}
	return &YAMLSettingsProvider{filePath: filePath}, nil
}

// DefaultSettingsPath returns $XDG_CONFIG_HOME/aliasview/config.yaml, falling
// back to ~/.config/aliasview/config.yaml.
func DefaultSettingsPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName, settingsFilename), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appDirName, settingsFilename), nil
}

// GetSettings reads and parses the configured YAML file.
// If the file does not exist or is empty, it returns zero Settings and no error.
func (p *YAMLSettingsProvider) GetSettings() (ports.Settings, error) {
	var settings ports.Settings

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return settings, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&settings); err != nil {
		// A file holding only comments or "---" has no documents.
		if errors.Is(err, io.EOF) {
			return ports.Settings{}, nil
		}
		return ports.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", p.filePath, err)
	}
	return settings, nil
}
