package shellconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/aliasview/internal/core/ports"
)

// SourceEnvVar overrides the alias source path when no explicit path is given.
const SourceEnvVar = "ALIASVIEW_SOURCE"

// rcFiles maps a shell's basename to the startup file that usually holds its aliases.
var rcFiles = map[string]string{
	"zsh":  ".zshrc",
	"bash": ".bashrc",
}

const defaultRCFile = ".zshrc"

// DefaultSourceFinder locates the alias source file.
//
// Candidates are tried in order: the explicit paths given at construction
// (first non-empty wins), $ALIASVIEW_SOURCE, then the rc file for $SHELL
// in the home directory. The file is not required to exist.
type DefaultSourceFinder struct {
	explicit []string
}

// NewDefaultSourceFinder creates a finder that prefers the given explicit
// paths, typically a command-line flag followed by a settings-file value.
func NewDefaultSourceFinder(explicit ...string) ports.SourceFinder {
	return &DefaultSourceFinder{explicit: explicit}
}

// Find implements the ports.SourceFinder interface.
func (f *DefaultSourceFinder) Find() (string, error) {
	for _, candidate := range f.explicit {
		if candidate != "" {
			return resolvePath(candidate)
		}
	}
	if fromEnv := os.Getenv(SourceEnvVar); fromEnv != "" {
		return resolvePath(fromEnv)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, rcFileForShell(os.Getenv("SHELL"))), nil
}

// rcFileForShell returns the rc file name for a $SHELL value.
func rcFileForShell(shellPath string) string {
	if shellPath == "" {
		return defaultRCFile
	}
	shellName := strings.ToLower(filepath.Base(shellPath))
	if rc, ok := rcFiles[shellName]; ok {
		return rc
	}
	return defaultRCFile
}

func resolvePath(path string) (string, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}
