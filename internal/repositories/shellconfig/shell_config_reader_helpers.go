package shellconfig

import (
	"os"
	"path/filepath"
	"strings"
)

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}
	if absPath == homeDir || absPath == homeDir+string(os.PathSeparator) {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}

// UserFriendlyPath is toUserFriendlyPath for callers outside the package.
func UserFriendlyPath(absPath string) string {
	return toUserFriendlyPath(absPath)
}
