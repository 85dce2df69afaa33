package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir returns the per-user data directory for app, honouring XDG_DATA_HOME.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where generated sky reports are written.
func ReportsDir(app string) string {
	return filepath.Join(DataDir(app), "reports")
}

// ExpandHome replaces a leading ~ or $HOME with the user's home directory.
func ExpandHome(path string) string {
	if path == "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
