package prefs

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir resolves the per-user settings directory.
func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.shade).
	if v := strings.TrimSpace(os.Getenv("SHADE_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".shade"), nil
}

// DBPath is the location of the durable settings store.
func DBPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.sqlite"), nil
}
