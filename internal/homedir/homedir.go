package homedir

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "ordklocka"

// Get returns the configuration directory, creating it when missing.
func Get() (string, error) {
	base, err := os.UserHomeDir()

	if err != nil {
		return "", fmt.Errorf("homedir: could not get user home. %w", err)
	}

	dir := filepath.Join(base, ".config", appName)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("homedir: could not create %s. %w", dir, err)
	}

	return dir, nil
}
