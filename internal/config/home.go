package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetFortunerHome returns the fortuner home directory
// Priority order:
//  1. FORTUNER_HOME environment variable (if set)
//  2. $HOME/.fortuner
//
// The directory is not created; fortuner only reads from it.
func GetFortunerHome() (string, error) {
	if home := os.Getenv("FORTUNER_HOME"); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}

	return filepath.Join(userHome, ".fortuner"), nil
}

// DefaultConfigPath returns $FORTUNER_HOME/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := GetFortunerHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, "config.yaml"), nil
}
