package config

import (
	"os"
	"path/filepath"
)

// GetConfigFile returns the defaults file path. If MODSMITH_CONFIG is set,
// it takes precedence over ~/.config/modsmith/config.yaml.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("MODSMITH_CONFIG"); envPath != "" {
		return envPath, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "modsmith", "config.yaml"), nil
}
