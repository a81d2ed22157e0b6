package config

import (
	"os"
	"path/filepath"
)

// HomeEnvVar relocates the settings directory
const HomeEnvVar = "VERSIONINFO_HOME"

// GetHome returns $VERSIONINFO_HOME or the ~/.versioninfo default
func GetHome() string {
	home := os.Getenv(HomeEnvVar)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".versioninfo"
		}
		return filepath.Join(homeDir, ".versioninfo")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $VERSIONINFO_HOME/settings.yaml
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.yaml")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
