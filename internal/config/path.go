// Package config loads freight configuration: file locations, the cargo
// category catalog, and the session store location.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys shared by commands.
const (
	KeyDatabasePath = "database.path"
	KeyLogLevel     = "logging.level"
	KeyLogFormat    = "logging.format"
)

// DefaultDatabasePath keeps session state in memory for the life of the process.
const DefaultDatabasePath = ":memory:"

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DatabasePath returns the configured session store location, expanded.
func DatabasePath(v *viper.Viper) string {
	if v == nil {
		v = viper.GetViper()
	}
	p := strings.TrimSpace(v.GetString(KeyDatabasePath))
	if p == "" {
		return DefaultDatabasePath
	}
	return ExpandPath(p)
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "freight"), nil
}
