// Package config resolves file locations and user settings for the
// application. Settings come from viper, which the command layer binds
// to flags, a config file, and ZERODIVIDAS_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const appDirName = "zerodividas"

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DatabasePath returns the location of the SQLite database file. The
// "storage.path" setting overrides the default under the user's data
// directory.
func DatabasePath() string {
	if p := viper.GetString("storage.path"); p != "" {
		return ExpandPath(p)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName + ".db"
	}
	return filepath.Join(home, ".local", "share", appDirName, appDirName+".db")
}

// ConfigDir returns the directory searched for the optional config file.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", appDirName)
}
