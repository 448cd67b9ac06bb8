package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "shayari"

// DefaultPath is the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// DefaultLogPath is the log file location under the XDG state home.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}
