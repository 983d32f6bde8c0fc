package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Options holds the process-level settings taken from command-line flags.
type Options struct {
	SettingsPath string
	Workspace    string
	Locale       string
	LogFile      string
	LogLevel     string
	LogFormat    string
}

// DefaultSettingsPath is settings.yaml under the user's config directory.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "quickexplorer", "settings.yaml")
}

// Validate checks if the option values are usable and makes the workspace path absolute.
func (o *Options) Validate() error {
	if o.SettingsPath == "" {
		return fmt.Errorf("settings path is required")
	}

	if o.Workspace != "" {
		abs, err := filepath.Abs(o.Workspace)
		if err != nil {
			return fmt.Errorf("error resolving workspace: %v", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("workspace does not exist: %s", o.Workspace)
			}
			return fmt.Errorf("error accessing workspace: %v", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("workspace is not a directory: %s", o.Workspace)
		}
		o.Workspace = abs
	}

	switch o.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error")
	}

	if o.LogFormat != "json" && o.LogFormat != "console" {
		return fmt.Errorf("log format must be 'json' or 'console'")
	}

	return nil
}
