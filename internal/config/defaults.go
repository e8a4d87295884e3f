// Package config loads optional user-level defaults for the wizard.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vuedapt/create-node/pkg/models"
)

// DefaultsFileName is the user defaults file under the config directory.
const DefaultsFileName = "defaults.yaml"

// configDirName is the subdirectory under the user config root.
const configDirName = "create-node"

// Defaults holds user-level default answers for the wizard. A missing or
// invalid file is never fatal; generation proceeds with built-in defaults.
type Defaults struct {
	Author         string                `yaml:"author"`
	License        string                `yaml:"license"`
	PackageManager models.PackageManager `yaml:"package_manager"`
}

// NewDefaults returns the built-in defaults.
func NewDefaults() Defaults {
	return Defaults{
		License:        "MIT",
		PackageManager: models.PackageManagerNpm,
	}
}

// Load reads defaults from the user's config directory
// (e.g. ~/.config/create-node/defaults.yaml), falling back to built-in
// values when the file is missing or invalid.
func Load() Defaults {
	dir, err := os.UserConfigDir()
	if err != nil {
		return NewDefaults()
	}
	return LoadFrom(filepath.Join(dir, configDirName, DefaultsFileName))
}

// LoadFrom reads defaults from an explicit path. Invalid YAML is skipped
// with a warning rather than failing the run.
func LoadFrom(path string) Defaults {
	defaults := NewDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read user defaults, using built-ins", "path", path, "error", err)
		}
		return defaults
	}

	var loaded Defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		slog.Warn("failed to parse user defaults, using built-ins", "path", path, "error", err)
		return defaults
	}

	if loaded.Author != "" {
		defaults.Author = loaded.Author
	}
	if loaded.License != "" {
		defaults.License = loaded.License
	}
	if loaded.PackageManager != "" {
		if loaded.PackageManager.IsValid() {
			defaults.PackageManager = loaded.PackageManager
		} else {
			slog.Warn("ignoring invalid package manager in user defaults",
				"path", path, "value", loaded.PackageManager)
		}
	}

	return defaults
}
