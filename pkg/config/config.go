// Package config provides types and functions for loading the optional
// .genversion.json file that overrides the fixed names genversion
// otherwise assumes at the tree root.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const ConfigFileName = ".genversion.json"

// Defaults for the names genversion looks for at the tree root. They match
// the layout of the tree this tool was built for; other trees can override
// them in .genversion.json.
const (
	DefaultSentinelFile = "version.txt"
	DefaultPlaceholder  = "BUILD_ID"
	DefaultMarkerFile   = "SConstruct"
	DefaultSourceDir    = "src"
)

// Config represents the contents of .genversion.json.
type Config struct {
	// SentinelFile is the checked-in version file whose presence marks a
	// source-tarball build (version fixed, git not consulted).
	SentinelFile string `json:"sentinel_file"`
	// Placeholder is the token replaced by the resolved version during
	// template substitution.
	Placeholder string `json:"placeholder"`
	// MarkerFile and SourceDir identify the tree root; both must exist
	// under --root for any command to run.
	MarkerFile string `json:"marker_file"`
	SourceDir  string `json:"source_dir"`
}

// Default returns a Config populated with the standard names.
func Default() Config {
	return Config{
		SentinelFile: DefaultSentinelFile,
		Placeholder:  DefaultPlaceholder,
		MarkerFile:   DefaultMarkerFile,
		SourceDir:    DefaultSourceDir,
	}
}

// ConfigPath returns the path to .genversion.json given the tree root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}

// Load reads and parses .genversion.json from the given tree root.
// If the file does not exist, it returns a default Config and no error.
// Missing fields are filled with defaults after parsing.
func Load(root string) (Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	applyDefaults(&cfg)
	return cfg, nil
}

// applyDefaults fills in zero-value fields with the standard names.
func applyDefaults(cfg *Config) {
	if cfg.SentinelFile == "" {
		cfg.SentinelFile = DefaultSentinelFile
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	}
	if cfg.MarkerFile == "" {
		cfg.MarkerFile = DefaultMarkerFile
	}
	if cfg.SourceDir == "" {
		cfg.SourceDir = DefaultSourceDir
	}
}
