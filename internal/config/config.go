/*
Package config provides configuration loading for Tripcheck.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the home directory
const DefaultFilename = ".tripcheck.yaml"

// Config represents the complete Tripcheck configuration
type Config struct {
	// DataDir overrides where snapshots are stored
	DataDir string `yaml:"data_dir,omitempty"`

	// LogLevel sets the default log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level,omitempty"`

	// Defaults seed the user settings when no snapshot exists yet
	Defaults Defaults `yaml:"defaults,omitempty"`

	// Include other configuration files
	Includes []string `yaml:"includes,omitempty"`
}

// Defaults contains first-run values for the user profile
type Defaults struct {
	// DisplayName of the user
	DisplayName string `yaml:"display_name,omitempty"`

	// Language for the interface (en, ru, es)
	Language string `yaml:"language,omitempty"`

	// Theme preference (system, light, dark)
	Theme string `yaml:"theme,omitempty"`

	// TextScale between 0.9 and 1.3
	TextScale float64 `yaml:"text_scale,omitempty"`
}

// DefaultPath returns the config file path in the home directory
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, DefaultFilename)
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Process includes
	baseDir := filepath.Dir(path)
	for _, include := range cfg.Includes {
		includePath := include
		if !filepath.IsAbs(includePath) {
			includePath = filepath.Join(baseDir, include)
		}

		matches, err := filepath.Glob(includePath)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %s: %w", include, err)
		}

		for _, match := range matches {
			includeCfg, err := Load(match)
			if err != nil {
				return nil, fmt.Errorf("failed to load include %s: %w", match, err)
			}

			if err := mergo.Merge(&cfg, includeCfg, mergo.WithAppendSlice); err != nil {
				return nil, fmt.Errorf("failed to merge include %s: %w", match, err)
			}
		}
	}

	return &cfg, nil
}

// LoadOrDefault loads the config at path if it exists, else an empty config
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(path)
}

// DefaultTemplate returns the default configuration template
func DefaultTemplate() string {
	return `# Tripcheck configuration file
# See https://github.com/tripcheck/tripcheck for documentation

# Where snapshots are stored (defaults to ~/.local/share/tripcheck)
# data_dir: /path/to/data

# Default log level: debug, info, warn, error
log_level: warn

# First-run profile defaults
defaults:
  display_name: ""
  language: ru
  theme: light
  text_scale: 1.0
`
}
