// Package config loads the phcalc user configuration from the
// platform config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the phcalc user configuration.
type Config struct {
	// Solutes is a path to a YAML file with custom solute
	// definitions, overlaid over the builtins.
	Solutes string `yaml:"solutes"`

	// Precision is the number of significant digits printed for
	// derived quantities.
	Precision int `yaml:"precision"`

	// LogLevel sets the log verbosity: "info" (default) or "debug".
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Precision: 4, LogLevel: "info"}
}

// Dir returns the phcalc config directory.
func Dir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		userDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		userConfigDir = filepath.Join(userDir, ".config")
	}
	return filepath.Join(userConfigDir, "phcalc"), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at the default path. A missing file
// yields the defaults.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(p)
}

// LoadFile reads a config file, filling unset fields with defaults.
// A missing file yields the defaults; a malformed one is an error.
func LoadFile(path string) (Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}

	if err := yaml.Unmarshal(b, &c); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	if c.Precision <= 0 || c.Precision > 12 {
		return Default(), fmt.Errorf("%s: precision %d outside [1, 12]", path, c.Precision)
	}
	switch c.LogLevel {
	case "info", "debug":
	default:
		return Default(), fmt.Errorf("%s: unknown log level '%s'", path, c.LogLevel)
	}
	return c, nil
}
