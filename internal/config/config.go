// Package config loads the ttytable configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvBorder names the environment variable overriding the configured border.
const EnvBorder = "TTYTABLE_BORDER"

// Config is the on-disk configuration.
type Config struct {
	// Default border style name (none, ascii, unicode).
	Border string `yaml:"border,omitempty"`

	// Default input cell delimiter.
	Delimiter string `yaml:"delimiter,omitempty"`
}

// configPathFunc can be overridden in tests.
var configPathFunc = defaultConfigPath

// SetConfigPathFunc replaces the default path lookup and returns the previous one.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns ~/.config/ttytable/config.yaml
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ttytable", "config.yaml"), nil
}

// DefaultConfigPath returns the path Load reads from.
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load reads the config from the default path. A missing file, or no home
// directory, yields an empty Config.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the config at path. A missing file yields an empty Config.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// BorderName returns the border name to use when no flag is given:
// the environment variable, then the config file, then "none".
func (c *Config) BorderName() string {
	if v := os.Getenv(EnvBorder); v != "" {
		return v
	}
	if c.Border != "" {
		return c.Border
	}
	return "none"
}

// GetDelimiter returns the configured delimiter, or tab.
func (c *Config) GetDelimiter() string {
	if c.Delimiter != "" {
		return c.Delimiter
	}
	return "\t"
}
