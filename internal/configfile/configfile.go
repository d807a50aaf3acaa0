// Package configfile reads and writes the per-checkout evict
// configuration stored under the tracker directory.
package configfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the settings file inside the tracker directory.
const ConfigFileName = "config.yaml"

// Config holds per-checkout settings. All fields are optional; commands
// fall back to environment variables and git identity when unset.
type Config struct {
	Author string `yaml:"author,omitempty"`
	Editor string `yaml:"editor,omitempty"`
}

// ConfigPath returns the settings file path for a tracker directory.
func ConfigPath(evictDir string) string {
	return filepath.Join(evictDir, ConfigFileName)
}

// Load reads the config from evictDir. A missing or unparsable file
// yields an empty config rather than an error.
func Load(evictDir string) *Config {
	data, err := os.ReadFile(ConfigPath(evictDir))
	if err != nil {
		return &Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &Config{}
	}
	return &cfg
}

// Save writes the config back to evictDir.
func (c *Config) Save(evictDir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(ConfigPath(evictDir), data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
