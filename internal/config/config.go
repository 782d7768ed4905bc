// Package config loads an optional YAML settings file for the CLI
// driver. CLI flags always take precedence over a loaded config's
// values; config exists only to let a caller avoid repeating the same
// flags on every invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors cmd/aoicover's flag surface so a settings file can
// supply defaults for any of them.
type Config struct {
	ScenesPath string  `yaml:"scenesPath"`
	AOIsPath   string  `yaml:"aoisPath"`
	Delta      float64 `yaml:"delta"`
	Mode       string  `yaml:"mode"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return c, nil
}
