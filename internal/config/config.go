// Package config loads the nxcube CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable CLI defaults.
type Config struct {
	// Size is the default cube size when --size is not given.
	Size int `yaml:"size"`
	// DBPath is the session database location.
	DBPath string `yaml:"db_path"`
	// ScrambleMoves is the default scramble length.
	ScrambleMoves int `yaml:"scramble_moves"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Size:          3,
		ScrambleMoves: 20,
	}
}

// Load reads the configuration. Search order: the custom path if given,
// then ~/.nxcube/config.yaml, then ./nxcube.yaml, then the built-in
// defaults. Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), "nxcube.yaml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nxcube", "config.yaml")
}
