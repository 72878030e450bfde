// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/itDaru/toolcage/pkg/manager"
	"github.com/itDaru/toolcage/pkg/store"
)

// Config holds toolcage configuration.
type Config struct {
	WorkDir string `yaml:"work_dir"`
	Elevate string `yaml:"elevate"`
	Debug   bool   `yaml:"debug"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		WorkDir: defaultWorkDir(),
		Elevate: manager.DefaultElevate,
		Debug:   false,
	}
}

// LoadConfig loads configuration from file. An empty path means the
// default location; a missing file means defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := configPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to file, defaulting the path the same
// way LoadConfig does.
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := configPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func configPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "toolcage", "config.yaml"), nil
}

func defaultWorkDir() string {
	if dir := os.Getenv("TOOLCAGE_WORKDIR"); dir != "" {
		return dir
	}
	return store.DefaultDir
}
