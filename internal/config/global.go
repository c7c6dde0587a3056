// Package config loads the optional regsw user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/regsw/internal/pkgconfig"
	"github.com/donaldgifford/regsw/internal/probe"
)

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// GlobalConfig represents the user's regsw configuration file.
type GlobalConfig struct {
	// PackageManager is the executable whose registry is managed (npm, pnpm, yarn).
	PackageManager string `yaml:"package_manager"`
	// PingTimeout bounds a single latency probe.
	PingTimeout time.Duration `yaml:"ping_timeout"`
}

// DefaultConfigDir returns the default configuration directory, respecting XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "regsw")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "regsw")
	}

	return filepath.Join(home, ".config", "regsw")
}

// DefaultConfigPath returns the config file inside DefaultConfigDir.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), FileName)
}

// LoadGlobalConfig reads the global config from the given path.
// If the file doesn't exist, it returns a config holding the defaults (no error).
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	cfg := &GlobalConfig{}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()

			return cfg, nil
		}

		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.PingTimeout < 0 {
		return nil, fmt.Errorf("config %s: ping_timeout must not be negative", path)
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *GlobalConfig) applyDefaults() {
	if c.PackageManager == "" {
		c.PackageManager = pkgconfig.DefaultBinary
	}

	if c.PingTimeout == 0 {
		c.PingTimeout = probe.DefaultTimeout
	}
}
