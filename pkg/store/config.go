package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/flashq/pkg/dataset"
	"tableflip.dev/flashq/pkg/manifest"
)

// Config holds flashq settings. Values come from .flashq.yaml, FLASHQ_*
// environment variables, and finally command-line flags.
type Config struct {
	// Data is a local directory or an http(s) base URL holding datasets.
	Data string `mapstructure:"data"`
	// Manifest is the manifest file name, relative to Data unless absolute.
	Manifest string `mapstructure:"manifest"`
	// Prefs is the directory of the display-name preference store.
	Prefs string `mapstructure:"prefs"`
	// Mode is the default quiz mode.
	Mode string `mapstructure:"mode"`
	// Seed fixes random draws when non-zero.
	Seed int64 `mapstructure:"seed"`
	// SwipeThreshold is the drag distance, in cells, that counts as a swipe.
	SwipeThreshold int `mapstructure:"swipe_threshold"`
}

// LoadConfig reads configuration. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("data", "./data")
	v.SetDefault("manifest", manifest.FileName)
	v.SetDefault("prefs", "~/.flashq/prefs")
	v.SetDefault("mode", "sequential")
	v.SetDefault("seed", 0)
	v.SetDefault("swipe_threshold", 4)

	v.SetConfigName(".flashq") // .yaml is implicit
	v.SetEnvPrefix("FLASHQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("FLASHQ_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("store: unmarshal config: %w", err)
	}
	return cfg, nil
}

// PrefsPath returns the preference directory with ~ expanded.
func (c *Config) PrefsPath() (string, error) {
	p, err := homedir.Expand(c.Prefs)
	if err != nil {
		return "", fmt.Errorf("store: expand %s: %w", c.Prefs, err)
	}
	return p, nil
}

// DataLocation returns Data with ~ expanded for local directories.
func (c *Config) DataLocation() string {
	if dataset.IsRemote(c.Data) {
		return c.Data
	}
	if p, err := homedir.Expand(c.Data); err == nil {
		return p
	}
	return c.Data
}

// ManifestPath returns the local manifest file location. It is empty for
// remote data.
func (c *Config) ManifestPath() string {
	if dataset.IsRemote(c.Data) {
		return ""
	}
	if filepath.IsAbs(c.Manifest) {
		return c.Manifest
	}
	name := c.Manifest
	if name == "" {
		name = manifest.FileName
	}
	return filepath.Join(c.DataLocation(), name)
}
