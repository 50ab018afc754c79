// Package config loads ~/.cubealg/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	KeyDBPath      = "db_path"
	KeyCatalogs    = "catalogs"
	KeyOrientation = "orientation"
	KeyInterval    = "interval"
	KeyColor       = "color"

	defaultOrientation = "x2"
	defaultInterval    = 500 * time.Millisecond
	defaultColor       = "auto"
)

// ErrInvalidConfig is returned for values that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid value")

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# cubealg configuration

# Practice log database (default: <config dir>/cubealg.db)
# db_path:

# Extra case files, merged after the built-in catalog. ** globs allowed.
catalogs: []

# Moves that hold the cube before a demo starts.
orientation: x2

# Time between frames when playing an algorithm.
interval: 500ms

# auto, always or never
color: auto
`

// Config is the resolved configuration.
type Config struct {
	Dir         string
	DBPath      string
	Catalogs    []string
	Orientation string
	Interval    time.Duration
	Color       string
}

// Load reads config.yaml from dir, creating the directory and a default
// file on first run. A missing file is not an error.
func Load(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(dir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyDBPath, filepath.Join(dir, "cubealg.db"))
	v.SetDefault(KeyCatalogs, []string{})
	v.SetDefault(KeyOrientation, defaultOrientation)
	v.SetDefault(KeyInterval, defaultInterval)
	v.SetDefault(KeyColor, defaultColor)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix("CUBEALG")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Dir:         dir,
		DBPath:      v.GetString(KeyDBPath),
		Catalogs:    v.GetStringSlice(KeyCatalogs),
		Orientation: v.GetString(KeyOrientation),
		Interval:    v.GetDuration(KeyInterval),
		Color:       v.GetString(KeyColor),
	}

	// Relative catalog patterns are taken from the config directory.
	for i, p := range cfg.Catalogs {
		if !filepath.IsAbs(p) {
			cfg.Catalogs[i] = filepath.Join(dir, p)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalidConfig, c.Color)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in dir.
func ensureDefaultConfigFile(dir string) error {
	path := filepath.Join(dir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
