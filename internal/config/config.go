// Package config loads orderbench settings from an optional YAML file and
// ORDERBENCH_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/orderbench"
)

// envPrefix is the environment variable prefix for every setting.
const envPrefix = "ORDERBENCH"

// Defaults.
const (
	DefaultOutputDir   = "./target"
	DefaultLogLevel    = "info"
	DefaultColor       = "auto"
	DefaultChartWidth  = 72
	DefaultChartHeight = 20
)

// Config holds every orderbench setting.
type Config struct {
	Bins      int         `mapstructure:"bins" yaml:"bins"`
	OutputDir string      `mapstructure:"output_dir" yaml:"output_dir"`
	Log       LogConfig   `mapstructure:"log" yaml:"log"`
	Chart     ChartConfig `mapstructure:"chart" yaml:"chart"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug|info|warn|error
	Color string `mapstructure:"color" yaml:"color"` // auto|always|never
}

// ChartConfig sizes the terminal chart canvas in cells.
type ChartConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// newViper builds a Viper instance with YAML type, ORDERBENCH_ env binding
// ("log.level" → ORDERBENCH_LOG_LEVEL) and every default registered so that
// env overrides apply even without a config file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("bins", orderbench.DefaultBins)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.color", DefaultColor)
	v.SetDefault("chart.width", DefaultChartWidth)
	v.SetDefault("chart.height", DefaultChartHeight)
	return v
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Bins:      orderbench.DefaultBins,
		OutputDir: DefaultOutputDir,
		Log:       LogConfig{Level: DefaultLogLevel, Color: DefaultColor},
		Chart:     ChartConfig{Width: DefaultChartWidth, Height: DefaultChartHeight},
	}
}

// Load reads configPath (skipped when empty), merges ORDERBENCH_* environment
// overrides over the defaults and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Color = strings.ToLower(strings.TrimSpace(cfg.Log.Color))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks every field for a usable value.
func (c *Config) Validate() error {
	if c.Bins <= 0 {
		return fmt.Errorf("bins must be positive, got %d", c.Bins)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("log.color must be auto, always or never, got %q", c.Log.Color)
	}
	if c.Chart.Width < 20 || c.Chart.Height < 5 {
		return fmt.Errorf("chart must be at least 20×5 cells, got %d×%d", c.Chart.Width, c.Chart.Height)
	}
	return nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("config: marshal: %w", err)
	}
	return string(out), nil
}
