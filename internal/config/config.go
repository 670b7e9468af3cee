package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the CLI.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Color     string `yaml:"color"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: LogFormatText,
		Color:     ColorAuto,
	}
}

// FromEnv overlays environment variables on Default.
func FromEnv() Config {
	return Default().merge(Config{
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFormat: os.Getenv(EnvLogFormat),
		Color:     os.Getenv(EnvColor),
	})
}

// LoadFile overlays the YAML file at path on base. Keys missing from the
// file keep their value from base.
func LoadFile(base Config, path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	var file Config
	if err := yaml.Unmarshal(content, &file); err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	cfg := base.merge(file)
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Override returns c with every non-empty field of o applied.
func (c Config) Override(o Config) Config {
	return c.merge(o)
}

func (c Config) merge(o Config) Config {
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
	if o.Color != "" {
		c.Color = o.Color
	}
	return c
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
