package config

import (
	"time"

	"github.com/alexisbeaulieu97/shayari/internal/generation"
	"github.com/alexisbeaulieu97/shayari/internal/poetry"
)

// DefaultTypewriterSpeed is the per-character delay of the typewriter effect.
const DefaultTypewriterSpeed = 50 * time.Millisecond

// Config is the application configuration, read from YAML and overridden by
// environment variables and flags.
type Config struct {
	Endpoint  string          `yaml:"endpoint" validate:"required,url"`
	Theme     string          `yaml:"theme" validate:"poetry_theme"`
	Timeout   time.Duration   `yaml:"timeout" validate:"gte=0"`
	Log       LogConfig       `yaml:"log"`
	Animation AnimationConfig `yaml:"animation"`
}

// LogConfig controls where and how verbosely the application logs.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// AnimationConfig toggles the decorative effects.
type AnimationConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TypewriterSpeed time.Duration `yaml:"typewriter_speed" validate:"gt=0"`
}

// Default returns the configuration used when nothing else is supplied.
func Default() Config {
	return Config{
		Endpoint: generation.DefaultEndpoint,
		Theme:    string(poetry.DefaultTheme),
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogPath(),
		},
		Animation: AnimationConfig{
			Enabled:         true,
			TypewriterSpeed: DefaultTypewriterSpeed,
		},
	}
}

// ThemeKey returns the configured theme as a poetry.ThemeKey.
func (c Config) ThemeKey() poetry.ThemeKey {
	if key, ok := poetry.ParseTheme(c.Theme); ok {
		return key
	}
	return poetry.DefaultTheme
}

// Overrides carries values set on the command line. Empty fields leave the
// configuration untouched.
type Overrides struct {
	Endpoint    string
	Theme       string
	LogLevel    string
	NoAnimation bool
}

// Apply layers o on top of c.
func (c *Config) Apply(o Overrides) {
	if o.Endpoint != "" {
		c.Endpoint = o.Endpoint
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.NoAnimation {
		c.Animation.Enabled = false
	}
}
