package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/shayari/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Environment variables read on top of the config file.
const (
	EnvEndpoint = "SHAYARI_ENDPOINT"
	EnvTheme    = "SHAYARI_THEME"
	EnvLogLevel = "SHAYARI_LOG_LEVEL"
	EnvLogFile  = "SHAYARI_LOG_FILE"
	EnvTimeout  = "SHAYARI_TIMEOUT"
)

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path of the YAML file. Empty means DefaultPath, which may be absent.
	Path string
	// DotEnv names an optional .env file whose values sit beneath the
	// process environment.
	DotEnv string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	Overrides Overrides
}

// Load builds the effective configuration: defaults, then the YAML file, then
// environment variables, then overrides. The result is validated.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.Path
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if err := parseInto(path, &cfg); err != nil {
		var parseErr *apperrors.ParseError
		if explicit || !errors.As(err, &parseErr) || !errors.Is(parseErr.Err, fs.ErrNotExist) {
			return nil, err
		}
	}

	lookup, err := envLookup(opts)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return nil, err
	}

	cfg.Apply(opts.Overrides)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return apperrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func envLookup(opts LoadOptions) (func(string) (string, bool), error) {
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if opts.DotEnv == "" {
		return lookup, nil
	}

	values, err := godotenv.Read(opts.DotEnv)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, apperrors.NewParseError(opts.DotEnv, 0, err)
	}

	return func(key string) (string, bool) {
		if value, ok := lookup(key); ok {
			return value, true
		}
		value, ok := values[key]
		return value, ok
	}, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if value, ok := lookup(EnvEndpoint); ok && value != "" {
		cfg.Endpoint = value
	}
	if value, ok := lookup(EnvTheme); ok && value != "" {
		cfg.Theme = value
	}
	if value, ok := lookup(EnvLogLevel); ok && value != "" {
		cfg.Log.Level = value
	}
	if value, ok := lookup(EnvLogFile); ok && value != "" {
		cfg.Log.File = value
	}
	if value, ok := lookup(EnvTimeout); ok && value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return apperrors.NewValidationError("timeout", fmt.Sprintf("%s: %v", EnvTimeout, err), err)
		}
		cfg.Timeout = timeout
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
