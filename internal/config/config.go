// Package config loads the service and CLI settings: built-in defaults, then
// an optional YAML file, then MAPCOLOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mapcolor/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. MAPCOLOR_ADDR.
const EnvPrefix = "MAPCOLOR_"

// Config holds every tunable of the mapcolor binary.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `mapstructure:"addr" yaml:"addr"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// MaxSteps caps the trace length of one search.
	MaxSteps int `mapstructure:"max_steps" yaml:"max_steps"`

	// RequestTimeout bounds one HTTP or MCP solve.
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`

	// MaxColors caps num_colores accepted from remote callers.
	MaxColors int `mapstructure:"max_colors" yaml:"max_colors"`

	// MaxRegions caps the map size accepted from remote callers.
	MaxRegions int `mapstructure:"max_regions" yaml:"max_regions"`

	// CORSOrigin is sent as Access-Control-Allow-Origin.
	CORSOrigin string `mapstructure:"cors_origin" yaml:"cors_origin"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:           ":8000",
		LogLevel:       "info",
		LogFormat:      "text",
		MaxSteps:       1_000_000,
		RequestTimeout: 10 * time.Second,
		MaxColors:      16,
		MaxRegions:     500,
		CORSOrigin:     "*",
	}
}

// keys lists the mapstructure keys, used to look up environment overrides.
var keys = []string{
	"addr", "log_level", "log_format", "max_steps",
	"request_timeout", "max_colors", "max_regions", "cors_origin",
}

// Load reads the configuration from the process environment and the YAML file
// at path. An empty path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an injectable environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			var values map[string]interface{}
			if err = yaml.Unmarshal(raw, &values); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
			if err = decode(values, &cfg); err != nil {
				return cfg, fmt.Errorf("config: %s: %w", path, err)
			}
		}
	}

	env := make(map[string]interface{})
	for _, k := range keys {
		if v, ok := lookup(EnvPrefix + strings.ToUpper(k)); ok {
			env[k] = v
		}
	}
	if err := decode(env, &cfg); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}

	return cfg, nil
}

// decode overlays values onto cfg. Unknown keys are rejected; strings are
// weakly converted so "30s" and "500" work from YAML and env alike.
func decode(values map[string]interface{}, cfg *Config) error {
	if len(values) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}

	return dec.Decode(values)
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is empty"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("log_format %q is not text or json", c.LogFormat))
	}
	if c.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("max_steps must be positive, got %d", c.MaxSteps))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout))
	}
	if c.MaxColors <= 0 {
		errs = append(errs, fmt.Errorf("max_colors must be positive, got %d", c.MaxColors))
	}
	if c.MaxRegions <= 0 {
		errs = append(errs, fmt.Errorf("max_regions must be positive, got %d", c.MaxRegions))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}

	return nil
}
