// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/apsp/floyd"
	"github.com/katalvlaran/apsp/render"
)

const (
	// EnvPrefix is the default prefix of environment overrides.
	EnvPrefix = "FLOYD_"

	// ConfigPathEnv names an explicit YAML file; it wins over the search paths.
	ConfigPathEnv = "FLOYD_CONFIG_PATH"
)

// defaults is the lowest-priority layer. Its keys also drive the env mapping.
var defaults = map[string]any{
	"log.level":       "info",
	"log.format":      "text",
	"log.output":      "stderr",
	"log.file_path":   "logs/floyd.log",
	"log.max_size":    100,
	"log.max_backups": 3,
	"log.max_age":     7,
	"log.compress":    true,

	"solver.memo":          floyd.MemoDense.String(),
	"solver.memo_capacity": floyd.DefaultMemoCapacity,
	"solver.max_order":     0,

	"render.delimiter":  render.DefaultDelimiter,
	"render.inf_symbol": render.DefaultInfSymbol,
	"render.header":     false,
}

// envKeys maps "solver_memo_capacity" to "solver.memo_capacity" for every known
// key, so underscores inside field names survive the env transform.
var envKeys = func() map[string]string {
	m := make(map[string]string, len(defaults))
	for key := range defaults {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}

	return m
}()

// Loader reads configuration from the layered sources.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths replaces the YAML search paths.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithEnvPrefix replaces the FLOYD_ prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// NewLoader returns a Loader with the default search paths and env prefix.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"floyd.yaml",
			"config/floyd.yaml",
		},
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges defaults, the YAML file and the environment, then validates.
// A missing file is not an error; an unreadable or malformed one is.
func (l *Loader) Load() (*Config, error) {
	// 1) Defaults.
	if err := l.k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	// 2) Optional file.
	source, err := l.loadConfigFile()
	if err != nil {
		return nil, err
	}

	// 3) Environment overrides.
	if err = l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	// 4) Decode and validate.
	var cfg Config
	if err = l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	cfg.Source = source
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadConfigFile loads the first YAML file found and returns its path.
func (l *Loader) loadConfigFile() (string, error) {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return "", fmt.Errorf("config: load %s: %w", path, err)
		}

		return path, nil
	}

	for _, path := range l.configPaths {
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err = os.Stat(abs); err != nil {
			continue
		}
		if err = l.k.Load(file.Provider(abs), yaml.Parser()); err != nil {
			return "", fmt.Errorf("config: load %s: %w", abs, err)
		}

		return abs, nil
	}

	return "", nil
}

// loadEnv maps PREFIX_SECTION_FIELD variables onto section.field keys.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, any) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if mapped, ok := envKeys[key]; ok {
			return mapped, value
		}

		return strings.ReplaceAll(key, "_", "."), value
	}), nil)
}

// Load is NewLoader(opts...).Load().
func Load(opts ...LoaderOption) (*Config, error) {
	return NewLoader(opts...).Load()
}
