// SPDX-License-Identifier: MIT

// Package config loads the settings of the floyd-demo binary.
//
// Sources, lowest priority first:
//
//  1. built-in defaults;
//  2. a YAML file (FLOYD_CONFIG_PATH, else the first existing search path);
//  3. environment variables with the FLOYD_ prefix, e.g. FLOYD_SOLVER_MEMO=bounded.
//
// Library packages do not read configuration; Config converts itself into
// their functional options.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/apsp/floyd"
	"github.com/katalvlaran/apsp/logger"
	"github.com/katalvlaran/apsp/render"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full configuration tree.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Solver SolverConfig `koanf:"solver"`
	Render RenderConfig `koanf:"render"`

	// Source is the YAML file that was loaded, or "" if none was found.
	Source string `koanf:"-"`
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// SolverConfig selects the evaluator strategy.
type SolverConfig struct {
	Memo         string `koanf:"memo"` // dense, bounded, none
	MemoCapacity int    `koanf:"memo_capacity"`
	MaxOrder     int    `koanf:"max_order"` // 0 = mode default
}

// RenderConfig controls matrix printing.
type RenderConfig struct {
	Delimiter string `koanf:"delimiter"`
	InfSymbol string `koanf:"inf_symbol"`
	Header    bool   `koanf:"header"`
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: unknown %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}
	switch c.Log.Output {
	case "stdout", "stderr", "file":
	default:
		errs = append(errs, fmt.Sprintf("log.output must be stdout, stderr or file, got %q", c.Log.Output))
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		errs = append(errs, "log rotation limits must be non-negative")
	}

	if _, err := floyd.ParseMemoMode(c.Solver.Memo); err != nil {
		errs = append(errs, fmt.Sprintf("solver.memo must be dense, bounded or none, got %q", c.Solver.Memo))
	}
	if c.Solver.MemoCapacity <= 0 {
		errs = append(errs, fmt.Sprintf("solver.memo_capacity must be positive, got %d", c.Solver.MemoCapacity))
	}
	if c.Solver.MaxOrder < 0 {
		errs = append(errs, fmt.Sprintf("solver.max_order must be non-negative, got %d", c.Solver.MaxOrder))
	}

	if c.Render.Delimiter == "" {
		errs = append(errs, "render.delimiter is required")
	}
	if c.Render.InfSymbol == "" {
		errs = append(errs, "render.inf_symbol is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}

// LoggerConfig converts the log section for logger.New.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:      c.Log.Level,
		Format:     c.Log.Format,
		Output:     c.Log.Output,
		FilePath:   c.Log.FilePath,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
		Compress:   c.Log.Compress,
	}
}

// SolverOptions converts the solver section into floyd options.
// Call Validate first: the floyd option constructors panic on bad values.
func (c *Config) SolverOptions() ([]floyd.Option, error) {
	mode, err := floyd.ParseMemoMode(c.Solver.Memo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return []floyd.Option{
		floyd.WithMemoMode(mode),
		floyd.WithMemoCapacity(c.Solver.MemoCapacity),
		floyd.WithMaxOrder(c.Solver.MaxOrder),
	}, nil
}

// RenderOptions converts the render section into render options.
func (c *Config) RenderOptions() []render.Option {
	opts := []render.Option{
		render.WithDelimiter(c.Render.Delimiter),
		render.WithInfSymbol(c.Render.InfSymbol),
	}
	if c.Render.Header {
		opts = append(opts, render.WithHeader())
	}

	return opts
}
