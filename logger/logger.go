// SPDX-License-Identifier: MIT

// Package logger builds the *slog.Logger used by the floyd-demo binary.
//
// Library packages never log on their own; they accept a *slog.Logger through
// an option (floyd.WithLogger) and discard output by default.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFilePath is used when Output is "file" and FilePath is empty.
const DefaultFilePath = "logs/floyd.log"

var (
	// ErrUnknownLevel indicates a level name other than debug, info, warn, error.
	ErrUnknownLevel = errors.New("logger: unknown level")

	// ErrUnknownFormat indicates a format other than json or text.
	ErrUnknownFormat = errors.New("logger: unknown format")

	// ErrUnknownOutput indicates an output other than stdout, stderr or file.
	ErrUnknownOutput = errors.New("logger: unknown output")
)

// Config describes where and how log records are written.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSize    int // MB before rotation
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// ParseLevel maps a level name to slog.Level. The empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// New builds a logger from cfg. The returned closer releases the rotating
// file for Output "file" and is a no-op otherwise; it is never nil.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	w, closer, err := openOutput(cfg)
	if err != nil {
		return nil, nil, err
	}

	h, err := newHandler(cfg, w)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	return slog.New(h), closer, nil
}

// openOutput resolves cfg.Output into a writer.
func openOutput(cfg Config) (io.Writer, io.Closer, error) {
	switch cfg.Output {
	case "stdout", "":
		return os.Stdout, nopCloser{}, nil
	case "stderr":
		return os.Stderr, nopCloser{}, nil
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = DefaultFilePath
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logger: create log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}

		return lj, lj, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOutput, cfg.Output)
	}
}

// newHandler picks the JSON or text handler. Source locations are added at debug level.
func newHandler(cfg Config, w io.Writer) (slog.Handler, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	switch cfg.Format {
	case "json", "":
		return slog.NewJSONHandler(w, opts), nil
	case "text":
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
