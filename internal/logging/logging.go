// SPDX-License-Identifier: MIT

// Package logging builds the structured zap logger used by the qtp command
// and the sweep driver. Library packages never log; they return errors.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output destinations understood besides a file path.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Encoding formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidConfig indicates an unusable logging configuration.
var ErrInvalidConfig = errors.New("logging: invalid configuration")

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is the output format (console, json).
	Format string `yaml:"format"`

	// Output is the destination (stdout, stderr, file path).
	Output string `yaml:"output"`

	// Development enables development mode (stack traces on warnings).
	Development bool `yaml:"development"`
}

// DefaultConfig logs warnings and above to stderr, so the report on stdout
// stays clean.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: FormatConsole,
		Output: OutputStderr,
	}
}

// Validate checks the level and format names.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("%w: level %q", ErrInvalidConfig, c.Level)
	}
	if c.Format != FormatConsole && c.Format != FormatJSON {
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: empty output", ErrInvalidConfig)
	}

	return nil
}

// New builds a logger for cfg. The returned close function flushes the
// logger and releases a log file, if one was opened.
func New(cfg Config) (*zap.Logger, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		ws     zapcore.WriteSyncer
		closer io.Closer
	)
	switch cfg.Output {
	case OutputStdout:
		ws = zapcore.AddSync(os.Stdout)
	case OutputStderr:
		ws = zapcore.AddSync(os.Stderr)
	default:
		f, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", cfg.Output, err)
		}
		ws, closer = zapcore.AddSync(f), f
	}

	logger := zap.New(newCore(cfg, ws), options(cfg)...)
	closeFn := func() {
		_ = logger.Sync()
		if closer != nil {
			_ = closer.Close()
		}
	}

	return logger, closeFn, nil
}

// NewWriter builds a logger for cfg that writes to w, ignoring cfg.Output.
func NewWriter(cfg Config, w io.Writer) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return zap.New(newCore(cfg, zapcore.AddSync(w)), options(cfg)...), nil
}

func newCore(cfg Config, ws zapcore.WriteSyncer) zapcore.Core {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == FormatConsole {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	return zapcore.NewCore(encoder, ws, level)
}

func options(cfg Config) []zap.Option {
	if cfg.Development {
		return []zap.Option{zap.Development(), zap.AddCaller(), zap.AddStacktrace(zapcore.WarnLevel)}
	}

	return []zap.Option{zap.AddCaller()}
}
