// File: klimakit/ppediag/logging/logging.go

// Package logging builds the process logger for diagnostics commands
// from the base record's verbosity, log file, and mode settings.
package logging

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Mode selects how the log file is opened.
type Mode string

const (
	// ModeWrite truncates the log file at setup.
	ModeWrite Mode = "w"
	// ModeAppend preserves existing log content.
	ModeAppend Mode = "a"
)

// ErrInvalidOptions indicates an Options combination that cannot be
// honored (bad verbosity, bad mode, truncation combined with rotation).
var ErrInvalidOptions = errors.New("invalid logging options")

// Rotation configures size-based log file rotation. Rotation always
// appends; it cannot be combined with ModeWrite.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Options configures Setup. The zero FilePath means console-only.
type Options struct {
	// Verbosity maps to a level: 0 warn, 1 info, 2 debug, 3 debug with
	// caller annotation.
	Verbosity int

	// FilePath, when set, adds a JSON file core next to the console core.
	FilePath string

	// Mode selects truncate or append for the file core.
	Mode Mode

	// Rotation, when non-nil, routes the file core through a rotating
	// writer instead of a plain file handle.
	Rotation *Rotation
}

// Setup builds a logger with a console core on stderr and, when a file
// path is configured, a JSON file core.
func Setup(opts Options) (*zap.Logger, error) {
	var level zapcore.Level
	switch opts.Verbosity {
	case 0:
		level = zapcore.WarnLevel
	case 1:
		level = zapcore.InfoLevel
	case 2, 3:
		level = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("%w: verbosity %d, must be 0, 1, 2, or 3", ErrInvalidOptions, opts.Verbosity)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			level,
		),
	}

	if opts.FilePath != "" {
		sink, err := fileSink(opts)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			sink,
			level,
		))
	}

	var zapOpts []zap.Option
	if opts.Verbosity >= 3 {
		zapOpts = append(zapOpts, zap.AddCaller())
	}

	return zap.New(zapcore.NewTee(cores...), zapOpts...), nil
}

// fileSink opens the file write syncer per mode and rotation settings.
func fileSink(opts Options) (zapcore.WriteSyncer, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeWrite
	}
	if mode != ModeWrite && mode != ModeAppend {
		return nil, fmt.Errorf("%w: mode %q, must be \"w\" or \"a\"", ErrInvalidOptions, mode)
	}

	if opts.Rotation != nil {
		if mode == ModeWrite {
			// lumberjack only appends; truncating a rotated log would
			// silently drop the rotation contract.
			return nil, fmt.Errorf("%w: rotation requires append mode", ErrInvalidOptions)
		}
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    opts.Rotation.MaxSizeMB,
			MaxBackups: opts.Rotation.MaxBackups,
			MaxAge:     opts.Rotation.MaxAgeDays,
		}), nil
	}

	flags := os.O_CREATE | os.O_WRONLY
	if mode == ModeAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(opts.FilePath, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", opts.FilePath, err)
	}

	return zapcore.Lock(f), nil
}
