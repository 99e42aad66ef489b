// File: klimakit/ppediag/config/base.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/klimakit/ppediag/logging"
)

// BaseSchema declares the fields shared by every diagnostics command:
// verbosity, an optional log file, and the log file open mode.
func BaseSchema() Schema {
	return Schema{
		Name: "BaseConfig",
		Doc:  "Shared logging and verbosity settings for diagnostics commands.",
		Fields: []FieldSpec{
			{
				Name:    "verbose",
				Kind:    KindInt,
				Default: 0,
				Help:    "Increase verbosity level (0: WARNING, 1: INFO, 2: INFO_DETAILED, 3: DEBUG)",
			},
			{
				Name:     "log_file",
				Kind:     KindPath,
				Optional: true,
				Help:     "Path to the log file where logs will be written. If unset, logs are not saved to a file.",
			},
			{
				Name:    "log_mode",
				Kind:    KindString,
				Default: "w",
				Help:    "Mode for opening the log file ('w' for write, 'a' for append)",
			},
		},
	}
}

// Base is the concrete base record. Subtypes embed it with
// `toml:",squash"` and extend BaseSchema with their own fields.
type Base struct {
	Verbose int    `toml:"verbose"`
	LogFile string `toml:"log_file"`
	LogMode string `toml:"log_mode"`
}

// ConfigSchema implements Record.
func (b *Base) ConfigSchema() Schema {
	return BaseSchema()
}

// Validate checks the field constraints and, when a log file is
// configured, ensures its parent directory and the file itself exist.
// The file touch is the record's one external side effect; log content
// is written by the logging setup, not here.
func (b *Base) Validate() error {
	switch b.Verbose {
	case 0, 1, 2, 3:
	default:
		return fmt.Errorf("%w: verbosity level %d, must be 0, 1, 2, or 3", ErrInvalidValue, b.Verbose)
	}

	if b.LogFile != "" {
		if _, err := os.Stat(b.LogFile); os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(b.LogFile), 0755); err != nil {
				return fmt.Errorf("failed to create log directory for '%s': %w", b.LogFile, err)
			}
			f, err := os.OpenFile(b.LogFile, os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("failed to create log file '%s': %w", b.LogFile, err)
			}
			f.Close()
		}
	}

	if b.LogMode != "w" && b.LogMode != "a" {
		return fmt.Errorf("%w: log mode %q, must be \"w\" or \"a\"", ErrInvalidValue, b.LogMode)
	}

	return nil
}

// SetupLogging configures the process logger from the record's fields
// and installs it globally. The extension point the original reserves;
// subtypes override when they need a different sink.
func (b *Base) SetupLogging() error {
	logger, err := logging.Setup(logging.Options{
		Verbosity: b.Verbose,
		FilePath:  b.LogFile,
		Mode:      logging.Mode(b.LogMode),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	zap.ReplaceGlobals(logger)
	return nil
}

// Derived implements Deriver with the no-op base contract: the record
// is its own derived configuration.
func (b *Base) Derived() (Record, error) {
	return b, nil
}
