// File: klimakit/ppediag/config/builder.go
package config

import (
	"errors"
	"fmt"
	"os"
)

// Builder provides a fluent interface for resolving a schema against
// its configured sources.
type Builder struct {
	schema    Schema
	args      []string
	envPrefix string
	useEnv    bool
	file      string
	sources   []Source
}

// NewBuilder creates a builder over the given schema with the standard
// source precedence (CLI > env > file > default) and os.Args as the
// argument vector. With no env prefix and no file configured, the env
// and file layers stay inert: the default build is CLI plus defaults.
func NewBuilder(schema Schema) *Builder {
	return &Builder{
		schema:  schema,
		args:    os.Args[1:],
		sources: DefaultSources(),
	}
}

// WithArgs sets the command-line arguments to parse.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithEnvPrefix sets the environment variable prefix and activates the
// env layer.
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	b.useEnv = true
	return b
}

// WithFile sets the configuration file path.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithSources sets the precedence order for configuration sources,
// highest priority first.
func (b *Builder) WithSources(sources ...Source) *Builder {
	b.sources = sources
	return b
}

// envActive reports whether the env layer has anything to read: an
// explicit prefix, or a field with an explicit Env name.
func (b *Builder) envActive() bool {
	if b.useEnv {
		return true
	}
	for _, f := range b.schema.Fields {
		if f.Env != "" {
			return true
		}
	}
	return false
}

// Build validates the schema, layers the configured sources in reverse
// precedence order, and checks required fields. A missing config file
// surfaces as ErrConfigNotFound alongside otherwise valid values; every
// other failure is fatal.
func (b *Builder) Build() (*Values, error) {
	if err := b.schema.Validate(); err != nil {
		return nil, err
	}

	vals := newValues(b.schema)
	var softErr error

	// Lowest-priority source first, so later layers overwrite.
	for i := len(b.sources) - 1; i >= 0; i-- {
		switch b.sources[i] {
		case SourceDefault:
			applyDefaults(b.schema, vals)

		case SourceFile:
			if b.file == "" {
				continue
			}
			if err := loadFile(b.schema, b.file, vals); err != nil {
				if errors.Is(err, ErrConfigNotFound) {
					softErr = err
					continue
				}
				return nil, err
			}

		case SourceEnv:
			if !b.envActive() {
				continue
			}
			if err := loadEnv(b.schema, b.envPrefix, vals); err != nil {
				return nil, err
			}

		case SourceCLI:
			if err := parseArgs(b.schema, b.args, vals); err != nil {
				return nil, err
			}
		}
	}

	if err := checkRequired(b.schema, vals); err != nil {
		return nil, err
	}

	return vals, softErr
}

// BuildAndScan builds, binds the resolved values into the record, and
// runs the record's validation. ErrConfigNotFound is not fatal here:
// the record can proceed on CLI, env, and defaults.
func (b *Builder) BuildAndScan(rec Record) error {
	vals, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return err
	}

	if err := vals.Scan(rec); err != nil {
		return fmt.Errorf("failed to scan config into %q: %w", b.schema.Name, err)
	}

	return rec.Validate()
}
