// File: klimakit/ppediag/config/loader.go
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source represents a configuration source, used to define load precedence.
type Source string

const (
	// SourceDefault represents declared default values.
	SourceDefault Source = "default"
	// SourceFile represents values loaded from a configuration file.
	SourceFile Source = "file"
	// SourceEnv represents values loaded from environment variables.
	SourceEnv Source = "env"
	// SourceCLI represents values loaded from command-line arguments.
	SourceCLI Source = "cli"
)

// DefaultSources is the standard precedence order, highest priority first.
func DefaultSources() []Source {
	return []Source{SourceCLI, SourceEnv, SourceFile, SourceDefault}
}

// applyDefaults installs the declared default of every non-required
// field. Optional fields without an explicit default get no entry: the
// absent optional resolves to "none".
func applyDefaults(schema Schema, vals *Values) {
	for _, f := range schema.Fields {
		if def, ok := f.defaultValue(); ok {
			vals.set(f.Name, def, SourceDefault)
		}
	}
}

// parseArgs scans command-line arguments against the schema's flag
// surface. Both "--flag value" and "--flag=value" forms are accepted.
// Bool fields are zero-argument toggles: a bare flag flips the declared
// default; an explicit "--flag=true|false" sets the value directly.
func parseArgs(schema Schema, args []string, vals *Values) error {
	flags := schema.flagIndex()

	i := 0
	for i < len(args) {
		arg := args[i]

		if arg == "--help" || arg == "-h" {
			return ErrHelp
		}

		if !strings.HasPrefix(arg, "--") {
			return fmt.Errorf("%w: unexpected argument %q", ErrBadValue, arg)
		}

		content := strings.TrimPrefix(arg, "--")
		if content == "" {
			// "--" separator: everything after it is positional, and
			// positionals are not part of the surface.
			if i+1 < len(args) {
				return fmt.Errorf("%w: unexpected argument %q", ErrBadValue, args[i+1])
			}
			return nil
		}

		var name, valueStr string
		hasValue := false

		if eq := strings.IndexByte(content, '='); eq >= 0 {
			name = content[:eq]
			valueStr = content[eq+1:]
			hasValue = true
			i++
		} else {
			name = content
			i++
		}

		spec, known := flags[name]
		if !known {
			return fmt.Errorf("%w: --%s", ErrUnknownFlag, name)
		}

		if spec.Kind == KindBool {
			if !hasValue {
				// Bare toggle: flip the declared default.
				def := false
				if d, ok := spec.defaultValue(); ok {
					def, _ = d.(bool)
				}
				vals.set(spec.Name, !def, SourceCLI)
				continue
			}
			b, err := spec.Kind.parse(valueStr)
			if err != nil {
				return fmt.Errorf("%w: --%s: %v", ErrBadValue, name, err)
			}
			vals.set(spec.Name, b, SourceCLI)
			continue
		}

		if !hasValue {
			if i >= len(args) || strings.HasPrefix(args[i], "--") {
				return fmt.Errorf("%w: --%s expects a value", ErrBadValue, name)
			}
			valueStr = args[i]
			i++
		}

		parsed, err := spec.Kind.parse(valueStr)
		if err != nil {
			return fmt.Errorf("%w: --%s: %v", ErrBadValue, name, err)
		}
		vals.set(spec.Name, parsed, SourceCLI)
	}

	return nil
}

// envName derives the environment variable for a field: the explicit
// FieldSpec.Env when set, otherwise prefix + uppercased field name.
func envName(prefix string, f FieldSpec) string {
	if f.Env != "" {
		return f.Env
	}
	if prefix == "" {
		return ""
	}
	return prefix + strings.ToUpper(f.Name)
}

// loadEnv reads environment variables for every field that maps to one.
// Values parse per the field's kind; parse failures are joined so a
// single bad variable does not mask others.
func loadEnv(schema Schema, prefix string, vals *Values) error {
	var envErrors []error

	for _, f := range schema.Fields {
		name := envName(prefix, f)
		if name == "" {
			continue
		}
		raw, exists := os.LookupEnv(name)
		if !exists {
			continue
		}
		parsed, err := f.Kind.parse(raw)
		if err != nil {
			envErrors = append(envErrors, fmt.Errorf("%w: %s: %v", ErrBadValue, name, err))
			continue
		}
		vals.set(f.Name, parsed, SourceEnv)
	}

	return errors.Join(envErrors...)
}

// loadFile reads a configuration file and applies the keys that match
// schema field names. Unknown keys are ignored. The format is chosen by
// extension first, then by content sniffing.
func loadFile(schema Schema, path string, vals *Values) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	fileConfig := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &fileConfig); err != nil {
			return fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&fileConfig); err != nil {
			return fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	default:
		return fmt.Errorf("unable to determine config format for file '%s'", path)
	}

	for _, f := range schema.Fields {
		raw, exists := fileConfig[f.Name]
		if !exists {
			continue
		}
		if num, ok := raw.(json.Number); ok {
			raw = num.String()
		}
		coerced, err := f.Kind.coerce(raw)
		if err != nil {
			return fmt.Errorf("%w: field %q in '%s': %v", ErrBadValue, f.Name, path, err)
		}
		vals.set(f.Name, coerced, SourceFile)
	}

	return nil
}

// checkRequired verifies that every required field received a value
// from some source.
func checkRequired(schema Schema, vals *Values) error {
	var missing []error
	for _, f := range schema.Fields {
		if !f.Required() {
			continue
		}
		if _, ok := vals.Get(f.Name); !ok {
			missing = append(missing, fmt.Errorf("%w: %s", ErrMissingRequired, f.Flag()))
		}
	}
	return errors.Join(missing...)
}

// detectFileFormat determines format from file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing.
func detectFormatFromContent(data []byte) string {
	// JSON first (strict), then YAML (its superset), TOML last.
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
