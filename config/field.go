// File: klimakit/ppediag/config/field.go
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the value types a configuration field may declare.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDuration
	KindPath
)

// String returns the human-readable type name used by help and describe output.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDuration:
		return "duration"
	case KindPath:
		return "path"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// parse converts a CLI or environment string into the kind's canonical
// Go value (string, int, float64, bool, time.Duration, string for paths).
func (k Kind) parse(s string) (any, error) {
	switch k {
	case KindString, KindPath:
		return s, nil
	case KindInt:
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", s)
		}
		return int(i), nil
	case KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", s)
		}
		return f, nil
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("not a boolean: %q", s)
		}
		return b, nil
	case KindDuration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("not a duration: %q", s)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unsupported kind %v", k)
	}
}

// coerce converts a file-sourced or default value (e.g. a TOML int64)
// into the kind's canonical value.
func (k Kind) coerce(v any) (any, error) {
	switch k {
	case KindString, KindPath:
		switch t := v.(type) {
		case string:
			return t, nil
		case []byte:
			return string(t), nil
		case fmt.Stringer:
			return t.String(), nil
		}
	case KindInt:
		switch t := v.(type) {
		case int:
			return t, nil
		case int64:
			return int(t), nil
		case uint64:
			return int(t), nil
		case float64:
			return int(t), nil
		case string:
			return k.parse(t)
		}
	case KindFloat:
		switch t := v.(type) {
		case float64:
			return t, nil
		case float32:
			return float64(t), nil
		case int:
			return float64(t), nil
		case int64:
			return float64(t), nil
		case string:
			return k.parse(t)
		}
	case KindBool:
		switch t := v.(type) {
		case bool:
			return t, nil
		case string:
			return k.parse(t)
		}
	case KindDuration:
		switch t := v.(type) {
		case time.Duration:
			return t, nil
		case int64:
			return time.Duration(t), nil
		case string:
			return k.parse(t)
		}
	}
	return nil, fmt.Errorf("cannot use %T (%v) as %v", v, v, k)
}

// FieldSpec describes one configuration field of a schema.
type FieldSpec struct {
	// Name is the snake_case field identifier, unique within a schema.
	Name string

	// Kind is the declared value type.
	Kind Kind

	// Optional marks an optional-of-T field: never required, and an
	// absent value resolves to "none" (no entry in the result set).
	Optional bool

	// Default is the fallback value. nil is the required sentinel,
	// except for Bool and Optional fields.
	Default any

	// Help is free-form help text, may be empty.
	Help string

	// Env overrides the derived environment variable name.
	Env string
}

// Flag returns the CLI flag for the field: "--" plus the name with
// underscores replaced by hyphens.
func (f FieldSpec) Flag() string {
	return "--" + strings.ReplaceAll(f.Name, "_", "-")
}

// Required reports whether the field must be supplied by some source.
// Bool fields default to false and optional fields default to none,
// so neither is ever required.
func (f FieldSpec) Required() bool {
	return f.Default == nil && !f.Optional && f.Kind != KindBool
}

// TypeName returns the declared type for help/describe listings.
func (f FieldSpec) TypeName() string {
	if f.Optional {
		return "optional[" + f.Kind.String() + "]"
	}
	return f.Kind.String()
}

// validate checks name legality and default/kind agreement.
func (f FieldSpec) validate() error {
	if !isValidName(f.Name) {
		return fmt.Errorf("%w: illegal field name %q", ErrInvalidSchema, f.Name)
	}
	if f.Default != nil {
		if _, err := f.Kind.coerce(f.Default); err != nil {
			return fmt.Errorf("%w: field %q default: %v", ErrInvalidSchema, f.Name, err)
		}
	}
	return nil
}

// defaultValue returns the canonical default for a non-required field,
// or (nil, false) when the field has none (optional, or required).
func (f FieldSpec) defaultValue() (any, bool) {
	if f.Default != nil {
		v, err := f.Kind.coerce(f.Default)
		if err != nil {
			return nil, false
		}
		return v, true
	}
	if f.Kind == KindBool && !f.Optional {
		return false, true
	}
	return nil, false
}

// isValidName checks that a field name is a valid bare key: ASCII
// letters, digits, underscores, and dashes, non-empty, no dots.
func isValidName(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}
