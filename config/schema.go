// File: klimakit/ppediag/config/schema.go
package config

import "fmt"

// Schema is an ordered sequence of FieldSpecs plus record identity.
// Declaration order is output order everywhere (help, describe, debug).
type Schema struct {
	// Name identifies the record in help and describe headers.
	Name string

	// Doc is a one-line description shown at the top of usage output.
	Doc string

	// Fields in declaration order.
	Fields []FieldSpec
}

// Validate checks the schema invariants: every field is individually
// valid, and names and derived flags are unique.
func (s Schema) Validate() error {
	names := make(map[string]bool, len(s.Fields))
	flags := make(map[string]bool, len(s.Fields))

	for _, f := range s.Fields {
		if err := f.validate(); err != nil {
			return err
		}
		if names[f.Name] {
			return fmt.Errorf("%w: duplicate field name %q", ErrInvalidSchema, f.Name)
		}
		names[f.Name] = true

		flag := f.Flag()
		if flags[flag] {
			return fmt.Errorf("%w: field %q collides on flag %s", ErrInvalidSchema, f.Name, flag)
		}
		flags[flag] = true
	}
	return nil
}

// Extend returns a new schema with the given fields appended, under a
// new record name. The subtype extension point: the extended schema is
// re-validated when used, so duplicate names surface at build time.
func (s Schema) Extend(name string, fields ...FieldSpec) Schema {
	out := Schema{
		Name:   name,
		Doc:    s.Doc,
		Fields: make([]FieldSpec, 0, len(s.Fields)+len(fields)),
	}
	out.Fields = append(out.Fields, s.Fields...)
	out.Fields = append(out.Fields, fields...)
	return out
}

// Field returns the spec for the named field.
func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// flagIndex maps derived CLI flags (without the "--" prefix) back to
// their specs, for the argument scanner.
func (s Schema) flagIndex() map[string]FieldSpec {
	idx := make(map[string]FieldSpec, len(s.Fields))
	for _, f := range s.Fields {
		idx[f.Flag()[2:]] = f
	}
	return idx
}
