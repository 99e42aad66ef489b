// File: klimakit/ppediag/config/cli.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// FromArgs parses the given argument vector against the record's schema,
// binds the result into the record, and validates it. This is the
// programmatic form of command-line construction: one flag per field,
// defaults filling absent non-required fields.
func FromArgs(rec Record, args []string) error {
	return NewBuilder(rec.ConfigSchema()).WithArgs(args).BuildAndScan(rec)
}

// FromCLI is FromArgs over the process arguments.
func FromCLI(rec Record) error {
	return FromArgs(rec, os.Args[1:])
}

// MustFromCLI is FromCLI with process-exit semantics at the binary
// boundary: --help prints the field listing and exits 0, usage errors
// print the message plus the listing to stderr and exit 2, every other
// failure exits 1.
func MustFromCLI(rec Record) {
	NewBuilder(rec.ConfigSchema()).MustScan(rec)
}

// MustScan runs BuildAndScan with MustFromCLI's exit semantics, for
// callers that configure the builder (env prefix, file discovery)
// before handing control to it.
func (b *Builder) MustScan(rec Record) {
	err := b.BuildAndScan(rec)
	switch {
	case err == nil:
	case errors.Is(err, ErrHelp):
		fmt.Fprint(os.Stdout, Help(b.schema))
		os.Exit(0)
	case UsageError(err):
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, Help(b.schema))
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Help returns the static field listing for a schema: one line per
// field with name, declared type, help text, and either the default or
// a required marker.
func Help(s Schema) string {
	var b strings.Builder

	if s.Doc != "" {
		fmt.Fprintf(&b, "%s\n", s.Doc)
	}
	fmt.Fprintf(&b, "Record %q expects the following fields:\n", s.Name)

	for _, f := range s.Fields {
		desc := f.Help
		if f.Required() {
			desc = strings.TrimSpace(desc + " (required)")
		} else {
			def, ok := f.defaultValue()
			if !ok {
				desc = strings.TrimSpace(desc + " (default: none)")
			} else {
				desc = strings.TrimSpace(desc + fmt.Sprintf(" (default: %v)", def))
			}
		}
		fmt.Fprintf(&b, "  %-25s: %-25s %s\n", f.Flag(), f.TypeName(), desc)
	}

	return b.String()
}

// Describe returns the current-values listing for a validated record:
// a header line plus one line per field in declaration order, each with
// name, declared type, current value, and help text. Callers decide
// whether to print it or log it.
func Describe(rec Record) (string, error) {
	s := rec.ConfigSchema()

	current, err := describeMap(rec)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(s.Fields)+1)
	lines = append(lines, fmt.Sprintf("Record %q has the following values:", s.Name))

	for _, f := range s.Fields {
		val := formatValue(f, current[f.Name])
		lines = append(lines, fmt.Sprintf("  %-25s: %-25s = %s  %s", f.Name, f.TypeName(), val, f.Help))
	}

	return strings.Join(lines, "\n"), nil
}

// formatValue renders a field value for describe output. An optional
// field still at its zero value reads as unset.
func formatValue(f FieldSpec, val any) string {
	if f.Optional && isZero(val) {
		return "<unset>"
	}
	if s, ok := val.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", val)
}

func isZero(val any) bool {
	switch t := val.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}
