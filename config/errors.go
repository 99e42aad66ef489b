// File: klimakit/ppediag/config/errors.go
package config

import "errors"

// Sentinel errors returned by schema validation, loading, and record
// validation. All wrapped errors remain errors.Is-checkable.
var (
	// ErrInvalidValue indicates a field value that violates its declared
	// constraint (e.g. a verbosity level outside the allowed set).
	ErrInvalidValue = errors.New("invalid field value")

	// ErrMissingRequired indicates a required field that no source supplied.
	ErrMissingRequired = errors.New("missing required field")

	// ErrUnknownFlag indicates a command-line flag with no matching field.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrBadValue indicates a CLI or environment value that could not be
	// parsed into the field's declared kind.
	ErrBadValue = errors.New("unparsable value")

	// ErrInvalidSchema indicates a schema that violates its own invariants
	// (duplicate names, illegal identifiers, default/kind mismatch).
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrConfigNotFound indicates a configured file source that does not
	// exist. Build reports it; BuildAndScan treats it as non-fatal when
	// every required field was satisfied elsewhere.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrHelp is returned when --help or -h is present in the arguments.
	ErrHelp = errors.New("help requested")
)

// UsageError reports whether err belongs to the class of CLI-surface
// failures that warrant a usage message and exit code 2.
func UsageError(err error) bool {
	return errors.Is(err, ErrUnknownFlag) ||
		errors.Is(err, ErrBadValue) ||
		errors.Is(err, ErrMissingRequired)
}
