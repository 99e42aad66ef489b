// File: klimakit/ppediag/config/record.go
package config

// Record ties a configuration struct to its schema and validation.
// A record is built either by hand (construct, then call Validate) or
// from sources via BuildAndScan, which validates before returning.
// Once validated, a record is treated as an immutable value object.
type Record interface {
	// ConfigSchema returns the record's field declarations.
	ConfigSchema() Schema

	// Validate checks field-level constraints. It runs once, explicitly,
	// after construction; a failed record must not be used.
	Validate() error
}

// Deriver is the optional refinement hook: records that post-process
// their validated values into a derived configuration implement it.
// The loader never calls it; callers invoke it explicitly. The base
// contract returns the receiver unchanged.
type Deriver interface {
	Derived() (Record, error)
}
