// File: klimakit/ppediag/doc.go

// Package ppediag is the helper module for the perturbed-parameter
// ensemble (PPE) diagnostics: schema-driven configuration for the
// diagnostics commands (config), logger setup from a validated base
// record (logging), and the plotting style tables (plotstyle).
//
// The root package holds no code; each concern lives in its own
// package, and the demo entry point is under cmd/ppediag.
package ppediag
