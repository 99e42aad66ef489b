// File: klimakit/ppediag/config/doc.go

// Package config provides schema-driven configuration for the ppediag
// diagnostics commands: an explicit field schema per record, resolved
// from command-line arguments, environment variables, configuration
// files, and declared defaults with configurable precedence.
//
// A record declares its fields once as a Schema and binds the resolved
// values into a plain struct:
//
//	type RunConfig struct {
//	    config.Base `toml:",squash"`
//	    Experiment  string `toml:"experiment"`
//	}
//
//	func (c *RunConfig) ConfigSchema() config.Schema {
//	    return config.BaseSchema().Extend("RunConfig", config.FieldSpec{
//	        Name: "experiment",
//	        Kind: config.KindString,
//	        Help: "Ensemble experiment identifier",
//	    })
//	}
//
//	cfg := &RunConfig{}
//	config.MustFromCLI(cfg)
//
// Every field becomes one flag (--experiment, --log-file, ...); bool
// fields are bare toggles. A field with no default and no optional
// marker is required, and parsing fails without it.
//
// Default precedence (highest to lowest):
//  1. Command-line arguments (--verbose 2)
//  2. Environment variables (PPEDIAG_VERBOSE=2, via WithEnvPrefix)
//  3. Configuration file (TOML, YAML, or JSON, via WithFile)
//  4. Declared defaults
//
// Custom source layering goes through the builder:
//
//	vals, err := config.NewBuilder(cfg.ConfigSchema()).
//	    WithEnvPrefix("PPEDIAG_").
//	    WithFileDiscovery(config.DefaultDiscoveryOptions("ppediag")).
//	    Build()
//
// All operations are synchronous and single-shot: a build resolves its
// sources once and the resulting record is an immutable value object.
package config
