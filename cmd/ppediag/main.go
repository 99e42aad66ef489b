// File: klimakit/ppediag/cmd/ppediag/main.go
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/klimakit/ppediag/config"
)

// MainConfig is the diagnostics run configuration. It currently adds
// nothing beyond the base record; run-specific fields extend the
// schema here as the pipeline grows.
type MainConfig struct {
	config.Base `toml:",squash"`
}

// ConfigSchema implements config.Record.
func (c *MainConfig) ConfigSchema() config.Schema {
	return config.BaseSchema().Extend("MainConfig")
}

func main() {
	// .env is a development convenience; a missing file is fine.
	_ = godotenv.Load()

	cfg := &MainConfig{}
	config.NewBuilder(cfg.ConfigSchema()).
		WithEnvPrefix("PPEDIAG_").
		WithFileDiscovery(config.DefaultDiscoveryOptions("ppediag")).
		MustScan(cfg)

	if err := cfg.SetupLogging(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := zap.L()
	defer logger.Sync()

	checked, err := cfg.Derived()
	if err != nil {
		logger.Error("configuration refinement failed", zap.Error(err))
		os.Exit(1)
	}

	if desc, err := config.Describe(checked); err == nil {
		logger.Debug("effective configuration", zap.String("config", desc))
	}

	// The diagnostics pipeline itself starts here.
}
