// File: klimakit/ppediag/config/builder_test.go
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klimakit/ppediag/config"
)

// runConfig is a base subtype with run-specific fields, exercising the
// schema extension point and the squash binding of the embedded base.
type runConfig struct {
	config.Base `toml:",squash"`

	Experiment string `toml:"experiment"`
	Members    int    `toml:"members"`
}

func (c *runConfig) ConfigSchema() config.Schema {
	return config.BaseSchema().Extend("RunConfig",
		config.FieldSpec{
			Name: "experiment",
			Kind: config.KindString,
			Help: "Ensemble experiment identifier",
		},
		config.FieldSpec{
			Name:    "members",
			Kind:    config.KindInt,
			Default: 25,
			Help:    "Number of ensemble members",
		},
	)
}

// TestBuildAndScan tests the build-bind-validate flow on a subtype
func TestBuildAndScan(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cfg := &runConfig{}
		err := config.NewBuilder(cfg.ConfigSchema()).
			WithArgs([]string{"--experiment", "ppe-historical", "--verbose", "2"}).
			BuildAndScan(cfg)
		require.NoError(t, err)

		assert.Equal(t, "ppe-historical", cfg.Experiment)
		assert.Equal(t, 25, cfg.Members)
		assert.Equal(t, 2, cfg.Verbose)
		assert.Equal(t, "w", cfg.LogMode)
	})

	t.Run("MissingRequiredExtensionField", func(t *testing.T) {
		cfg := &runConfig{}
		err := config.NewBuilder(cfg.ConfigSchema()).
			WithArgs(nil).
			BuildAndScan(cfg)
		assert.ErrorIs(t, err, config.ErrMissingRequired)
	})

	t.Run("RecordValidationFailure", func(t *testing.T) {
		cfg := &runConfig{}
		err := config.NewBuilder(cfg.ConfigSchema()).
			WithArgs([]string{"--experiment", "ppe", "--verbose", "9"}).
			BuildAndScan(cfg)
		assert.ErrorIs(t, err, config.ErrInvalidValue)
	})

	t.Run("MissingConfigFileNotFatal", func(t *testing.T) {
		cfg := &runConfig{}
		err := config.NewBuilder(cfg.ConfigSchema()).
			WithArgs([]string{"--experiment", "ppe"}).
			WithFile(filepath.Join(t.TempDir(), "absent.toml")).
			BuildAndScan(cfg)
		require.NoError(t, err)
		assert.Equal(t, "ppe", cfg.Experiment)
	})

	t.Run("InvalidExtendedSchema", func(t *testing.T) {
		schema := config.BaseSchema().Extend("Broken",
			config.FieldSpec{Name: "verbose", Kind: config.KindInt},
		)
		_, err := config.NewBuilder(schema).WithArgs(nil).Build()
		assert.ErrorIs(t, err, config.ErrInvalidSchema)
	})
}

// TestFileDiscovery tests config file discovery via flag, env, and search paths
func TestFileDiscovery(t *testing.T) {
	writeConfig := func(t *testing.T, dir, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("CLIFlag", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "run.toml", "experiment = \"from-flag\"\n")

		cfg := &runConfig{}
		err := config.NewBuilder(cfg.ConfigSchema()).
			WithArgs([]string{"--config", path}).
			WithFileDiscovery(config.DefaultDiscoveryOptions("ppediag")).
			BuildAndScan(cfg)
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.Experiment)
	})

	t.Run("CLIFlagEqualsForm", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "run.toml", "experiment = \"from-flag\"\n")

		cfg := &runConfig{}
		err := config.NewBuilder(cfg.ConfigSchema()).
			WithArgs([]string{"--config=" + path, "--verbose", "1"}).
			WithFileDiscovery(config.DefaultDiscoveryOptions("ppediag")).
			BuildAndScan(cfg)
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.Experiment)
		assert.Equal(t, 1, cfg.Verbose)
	})

	t.Run("EnvVar", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "run.toml", "experiment = \"from-env\"\n")
		t.Setenv("PPEDIAG_CONFIG", path)

		cfg := &runConfig{}
		err := config.NewBuilder(cfg.ConfigSchema()).
			WithArgs(nil).
			WithFileDiscovery(config.DefaultDiscoveryOptions("ppediag")).
			BuildAndScan(cfg)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Experiment)
	})

	t.Run("SearchPath", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "ppediag.toml", "experiment = \"from-search\"\n")

		opts := config.DefaultDiscoveryOptions("ppediag")
		opts.Paths = []string{dir}
		opts.UseXDG = false
		opts.UseCurrentDir = false

		cfg := &runConfig{}
		err := config.NewBuilder(cfg.ConfigSchema()).
			WithArgs(nil).
			WithFileDiscovery(opts).
			BuildAndScan(cfg)
		require.NoError(t, err)
		assert.Equal(t, "from-search", cfg.Experiment)
	})

	t.Run("NothingFound", func(t *testing.T) {
		opts := config.DefaultDiscoveryOptions("ppediag")
		opts.Paths = []string{t.TempDir()}
		opts.UseXDG = false
		opts.UseCurrentDir = false

		cfg := &runConfig{}
		err := config.NewBuilder(cfg.ConfigSchema()).
			WithArgs([]string{"--experiment", "ppe"}).
			WithFileDiscovery(opts).
			BuildAndScan(cfg)
		require.NoError(t, err)
		assert.Equal(t, "ppe", cfg.Experiment)
	})
}

// TestCustomSourceOrder tests a non-default precedence
func TestCustomSourceOrder(t *testing.T) {
	t.Setenv("RC_EXPERIMENT", "from-env")

	cfg := &runConfig{}
	err := config.NewBuilder(cfg.ConfigSchema()).
		WithArgs([]string{"--experiment", "from-cli"}).
		WithEnvPrefix("RC_").
		WithSources(config.SourceEnv, config.SourceCLI, config.SourceDefault).
		BuildAndScan(cfg)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Experiment)
}
