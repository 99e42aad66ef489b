// File: klimakit/ppediag/config/schema_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSchemaValidate tests the schema-level invariants
func TestSchemaValidate(t *testing.T) {
	t.Run("ValidSchema", func(t *testing.T) {
		s := Schema{
			Name: "TestConfig",
			Fields: []FieldSpec{
				{Name: "experiment", Kind: KindString},
				{Name: "members", Kind: KindInt, Default: 25},
			},
		}
		assert.NoError(t, s.Validate())
	})

	t.Run("DuplicateName", func(t *testing.T) {
		s := Schema{
			Name: "TestConfig",
			Fields: []FieldSpec{
				{Name: "experiment", Kind: KindString},
				{Name: "experiment", Kind: KindInt},
			},
		}
		assert.ErrorIs(t, s.Validate(), ErrInvalidSchema)
	})

	t.Run("FlagCollision", func(t *testing.T) {
		// log_file and log-file derive the same --log-file flag
		s := Schema{
			Name: "TestConfig",
			Fields: []FieldSpec{
				{Name: "log_file", Kind: KindPath},
				{Name: "log-file", Kind: KindPath},
			},
		}
		assert.ErrorIs(t, s.Validate(), ErrInvalidSchema)
	})
}

// TestSchemaExtend tests the subtype extension point
func TestSchemaExtend(t *testing.T) {
	base := Schema{
		Name: "BaseConfig",
		Fields: []FieldSpec{
			{Name: "verbose", Kind: KindInt, Default: 0},
		},
	}

	t.Run("AddsFields", func(t *testing.T) {
		ext := base.Extend("RunConfig",
			FieldSpec{Name: "experiment", Kind: KindString},
		)
		require.NoError(t, ext.Validate())

		assert.Equal(t, "RunConfig", ext.Name)
		assert.Len(t, ext.Fields, 2)

		_, ok := ext.Field("experiment")
		assert.True(t, ok)

		// The original schema is untouched
		assert.Len(t, base.Fields, 1)
	})

	t.Run("EmptyExtension", func(t *testing.T) {
		ext := base.Extend("RunConfig")
		require.NoError(t, ext.Validate())
		assert.Len(t, ext.Fields, 1)
	})

	t.Run("DuplicateRejectedOnValidate", func(t *testing.T) {
		ext := base.Extend("RunConfig",
			FieldSpec{Name: "verbose", Kind: KindInt},
		)
		assert.ErrorIs(t, ext.Validate(), ErrInvalidSchema)
	})
}

// TestSchemaField tests field lookup
func TestSchemaField(t *testing.T) {
	s := Schema{
		Name: "TestConfig",
		Fields: []FieldSpec{
			{Name: "experiment", Kind: KindString, Help: "experiment id"},
		},
	}

	f, ok := s.Field("experiment")
	require.True(t, ok)
	assert.Equal(t, "experiment id", f.Help)

	_, ok = s.Field("missing")
	assert.False(t, ok)
}
