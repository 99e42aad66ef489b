// File: klimakit/ppediag/config/field_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKindString tests the human-readable type names
func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindString, "string"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindBool, "bool"},
		{KindDuration, "duration"},
		{KindPath, "path"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

// TestKindParse tests string parsing into canonical values
func TestKindParse(t *testing.T) {
	t.Run("ValidValues", func(t *testing.T) {
		tests := []struct {
			kind Kind
			in   string
			want any
		}{
			{KindString, "hello", "hello"},
			{KindPath, "/tmp/run.log", "/tmp/run.log"},
			{KindInt, "42", 42},
			{KindInt, "-3", -3},
			{KindFloat, "2.5", 2.5},
			{KindBool, "true", true},
			{KindBool, "false", false},
			{KindDuration, "90s", 90 * time.Second},
		}

		for _, tt := range tests {
			got, err := tt.kind.parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		}
	})

	t.Run("InvalidValues", func(t *testing.T) {
		tests := []struct {
			kind Kind
			in   string
		}{
			{KindInt, "abc"},
			{KindFloat, "2.5x"},
			{KindBool, "yes please"},
			{KindDuration, "90 bananas"},
		}

		for _, tt := range tests {
			_, err := tt.kind.parse(tt.in)
			assert.Error(t, err)
		}
	})
}

// TestKindCoerce tests file-sourced value coercion
func TestKindCoerce(t *testing.T) {
	tests := []struct {
		kind Kind
		in   any
		want any
	}{
		{KindInt, int64(7), 7},
		{KindInt, 7.0, 7},
		{KindInt, "7", 7},
		{KindFloat, int64(2), 2.0},
		{KindBool, "true", true},
		{KindDuration, "1m", time.Minute},
		{KindDuration, int64(1000), time.Duration(1000)},
		{KindString, []byte("bytes"), "bytes"},
	}

	for _, tt := range tests {
		got, err := tt.kind.coerce(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := KindInt.coerce(true)
	assert.Error(t, err)
}

// TestFieldFlag tests CLI flag derivation
func TestFieldFlag(t *testing.T) {
	assert.Equal(t, "--log-file", FieldSpec{Name: "log_file"}.Flag())
	assert.Equal(t, "--verbose", FieldSpec{Name: "verbose"}.Flag())
	assert.Equal(t, "--max-member-count", FieldSpec{Name: "max_member_count"}.Flag())
}

// TestFieldRequired tests the requiredness rule
func TestFieldRequired(t *testing.T) {
	// No default, not optional, not bool: required
	assert.True(t, FieldSpec{Name: "x", Kind: KindInt}.Required())

	// A default makes it non-required
	assert.False(t, FieldSpec{Name: "x", Kind: KindInt, Default: 5}.Required())

	// Optional fields are never required
	assert.False(t, FieldSpec{Name: "x", Kind: KindInt, Optional: true}.Required())

	// Bool fields default to false, never required
	assert.False(t, FieldSpec{Name: "x", Kind: KindBool}.Required())
}

// TestFieldTypeName tests type rendering for help output
func TestFieldTypeName(t *testing.T) {
	assert.Equal(t, "int", FieldSpec{Kind: KindInt}.TypeName())
	assert.Equal(t, "optional[path]", FieldSpec{Kind: KindPath, Optional: true}.TypeName())
}

// TestFieldValidate tests per-field schema checks
func TestFieldValidate(t *testing.T) {
	t.Run("LegalNames", func(t *testing.T) {
		assert.NoError(t, FieldSpec{Name: "log_file", Kind: KindPath}.validate())
		assert.NoError(t, FieldSpec{Name: "x2", Kind: KindInt}.validate())
	})

	t.Run("IllegalNames", func(t *testing.T) {
		for _, name := range []string{"", "a.b", "with space", "ümlaut"} {
			err := FieldSpec{Name: name, Kind: KindInt}.validate()
			assert.ErrorIs(t, err, ErrInvalidSchema, "name %q", name)
		}
	})

	t.Run("DefaultKindMismatch", func(t *testing.T) {
		err := FieldSpec{Name: "x", Kind: KindInt, Default: "not a number"}.validate()
		assert.ErrorIs(t, err, ErrInvalidSchema)

		assert.NoError(t, FieldSpec{Name: "x", Kind: KindInt, Default: 5}.validate())
		assert.NoError(t, FieldSpec{Name: "d", Kind: KindDuration, Default: "1m"}.validate())
	})
}
