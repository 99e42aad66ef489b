// File: klimakit/ppediag/config/decode.go
package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Scan binds the resolved values into the target record struct via its
// `toml` tags. Embedded base records bind with `toml:",squash"`. Fields
// without an entry (absent optionals) are left at their zero value.
func (v *Values) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	data := make(map[string]any, len(v.vals))
	for name, val := range v.vals {
		data[name] = val
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("decode failed for %q: %w", v.schema.Name, err)
	}

	return nil
}

// decodeHook returns the composite decode hook for type conversions.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// describeMap flattens a record struct into a name-to-value map via its
// `toml` tags, for the describe listing.
func describeMap(rec any) (map[string]any, error) {
	out := make(map[string]any)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "toml",
	})
	if err != nil {
		return nil, fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(rec); err != nil {
		return nil, fmt.Errorf("failed to flatten record: %w", err)
	}

	return out, nil
}
