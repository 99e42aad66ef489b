// File: klimakit/ppediag/config/values.go
package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Values is the result set of a load: the resolved value of every
// supplied field plus the source each value came from. It is built
// once by Build and read-only afterwards.
type Values struct {
	schema Schema
	vals   map[string]any
	srcs   map[string]Source
}

func newValues(schema Schema) *Values {
	return &Values{
		schema: schema,
		vals:   make(map[string]any, len(schema.Fields)),
		srcs:   make(map[string]Source, len(schema.Fields)),
	}
}

func (v *Values) set(name string, val any, src Source) {
	v.vals[name] = val
	v.srcs[name] = src
}

// Schema returns the schema the values were resolved against.
func (v *Values) Schema() Schema {
	return v.schema
}

// Get returns the resolved value for the named field. Absent optional
// fields have no entry.
func (v *Values) Get(name string) (any, bool) {
	val, ok := v.vals[name]
	return val, ok
}

// Source returns which layer supplied the named field's value, or ""
// when the field has no entry.
func (v *Values) Source(name string) Source {
	return v.srcs[name]
}

// String retrieves a string value for the named field.
// Attempts conversion from common types if the stored value isn't already a string.
func (v *Values) String(name string) (string, error) {
	val, found := v.Get(name)
	if !found {
		return "", fmt.Errorf("field not set: %s", name)
	}
	if val == nil {
		return "", nil
	}

	if strVal, ok := val.(string); ok {
		return strVal, nil
	}

	switch t := val.(type) {
	case fmt.Stringer:
		return t.String(), nil
	case []byte:
		return string(t), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for field %s", val, name)
	}
}

// Int64 retrieves an int64 value for the named field.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (v *Values) Int64(name string) (int64, error) {
	val, found := v.Get(name)
	if !found {
		return 0, fmt.Errorf("field not set: %s", name)
	}
	if val == nil {
		return 0, fmt.Errorf("value for field %s is nil, cannot convert to int64", name)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		maxInt64 := int64(^uint64(0) >> 1)
		if u > uint64(maxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d to int64 for field %s: overflow", u, name)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), nil
	case reflect.String:
		s := rv.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		} else {
			if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
				return int64(f), nil
			}
			return 0, fmt.Errorf("cannot convert string %q to int64 for field %s: %w", s, name, err)
		}
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for field %s", val, name)
}

// Float64 retrieves a float64 value for the named field.
func (v *Values) Float64(name string) (float64, error) {
	val, found := v.Get(name)
	if !found {
		return 0.0, fmt.Errorf("field not set: %s", name)
	}
	if val == nil {
		return 0.0, fmt.Errorf("value for field %s is nil, cannot convert to float64", name)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.String:
		s := rv.String()
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		} else {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for field %s: %w", s, name, err)
		}
	case reflect.Bool:
		if rv.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return 0.0, fmt.Errorf("cannot convert type %T to float64 for field %s", val, name)
}

// Bool retrieves a boolean value for the named field.
// Numeric values are interpreted as 0=false, non-zero=true.
func (v *Values) Bool(name string) (bool, error) {
	val, found := v.Get(name)
	if !found {
		return false, fmt.Errorf("field not set: %s", name)
	}
	if val == nil {
		return false, fmt.Errorf("value for field %s is nil, cannot convert to bool", name)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		s := rv.String()
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		} else {
			return false, fmt.Errorf("cannot convert string %q to bool for field %s: %w", s, name, err)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for field %s", val, name)
}

// Duration retrieves a time.Duration value for the named field.
// Strings parse via time.ParseDuration; integers count nanoseconds.
func (v *Values) Duration(name string) (time.Duration, error) {
	val, found := v.Get(name)
	if !found {
		return 0, fmt.Errorf("field not set: %s", name)
	}

	switch t := val.(type) {
	case time.Duration:
		return t, nil
	case string:
		d, err := time.ParseDuration(t)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to duration for field %s: %w", t, name, err)
		}
		return d, nil
	case int64:
		return time.Duration(t), nil
	case int:
		return time.Duration(t), nil
	}

	return 0, fmt.Errorf("cannot convert type %T to duration for field %s", val, name)
}

// Debug returns a formatted listing of every field's resolved value and
// the source it came from, in declaration order.
func (v *Values) Debug() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resolved configuration for %q:\n", v.schema.Name)

	for _, f := range v.schema.Fields {
		val, ok := v.vals[f.Name]
		if !ok {
			fmt.Fprintf(&b, "  %-25s <unset>\n", f.Name)
			continue
		}
		fmt.Fprintf(&b, "  %-25s %v (from %s)\n", f.Name, val, v.srcs[f.Name])
	}

	return b.String()
}
