package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// OptionalInt is a numeric request field that tracks whether the key was
// present in the body at all. encoding/json only invokes UnmarshalJSON for
// keys that appear in the payload, so Set distinguishes "absent" from every
// provided value, including null and 0.
//
// Accepted inputs: JSON numbers (integral), numeric strings, null and "".
// Null records an explicit null (or empty string); Invalid records a value
// that does not coerce to an integer, left for the validator to reject with
// a field-specific message.
type OptionalInt struct {
	Set     bool
	Null    bool
	Invalid bool
	Value   int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	raw := string(bytes.TrimSpace(data))
	if raw == "null" {
		o.Null = true
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			o.Invalid = true
			return nil
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			o.Null = true
			return nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.Trunc(f) != f {
		o.Invalid = true
		return nil
	}
	o.Value = int(f)
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Provided reports a usable integer value (present, non-null, parseable).
func (o OptionalInt) Provided() bool {
	return o.Set && !o.Null && !o.Invalid
}

// Merge returns the effective value for fields where null and empty string
// mean "leave unchanged": the provided value when usable, else existing.
func (o OptionalInt) Merge(existing *int) *int {
	if o.Provided() {
		v := o.Value
		return &v
	}
	return existing
}

// MergeNullable returns the effective value for coverage-style fields:
// explicit null (or "") clears the field, a value replaces it, absence
// keeps the existing value.
func (o OptionalInt) MergeNullable(existing *int) *int {
	if !o.Set {
		return existing
	}
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// OptionalString is the string counterpart of OptionalInt for the nullable
// text fields of the update payloads. A present key always takes effect:
// explicit null clears the stored value, anything else replaces it, only an
// absent key leaves it alone.
type OptionalString struct {
	Set   bool
	Null  bool
	Value string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(bytes.TrimSpace(data)) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Provided reports a usable string value (present and non-null).
func (o OptionalString) Provided() bool {
	return o.Set && !o.Null
}

// Ptr exposes the provided value as *string for the enum validators; absent
// and null both come back nil and pass validation untouched.
func (o OptionalString) Ptr() *string {
	if !o.Provided() {
		return nil
	}
	v := o.Value
	return &v
}

// MergeNullable returns the effective value: explicit null clears the field,
// a value replaces it, absence keeps the existing value.
func (o OptionalString) MergeNullable(existing *string) *string {
	if !o.Set {
		return existing
	}
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// OptionalBool tracks key presence for boolean request fields.
type OptionalBool struct {
	Set   bool
	Value bool
}

func (o *OptionalBool) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

func (o OptionalBool) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
