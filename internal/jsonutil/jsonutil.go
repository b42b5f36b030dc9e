// Package jsonutil provides small helpers for decoding JSON documents with
// contextual error messages.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalStrict unmarshals JSON data into v, rejecting unknown fields and
// trailing data after the first value. Errors are wrapped with context.
func UnmarshalStrict(data []byte, v any, context string) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	if dec.More() {
		return fmt.Errorf("%s: unexpected data after top-level value", context)
	}
	return nil
}

// UnmarshalArrayAllowEmpty unmarshals a JSON array into a slice.
// An empty array yields an empty (non-nil) slice.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	entries := []T{}
	if err := UnmarshalStrict(data, &entries, context); err != nil {
		return nil, err
	}
	return entries, nil
}
