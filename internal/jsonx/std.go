//go:build nojsonsimd

// Package jsonx selects the JSON codec used for machine-readable output.
package jsonx

import stdjson "encoding/json"

// Marshal encodes v.
func Marshal(v any) ([]byte, error) {
	return stdjson.Marshal(v)
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return stdjson.Unmarshal(data, v)
}
