//go:build !nojsonsimd

// Package jsonx selects the JSON codec used for machine-readable output.
package jsonx

import "github.com/bytedance/sonic"

var fastJSON = sonic.ConfigStd

// Marshal encodes v.
func Marshal(v any) ([]byte, error) {
	return fastJSON.Marshal(v)
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return fastJSON.Unmarshal(data, v)
}
