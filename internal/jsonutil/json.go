// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// EncodePretty writes v as two-space indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeSlice writes list as a JSON array, using "[]" rather than "null"
// for an empty list.
func EncodeSlice[T any](w io.Writer, list []T) error {
	if list == nil {
		list = []T{}
	}
	return EncodePretty(w, list)
}
