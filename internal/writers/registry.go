// internal/writers/registry.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"beaconzone/internal/output"
	"beaconzone/internal/puzzle"
)

// BatchFunc writes a complete, already ordered list of results.
type BatchFunc func(w io.Writer, list []puzzle.Result, header bool) error

// ResultWriters maps an output format to its batch writer.
var ResultWriters = map[string]BatchFunc{}

// RegisterResult adds or replaces (last wins) the writer for format.
func RegisterResult(format string, fn BatchFunc) { ResultWriters[format] = fn }

// WriteResults dispatches to the writer registered for format.
func WriteResults(format string, w io.Writer, list []puzzle.Result, header bool) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown result format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}

func init() {
	RegisterResult(output.FormatText, output.WriteText)
	RegisterResult(output.FormatJSON, func(w io.Writer, list []puzzle.Result, _ bool) error {
		return output.WriteJSON(w, list)
	})
	RegisterResult(output.FormatJSONL, func(w io.Writer, list []puzzle.Result, _ bool) error {
		enc := json.NewEncoder(w)
		for _, r := range list {
			if err := enc.Encode(output.ToAPIResult(r)); err != nil {
				return err
			}
		}
		return nil
	})
}
