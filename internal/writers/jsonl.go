// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"beaconzone/internal/jsonlutil"
	"beaconzone/internal/output"
	"beaconzone/internal/puzzle"
)

// StartResultJSONLWriter streams each Result as one JSON line (v1).
func StartResultJSONLWriter(out io.Writer, bufSize int) (chan<- puzzle.Result, <-chan error) {
	return jsonlutil.Start[puzzle.Result](out, bufSize,
		func(enc *json.Encoder, r puzzle.Result) error {
			return enc.Encode(output.ToAPIResult(r))
		},
		IsBrokenPipe,
	)
}
