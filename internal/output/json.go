// internal/output/json.go
package output

import (
	"io"

	"beaconzone/internal/jsonutil"
	"beaconzone/internal/puzzle"
	"beaconzone/pkg/api"
)

func i64(v int64) *int64 { return &v }

// ToAPIResult converts a domain Result to the stable wire schema (v1).
func ToAPIResult(r puzzle.Result) api.ResultV1 {
	v := api.ResultV1{
		Source:  r.Source,
		Sensors: r.Sensors,
		Beacons: r.Beacons,
	}
	if r.Parts.Has(puzzle.PartOne) {
		v.Row, v.Excluded = i64(r.Row), i64(r.Excluded)
	}
	if r.Parts.Has(puzzle.PartTwo) {
		v.Limit = i64(r.Limit)
		if r.Located {
			v.X, v.Y, v.Signature = i64(r.Beacon.X), i64(r.Beacon.Y), i64(r.Signature)
		}
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	return v
}

func toAPIResults(list []puzzle.Result) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []puzzle.Result) error {
	return jsonutil.EncodeSlice(w, toAPIResults(list))
}
