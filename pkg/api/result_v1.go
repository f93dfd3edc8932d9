// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one solved sensor report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Pointer fields are omitted when the corresponding part was not run.
type ResultV1 struct {
	Source  string `json:"source"`
	Sensors int    `json:"sensors"`
	Beacons int    `json:"beacons"`

	// Part one: excluded cells on a single row.
	Row      *int64 `json:"row,omitempty"`
	Excluded *int64 `json:"excluded,omitempty"`

	// Part two: the uncovered cell in [0,limit]².
	Limit     *int64 `json:"limit,omitempty"`
	X         *int64 `json:"x,omitempty"`
	Y         *int64 `json:"y,omitempty"`
	Signature *int64 `json:"signature,omitempty"`

	Error string `json:"error,omitempty"`
}
