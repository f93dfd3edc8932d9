// Package engine holds the exclusion-zone search: row counting by interval
// union and beacon location by perimeter walking. It never imports app,
// writers, cli, or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package engine
