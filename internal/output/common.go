package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source\tsensors\trow\texcluded\tlimit\tx\ty\tsignature\terror"

// Missing marks a column whose part was not run.
const Missing = "-"
