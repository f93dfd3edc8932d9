package engine

import "beaconzone-core/interval"

// Spans returns the merged x-ranges covered by at least one sensor on row y.
func (e *Engine) Spans(y int64) []interval.Span {
	spans := make([]interval.Span, 0, e.set.Len())
	for i := 0; i < e.set.Len(); i++ {
		if sp, ok := e.set.Sensor(i).RowSpan(y); ok {
			spans = append(spans, sp)
		}
	}
	return interval.Merge(spans)
}

// CountExcluded returns how many cells on row y cannot hold an unseen beacon:
// the covered cells minus those occupied by an observed beacon.
func (e *Engine) CountExcluded(y int64) int64 {
	merged := e.Spans(y)
	n := interval.Total(merged)
	for _, x := range e.set.BeaconsOnRow(y) {
		if interval.Covers(merged, x) {
			n--
		}
	}
	return n
}
