// Package interval implements closed integer spans and their union.
package interval

import (
	"sort"
)

// Span is the closed range [Lo, Hi].
type Span struct {
	Lo, Hi int64
}

func (s Span) Len() int64 { return s.Hi - s.Lo + 1 }

func (s Span) Contains(v int64) bool { return v >= s.Lo && v <= s.Hi }

// Merge returns the minimal sorted set of disjoint spans covering the input.
// Overlapping and adjacent spans are joined. The input slice is not modified.
func Merge(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	sorted := append([]Span(nil), spans...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Lo != sorted[j].Lo {
			return sorted[i].Lo < sorted[j].Lo
		}
		return sorted[i].Hi < sorted[j].Hi
	})

	out := make([]Span, 0, len(sorted))
	cur := sorted[0]
	for _, s := range sorted[1:] {
		if s.Lo <= cur.Hi+1 {
			if s.Hi > cur.Hi {
				cur.Hi = s.Hi
			}
			continue
		}
		out = append(out, cur)
		cur = s
	}
	return append(out, cur)
}

// Total sums the lengths of spans. Callers pass merged spans; overlaps are
// counted twice otherwise.
func Total(spans []Span) int64 {
	var n int64
	for _, s := range spans {
		n += s.Len()
	}
	return n
}

// Covers reports whether v lies in one of the merged (sorted, disjoint) spans.
func Covers(merged []Span, v int64) bool {
	i := sort.Search(len(merged), func(i int) bool { return merged[i].Hi >= v })
	return i < len(merged) && merged[i].Lo <= v
}
