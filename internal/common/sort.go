// internal/common/sort.go
package common

import (
	"sort"

	"beaconzone/internal/puzzle"
)

// LessResult defines a stable order for results (for --sort).
func LessResult(a, b puzzle.Result) bool {
	if a.Source != b.Source {
		return a.Source < b.Source
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Limit < b.Limit
}

func SortResults(rs []puzzle.Result) {
	sort.SliceStable(rs, func(i, j int) bool { return LessResult(rs[i], rs[j]) })
}
