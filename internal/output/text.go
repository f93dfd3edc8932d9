// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"beaconzone/internal/puzzle"
)

func num(ok bool, v int64) string {
	if !ok {
		return Missing
	}
	return strconv.FormatInt(v, 10)
}

// FormatRowTSV renders one result as TSV columns (no trailing newline).
func FormatRowTSV(r puzzle.Result) string {
	one := r.Parts.Has(puzzle.PartOne)
	two := r.Parts.Has(puzzle.PartTwo)
	errText := Missing
	if r.Err != nil {
		// Keep the row on one line and the columns intact.
		errText = strings.NewReplacer("\t", " ", "\n", " ").Replace(r.Err.Error())
	}
	return strings.Join([]string{
		r.Source,
		strconv.Itoa(r.Sensors),
		num(one, r.Row),
		num(one, r.Excluded),
		num(two, r.Limit),
		num(r.Located, r.Beacon.X),
		num(r.Located, r.Beacon.Y),
		num(r.Located, r.Signature),
		errText,
	}, "\t")
}

// WriteText writes results as TSV, with the header row if requested.
func WriteText(w io.Writer, list []puzzle.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText writes results from a channel as they arrive.
func StreamText(w io.Writer, in <-chan puzzle.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
