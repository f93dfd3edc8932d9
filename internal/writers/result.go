package writers

import (
	"io"

	"beaconzone/internal/common"
	"beaconzone/internal/output"
	"beaconzone/internal/puzzle"
)

// StartResultWriter spins up a writer goroutine for puzzle.Result items.
// Text and JSONL stream unless sort is set; JSON and sorted output are
// buffered until the input channel is closed.
func StartResultWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- puzzle.Result, <-chan error) {
	if !sort && format == output.FormatJSONL {
		return StartResultJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan puzzle.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		if !sort && format == output.FormatText {
			err := output.StreamText(out, in, header)
			for range in {
			}
			errCh <- err
			return
		}
		var buf []puzzle.Result
		for r := range in {
			buf = append(buf, r)
		}
		if sort {
			common.SortResults(buf)
		}
		errCh <- WriteResults(format, out, buf, header)
	}()

	return in, errCh
}
