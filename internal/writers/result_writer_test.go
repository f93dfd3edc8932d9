package writers

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"beaconzone-core/grid"
	"beaconzone/internal/output"
	"beaconzone/internal/puzzle"
)

func results() []puzzle.Result {
	return []puzzle.Result{
		{Source: "b.txt", Sensors: 2, Parts: puzzle.PartAll, Row: 10, Excluded: 3, Limit: 20, Beacon: grid.Point{X: 1, Y: 2}, Signature: 4000002, Located: true},
		{Source: "a.txt", Sensors: 1, Parts: puzzle.PartOne, Row: 10, Excluded: 5},
	}
}

func run(t *testing.T, format string, sort bool) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartResultWriter(&buf, format, sort, true, 0)
	for _, r := range results() {
		in <- r
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("%s: %v", format, err)
	}
	return buf.String()
}

func TestStreamingTextKeepsArrivalOrder(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(run(t, output.FormatText, false)), "\n")
	if len(lines) != 3 || lines[0] != output.TSVHeader {
		t.Fatalf("unexpected output %q", lines)
	}
	if !strings.HasPrefix(lines[1], "b.txt\t") {
		t.Fatalf("first row %q", lines[1])
	}
}

func TestSortedOutput(t *testing.T) {
	for _, f := range []string{output.FormatText, output.FormatJSON, output.FormatJSONL} {
		got := run(t, f, true)
		if strings.Index(got, "a.txt") > strings.Index(got, "b.txt") {
			t.Errorf("%s: not sorted:\n%s", f, got)
		}
	}
}

func TestJSONLStreams(t *testing.T) {
	got := run(t, output.FormatJSONL, false)
	if n := strings.Count(got, "\n"); n != 2 {
		t.Fatalf("want 2 lines, got %d: %q", n, got)
	}
}

func TestUnknownFormat(t *testing.T) {
	if err := WriteResults("xml", io.Discard, nil, false); err == nil {
		t.Fatal("expected error")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestStreamErrorStillDrains(t *testing.T) {
	in, done := StartResultWriter(failWriter{}, output.FormatText, false, true, 1)
	for i := 0; i < 10; i++ {
		in <- results()[1]
	}
	close(in)
	if err := <-done; err == nil {
		t.Fatal("expected write error")
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(io.ErrClosedPipe) || IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("IsBrokenPipe misclassified")
	}
}
