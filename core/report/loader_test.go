package report

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"beaconzone-core/grid"
	"beaconzone-core/sensor"
	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	got, err := ParseLine("Sensor at x=2, y=18: closest beacon is at x=-2, y=15")
	if err != nil {
		t.Fatal(err)
	}
	want := sensor.Reading{Sensor: grid.Point{X: 2, Y: 18}, Beacon: grid.Point{X: -2, Y: 15}}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseLineMalformed(t *testing.T) {
	for _, line := range []string{
		"Sensor at x=2, y=18",
		"nothing here",
		"x=1, y=2 x=3, y=4 x=5, y=6",
		"Sensor at x=99999999999999999999, y=1: closest beacon is at x=0, y=0",
	} {
		if _, err := ParseLine(line); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%q: want ErrMalformedInput, got %v", line, err)
		}
	}
}

func TestParseSkipsBlankAndComments(t *testing.T) {
	in := "# sample\n\nSensor at x=0, y=11: closest beacon is at x=2, y=10\n  \n"
	got, err := Parse(strings.NewReader(in), "inline")
	if err != nil {
		t.Fatal(err)
	}
	want := []sensor.Reading{{Sensor: grid.Point{X: 0, Y: 11}, Beacon: grid.Point{X: 2, Y: 10}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReportsLineNumber(t *testing.T) {
	in := "Sensor at x=0, y=11: closest beacon is at x=2, y=10\nSensor at x=1, y=1\n"
	_, err := Parse(strings.NewReader(in), "bad.txt")
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("want ErrMalformedInput, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "bad.txt:2: malformed sensor report") {
		t.Fatalf("error lacks location: %v", err)
	}
}

func TestParseContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ParseContext(ctx, strings.NewReader("Sensor at x=0, y=0: closest beacon is at x=1, y=0\n"), "x")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestLoadExample(t *testing.T) {
	rs, err := Load(filepath.Join("testdata", "example.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != 14 {
		t.Fatalf("got %d readings, want 14", len(rs))
	}
	if rs[13].Sensor != (grid.Point{X: 20, Y: 1}) {
		t.Fatalf("last reading %+v", rs[13])
	}
}

func TestLoadGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte("Sensor at x=8, y=7: closest beacon is at x=2, y=10\n"))
	_ = zw.Close()

	fn := filepath.Join(t.TempDir(), "report.txt.gz")
	if err := os.WriteFile(fn, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	rs, err := Load(fn)
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != 1 || rs[0].Beacon != (grid.Point{X: 2, Y: 10}) {
		t.Fatalf("unexpected readings %+v", rs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
