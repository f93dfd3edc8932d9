// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"beaconzone/internal/app"
	"beaconzone/pkg/api"
)

const example = "../../core/report/testdata/example.txt"

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestEndToEnd(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--row", "10", "--limit", "20", "-q", example}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 row, got %q", out.String())
	}
	cols := strings.Split(lines[1], "\t")
	want := []string{example, "14", "10", "26", "20", "14", "11", "56000011", "-"}
	if diff := cmp.Diff(want, cols); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestPartOneOnly(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--part", "1", "--row", "10", "--no-header", "-o", "json", example}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errBuf.String())
	}
	var got []api.ResultV1
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v\n%s", err, out.String())
	}
	if len(got) != 1 || got[0].Excluded == nil || *got[0].Excluded != 26 {
		t.Fatalf("unexpected %s", out.String())
	}
	if got[0].Signature != nil || got[0].Limit != nil {
		t.Fatalf("part two fields present: %s", out.String())
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	data, err := os.ReadFile(example)
	if err != nil {
		t.Fatal(err)
	}
	a := write(t, "a.txt", string(data))
	b := write(t, "b.txt", string(data))

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"--row", "10", "--limit", "20",
			"--threads", fmt.Sprint(threads),
			"--output", "json", "--sort",
			a, b,
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}

	serial := run(1)
	parallel := run(4)
	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Fatalf("serial vs parallel (-serial +parallel):\n%s", diff)
	}
}

func TestJSONLStream(t *testing.T) {
	var out, errB bytes.Buffer
	code := app.Run([]string{"--row", "10", "--limit", "20", "-o", "jsonl", example}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	var r api.ResultV1
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &r); err != nil {
		t.Fatalf("bad jsonl: %v", err)
	}
	if r.X == nil || r.Y == nil || *r.X != 14 || *r.Y != 11 {
		t.Fatalf("unexpected %s", out.String())
	}
}

func TestNotFoundExitCode(t *testing.T) {
	// A single sensor covering the whole square leaves nothing uncovered.
	fn := write(t, "cover.txt", "Sensor at x=2, y=2: closest beacon is at x=12, y=2\n")

	var out, errB bytes.Buffer
	if code := app.Run([]string{"--limit", "4", "--row", "0", fn}, &out, &errB); code != 1 {
		t.Fatalf("want exit 1, got %d (%s)", code, errB.String())
	}
	if !strings.Contains(errB.String(), "WARN:") {
		t.Fatalf("missing warning: %q", errB.String())
	}

	out.Reset()
	errB.Reset()
	if code := app.Run([]string{"--limit", "4", "--no-match-exit-code", "0", "-q", fn}, &out, &errB); code != 0 {
		t.Fatalf("want exit 0, got %d", code)
	}
}

func TestMalformedInput(t *testing.T) {
	fn := write(t, "bad.txt", "Sensor at x=1, y=2: nothing here\n")
	var out, errB bytes.Buffer
	code := app.Run([]string{fn}, &out, &errB)
	if code != 3 {
		t.Fatalf("want exit 3, got %d", code)
	}
	if !strings.Contains(errB.String(), "bad.txt:1") {
		t.Fatalf("error lacks location: %q", errB.String())
	}
}

func TestUsageAndVersion(t *testing.T) {
	var out, errB bytes.Buffer
	if code := app.Run(nil, &out, &errB); code != 0 || !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("no-arg run: code=%d out=%q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"--version"}, &out, &errB); code != 0 || !strings.HasPrefix(out.String(), "beaconzone version ") {
		t.Fatalf("version: code=%d out=%q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"--bogus"}, &out, &errB); code != 2 {
		t.Fatalf("bad flag: code=%d", code)
	}
	if code := app.Run([]string{"--limit", "-1", example}, &out, &errB); code != 2 {
		t.Fatalf("negative limit: code=%d", code)
	}
}

func TestSolutionsDirSavesAnswers(t *testing.T) {
	dir := t.TempDir()
	var out, errB bytes.Buffer
	code := app.Run([]string{
		"--row", "10", "--limit", "20", "-o", "json",
		"--solutions-dir", dir, "--year", "2022", "--day", "15",
		example,
	}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	got, err := os.ReadFile(filepath.Join(dir, "2022", "15.txt"))
	if err != nil {
		t.Fatalf("solution not saved: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "source\t") {
		t.Fatalf("unexpected solution file %q", got)
	}
	if !strings.Contains(lines[1], "\t26\t") || !strings.Contains(lines[1], "\t56000011\t") {
		t.Fatalf("answers missing from %q", lines[1])
	}
	if !strings.HasPrefix(strings.TrimSpace(out.String()), "[") {
		t.Fatalf("stdout should keep the requested format, got %q", out.String())
	}
}

func TestSolutionsDirOffByDefault(t *testing.T) {
	dir := t.TempDir()
	var out, errB bytes.Buffer
	if code := app.Run([]string{"--row", "10", "--limit", "20", "--cache-dir", dir, example}, &out, &errB); code != 0 {
		t.Fatalf("exit %d err %s", code, errB.String())
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 0 {
		t.Fatalf("unexpected files %v, %v", entries, err)
	}
}
