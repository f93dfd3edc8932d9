// Package report reads sensor report lines of the form
//
//	Sensor at x=2, y=18: closest beacon is at x=-2, y=15
//
// into sensor.Readings.
package report

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"beaconzone-core/grid"
	"beaconzone-core/sensor"
)

// ErrMalformedInput is returned when a line does not hold exactly two
// coordinate pairs.
var ErrMalformedInput = errors.New("malformed sensor report")

var coordRx = regexp.MustCompile(`x=(-?\d+), y=(-?\d+)`)

// ParseLine extracts the sensor and beacon positions from one report line.
func ParseLine(line string) (sensor.Reading, error) {
	m := coordRx.FindAllStringSubmatch(line, -1)
	if len(m) != 2 {
		return sensor.Reading{}, fmt.Errorf("%w: want 2 coordinate pairs, found %d", ErrMalformedInput, len(m))
	}
	var pts [2]grid.Point
	for i, g := range m {
		x, err := strconv.ParseInt(g[1], 10, 64)
		if err != nil {
			return sensor.Reading{}, fmt.Errorf("%w: x=%s: %v", ErrMalformedInput, g[1], err)
		}
		y, err := strconv.ParseInt(g[2], 10, 64)
		if err != nil {
			return sensor.Reading{}, fmt.Errorf("%w: y=%s: %v", ErrMalformedInput, g[2], err)
		}
		pts[i] = grid.Point{X: x, Y: y}
	}
	return sensor.Reading{Sensor: pts[0], Beacon: pts[1]}, nil
}

// Parse reads all report lines from r. Blank lines and '#' comments are
// skipped. name is used only in error messages.
func Parse(r io.Reader, name string) ([]sensor.Reading, error) {
	return ParseContext(context.Background(), r, name)
}

// ParseContext is Parse with cancellation checked between lines.
func ParseContext(ctx context.Context, r io.Reader, name string) ([]sensor.Reading, error) {
	var list []sensor.Reading
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		rd, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, ln, err)
		}
		list = append(list, rd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return list, nil
}

// Load reads a report file; "-" means stdin.
func Load(path string) ([]sensor.Reading, error) {
	return LoadContext(context.Background(), path)
}

func LoadContext(ctx context.Context, path string) ([]sensor.Reading, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ParseContext(ctx, rc, path)
}
