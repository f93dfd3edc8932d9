// Package fetch downloads puzzle input on demand, caches it on disk, and
// saves the answers computed from it.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const DefaultBaseURL = "https://adventofcode.com"

// ErrNoSession is returned when a download is needed but no session cookie
// is configured.
var ErrNoSession = errors.New("session cookie not set")

// Options describe where an input lives upstream.
type Options struct {
	Year, Day int
	Session   string       // value of the "session" cookie
	BaseURL   string       // "" = DefaultBaseURL
	Client    *http.Client // nil = client with a 30s timeout
}

// CachePath returns <dir>/<year>/<day>.txt with the day zero-padded. It
// names both cached inputs and saved solutions.
func CachePath(dir string, year, day int) string {
	return filepath.Join(dir, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d.txt", day))
}

// URL returns the input URL for o.
func (o Options) URL() string {
	base := strings.TrimRight(o.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/%d/day/%d/input", base, o.Year, o.Day)
}

// Ensure returns path unchanged when it already exists; otherwise it
// downloads the input to path, creating parent directories.
func Ensure(ctx context.Context, o Options, path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if o.Session == "" {
		return "", fmt.Errorf("download %s: %w", o.URL(), ErrNoSession)
	}
	body, err := download(ctx, o)
	if err != nil {
		return "", err
	}
	if err := writeFile(path, func(w io.Writer) error {
		_, err := w.Write(body)
		return err
	}); err != nil {
		return "", err
	}
	return path, nil
}

// SaveSolution writes the answers produced by write to path, creating parent
// directories. An existing file is replaced.
func SaveSolution(path string, write func(io.Writer) error) error {
	if err := writeFile(path, write); err != nil {
		return fmt.Errorf("save solution %s: %w", path, err)
	}
	return nil
}

// writeFile fills path+".part" and renames it, so path only appears once
// fully written.
func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	werr := write(f)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Rename(tmp, path)
	}
	if werr != nil {
		_ = os.Remove(tmp)
	}
	return werr
}

func download(ctx context.Context, o Options) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.URL(), nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: o.Session})

	client := o.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", o.URL(), err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: response code=%d", o.URL(), res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", o.URL(), err)
	}
	return body, nil
}
