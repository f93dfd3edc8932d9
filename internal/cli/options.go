// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"beaconzone/internal/cliutil"
	"beaconzone/internal/output"
	"beaconzone/internal/puzzle"
)

// Puzzle defaults.
const (
	DefaultRow        = 2_000_000
	DefaultLimit      = 4_000_000
	DefaultMultiplier = 4_000_000
	DefaultYear       = 2022
	DefaultDay        = 15
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Inputs     []string
	Fetch      bool
	Year       int
	Day        int
	CacheDir   string
	SessionEnv string

	// Search
	Part       puzzle.Part
	Row        int64
	Limit      int64
	Multiplier int64
	VisitedCap int

	// Performance
	Threads int
	Timeout time.Duration

	// Output
	Output          string
	SolutionsDir    string // "" = answers are not saved
	Sort            bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --input/-i).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are input files (globs expanded) and may be mixed
// with flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool
	var part string

	// Input
	in := &sliceValue{dst: &opt.Inputs}
	fs.Var(in, "input", "sensor report file(s) (repeatable) or '-'")
	fs.Var(in, "i", "alias of --input")
	fs.BoolVar(&opt.Fetch, "fetch", false, "download the puzzle input when it is not cached [false]")
	fs.IntVar(&opt.Year, "year", DefaultYear, "puzzle year for --fetch")
	fs.IntVar(&opt.Day, "day", DefaultDay, "puzzle day for --fetch")
	fs.StringVar(&opt.CacheDir, "cache-dir", "puzzle-input", "input cache directory for --fetch")
	fs.StringVar(&opt.SessionEnv, "session-env", "SESSION", "environment variable holding the session cookie")

	// Search
	fs.StringVar(&part, "part", "all", "which part to solve: 1 | 2 | all")
	fs.Int64Var(&opt.Row, "row", DefaultRow, "row to count excluded cells on (part 1)")
	fs.Int64Var(&opt.Limit, "limit", DefaultLimit, "search square is [0,limit]² (part 2)")
	fs.Int64Var(&opt.Multiplier, "multiplier", DefaultMultiplier, "signature = x*multiplier + y (part 2)")
	fs.IntVar(&opt.VisitedCap, "visited-cap", 0, "perimeter points remembered per search (0=none)")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0=all CPUs)")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")
	fs.DurationVar(&opt.Timeout, "timeout", 0, "abandon the run after this long (0=none)")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output: text | json | jsonl")
	fs.StringVar(&opt.Output, "o", output.FormatText, "alias of --output")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs by source [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no uncovered point is found")
	fs.StringVar(&opt.SolutionsDir, "solutions-dir", "", "also save text answers to <dir>/<year>/<day>.txt")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader
	posArgs = append(posArgs, fs.Args()...)

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.Inputs = append(opt.Inputs, exp...)
	}

	p, err := puzzle.ParsePart(part)
	if err != nil {
		return opt, err
	}
	opt.Part = p
	return opt, Validate(&opt)
}

// Validate applies CLI invariants.
func Validate(o *Options) error {
	if len(o.Inputs) == 0 && !o.Fetch {
		return errors.New("provide --input file(s) or --fetch")
	}
	if o.Fetch && len(o.Inputs) > 1 {
		return errors.New("--fetch accepts at most one --input path")
	}
	if (o.Fetch || o.SolutionsDir != "") && (o.Day < 1 || o.Day > 25) {
		return errors.New("--day must be between 1 and 25")
	}
	if (o.Fetch || o.SolutionsDir != "") && o.Year < 2015 {
		return errors.New("--year must be ≥ 2015")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.VisitedCap < 0 {
		return errors.New("--visited-cap must be ≥ 0")
	}
	if o.Timeout < 0 {
		return errors.New("--timeout must be ≥ 0")
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
