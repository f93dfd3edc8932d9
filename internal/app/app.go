// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"beaconzone/internal/appcore"
	"beaconzone/internal/cli"
	"beaconzone/internal/cmdutil"
	"beaconzone/internal/fetch"
	"beaconzone/internal/puzzle"
	"beaconzone/internal/version"
	"beaconzone/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("beaconzone")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return printUsage(fs, outw, stderr, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return printUsage(fs, outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return printUsage(fs, outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "beaconzone version %s\n", version.Version)
		return flush(outw, stderr, appcore.ExitOK)
	}

	ctx := parent
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, opts.Timeout)
		defer cancel()
	}

	inputs := opts.Inputs
	if opts.Fetch {
		path := fetch.CachePath(opts.CacheDir, opts.Year, opts.Day)
		if len(inputs) == 1 {
			path = inputs[0]
		}
		cmdutil.Infof(stderr, opts.Quiet, "using puzzle input %s", path)
		got, err := fetch.Ensure(ctx, fetch.Options{
			Year:    opts.Year,
			Day:     opts.Day,
			Session: os.Getenv(opts.SessionEnv),
		}, path)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return appcore.ExitCanceled
			}
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return appcore.ExitRuntime
		}
		inputs = []string{got}
	}

	var solutionPath string
	if opts.SolutionsDir != "" {
		solutionPath = fetch.CachePath(opts.SolutionsDir, opts.Year, opts.Day)
	}

	return appcore.Run(
		ctx,
		outw,
		stderr,
		appcore.Options{
			Inputs:  inputs,
			Threads: opts.Threads,
			Search: puzzle.Options{
				Parts:      opts.Part,
				Row:        opts.Row,
				Limit:      opts.Limit,
				Multiplier: opts.Multiplier,
				VisitedCap: opts.VisitedCap,
			},
			SolutionPath:    solutionPath,
			Quiet:           opts.Quiet,
			NoMatchExitCode: opts.NoMatchExitCode,
		},
		appcore.NewResultWriterFactory(opts.Output, opts.Sort, opts.Header),
	)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func printUsage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	return flush(outw, stderr, code)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitRuntime
	}
	return code
}
