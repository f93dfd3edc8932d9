// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"beaconzone/internal/cmdutil"
	"beaconzone/internal/common"
	"beaconzone/internal/fetch"
	"beaconzone/internal/output"
	"beaconzone/internal/pipeline"
	"beaconzone/internal/puzzle"
	"beaconzone/internal/runutil"
	"beaconzone/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

type Options struct {
	Inputs  []string
	Threads int
	Search  puzzle.Options

	// SolutionPath, when set, receives the sorted text results of a
	// completed run.
	SolutionPath string

	Quiet           bool
	NoMatchExitCode int
}

type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- puzzle.Result, <-chan error)
}

// Run solves every input and streams results through the writer. It returns
// the process exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	warns, err := runutil.ValidateSearch(o.Search.Limit, o.Search.Multiplier)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}
	for _, w := range warns {
		cmdutil.Warnf(stderr, o.Quiet, "%s", w)
	}

	thr := runutil.EffectiveThreads(o.Threads)
	pipeWorkers, locateWorkers := runutil.SplitThreads(thr, len(o.Inputs))
	search := o.Search
	search.Workers = locateWorkers

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var solved []puzzle.Result

	tally, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{Threads: pipeWorkers},
		o.Inputs,
		puzzle.NewSolver(search),
		func(r puzzle.Result) error {
			cmdutil.Infof(stderr, o.Quiet, "%s: %d sensors, %d beacons", r.Source, r.Sensors, r.Beacons)
			if r.Err != nil && ctx.Err() == nil {
				cmdutil.Warnf(stderr, o.Quiet, "%v", r.Err)
			}
			if o.SolutionPath != "" {
				solved = append(solved, r)
			}
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitRuntime
	}

	if perr != nil {
		switch {
		case errors.Is(perr, context.Canceled):
			return ExitCanceled
		case errors.Is(perr, context.DeadlineExceeded):
			fmt.Fprintln(stderr, "error: timed out")
			return ExitRuntime
		}
		fmt.Fprintln(stderr, perr)
		return ExitRuntime
	}
	if o.SolutionPath != "" {
		common.SortResults(solved)
		err := fetch.SaveSolution(o.SolutionPath, func(w io.Writer) error {
			return output.WriteText(w, solved, true)
		})
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitRuntime
		}
		cmdutil.Infof(stderr, o.Quiet, "saved answers to %s", o.SolutionPath)
	}
	if tally.NotFound > 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
