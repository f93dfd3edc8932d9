// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"beaconzone-core/report"
	"beaconzone/internal/puzzle"
)

// Config controls the solving pipeline.
type Config struct {
	Threads int    // number of worker goroutines (>=1)
	Load    Loader // nil = report.LoadContext
}

// ForEachResult loads every input, solves it with s on a pool of workers,
// and calls visit from a single goroutine with each Result in completion
// order. Inputs listed more than once are solved once. A load failure does
// not stop other inputs; the first error encountered (including context
// cancellation) is returned.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	inputs []string,
	s Solver,
	visit func(puzzle.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	load := cfg.Load
	if load == nil {
		load = report.LoadContext
	}

	type outcome struct {
		res puzzle.Result
		err error
	}
	jobs := make(chan string, cfg.Threads*2)
	results := make(chan outcome, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-jobs:
					if !ok {
						return
					}
					var o outcome
					readings, err := load(ctx, path)
					if err != nil {
						o.err = err
					} else {
						o.res = s.Solve(ctx, path, readings)
					}
					select {
					case results <- o:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for o := range results {
			if o.err != nil {
				if cerr == nil {
					cerr = o.err
				}
				continue
			}
			if err := visit(o.res); err != nil && cerr == nil {
				cerr = err
			}
		}
	}()

	// Feed work
	seen := make(map[string]struct{}, len(inputs))
feed:
	for _, in := range inputs {
		if _, dup := seen[in]; dup {
			continue
		}
		seen[in] = struct{}{}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- in:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
