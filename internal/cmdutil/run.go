package cmdutil

import (
	"context"
	"errors"

	"beaconzone-core/engine"
	"beaconzone/internal/pipeline"
	"beaconzone/internal/puzzle"
)

// Tally counts what a run produced.
type Tally struct {
	Results  int // results handed to send
	NotFound int // results whose locate step exhausted the bounds
}

// RunStream runs the shared pipeline and streams every result via send.
// It returns the tally and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	inputs []string,
	s pipeline.Solver,
	send func(puzzle.Result) error,
) (Tally, error) {
	var t Tally
	err := pipeline.ForEachResult(ctx, cfg, inputs, s, func(r puzzle.Result) error {
		if errors.Is(r.Err, engine.ErrNotFound) {
			t.NotFound++
		}
		if err := send(r); err != nil {
			return err
		}
		t.Results++
		return nil
	})
	return t, err
}
