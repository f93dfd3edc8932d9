package integration

import (
	"context"
	"io"
	"testing"

	"beaconzone/internal/app"
)

func TestCancelledRunExit130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"--limit", "4000000", example}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
