package flywheel

import (
	"context"
	"time"
)

// Input is a pointer event routed to the engine from the host
type Input func(e *Engine)

// Run ticks the engine every interval until ctx is done, and returns ctx.Err().
// Inputs are applied between ticks on the calling goroutine, so the engine has a single
// writer at any time. frame, if not nil, is called with a snapshot after every tick.
func (e *Engine) Run(ctx context.Context, interval time.Duration, inputs <-chan Input, frame func(State)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case input, ok := <-inputs:
			if !ok {
				// stop selecting on a closed channel, keep ticking
				inputs = nil
				continue
			}
			input(e)
		case <-ticker.C:
			e.Tick()
			if frame != nil {
				frame(e.Snapshot())
			}
		}
	}
}
