package playback

import (
	"context"
	"time"
)

// FrameFunc draws snapshot i. A non-nil error stops playback.
type FrameFunc func(i int, snapshot string) error

// Run plays seq from its current step to the end, calling frame for each
// snapshot and waiting one period after each. A sequence already on its last
// step restarts from 0. Run returns ctx.Err() when canceled; the wait between
// frames is interrupted, so cancellation takes effect within one period.
func Run(ctx context.Context, seq *Sequence, frame FrameFunc) error {
	if seq.Len() == 0 {
		return ErrEmpty
	}
	if seq.AtEnd() {
		seq.step = 0
	}

	for i := seq.Step(); i < seq.Len(); i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		seq.step = i
		if err := frame(i, seq.snapshots[i]); err != nil {
			return err
		}

		timer := time.NewTimer(seq.Period())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
