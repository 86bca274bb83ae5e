//go:build unix

package clip

import (
	"context"
)

// Dispatch runs protocol events one at a time until done is closed.
//
// Completion is watched next to the event stream instead of being polled
// between roundtrips: a running transfer never holds up dispatch and a
// finished one stops the loop without waiting for another event.
func Dispatch(ctx context.Context, events <-chan func() error, done <-chan struct{}) error {
	for {
		// completion wins over queued events
		select {
		case <-done:
			return nil
		default:
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return ErrDisconnected
			}
			if err := ev(); err != nil {
				return err
			}
		}
	}
}
