package network

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

type WriteDeadline interface {
	SetWriteDeadline(time.Time) error
}

type DeadlineWriter interface {
	io.Writer
	WriteDeadline
}

func SetWriteDeadline(conn WriteDeadline, d time.Duration) error {
	if d != 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(d)); err != nil {
			return fmt.Errorf("set write deadline: %w", err)
		}
	}

	return nil
}

// IdleWriter pushes the write deadline forward before every Write, so a
// peer that keeps reading is never cut off but one that stalls for Idle
// is. Descriptors the poller cannot watch, such as regular files, are
// written without a bound.
type IdleWriter struct {
	W    DeadlineWriter
	Idle time.Duration
}

func (w IdleWriter) Write(p []byte) (int, error) {
	if err := SetWriteDeadline(w.W, w.Idle); err != nil && !errors.Is(err, os.ErrNoDeadline) {
		return 0, err
	}

	return w.W.Write(p)
}
