//go:build unix

package clip

import (
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/labi-le/wrclip/pkg/ctxlog"
	"github.com/labi-le/wrclip/pkg/id"
	"github.com/labi-le/wrclip/pkg/network"
	"github.com/labi-le/wrclip/pkg/pipe"
	"github.com/rs/zerolog"
)

// Copier is the selection source. It answers every content request with
// the whole Store, whatever type was asked for.
type Copier struct {
	store  *Store
	opts   Options
	logger zerolog.Logger

	fills      sync.WaitGroup
	served     atomic.Int64
	superseded atomic.Bool

	done     chan struct{}
	doneOnce sync.Once
}

func NewCopier(store *Store, opts Options) *Copier {
	return &Copier{
		store:  store,
		opts:   opts,
		logger: opts.Logger.With().Str("component", "copier").Logger(),
		done:   make(chan struct{}),
	}
}

// Send fills fd on its own goroutine and closes it. Fills never fail the
// copier; the peer may ask again.
func (c *Copier) Send(mimeType string, fd *os.File) {
	log := ctxlog.Transfer(ctxlog.Op(c.logger, "Send"), id.New(), mimeType)

	c.fills.Add(1)
	go func() {
		defer c.fills.Done()

		n, err := c.fill(fd)
		if err != nil {
			if isExpectedSocketError(err) {
				log.Trace().Err(err).Int64("written", n).Msg("peer went away")
			} else {
				log.Warn().Err(err).Int64("written", n).Msg("write failed")
			}
			return
		}

		log.Debug().Str("written", humanize.Bytes(uint64(n))).Msg("content sent")

		c.served.Add(1)
		if !c.opts.Persist {
			c.finish()
		}
	}()
}

func (c *Copier) fill(fd *os.File) (int64, error) {
	f, err := pipe.Pollable(fd)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return io.Copy(network.IdleWriter{W: f, Idle: c.opts.WriteTimeout}, c.store.Reader())
}

// Cancelled is called once another client owns the selection.
func (c *Copier) Cancelled() {
	c.logger.Debug().Msg("selection superseded")
	c.superseded.Store(true)
	c.opts.Notifier.Notify("clipboard taken over by another client")
	c.finish()
}

func (c *Copier) finish() {
	c.doneOnce.Do(func() {
		close(c.done)
	})
}

// Done is closed when the copier has nothing left to serve.
func (c *Copier) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until every started fill has returned.
func (c *Copier) Wait() {
	c.fills.Wait()
}

// Served reports how many fills completed without error.
func (c *Copier) Served() int64 {
	return c.served.Load()
}

func (c *Copier) Superseded() bool {
	return c.superseded.Load()
}

func isExpectedSocketError(err error) bool {
	if errors.Is(err, syscall.EPIPE) {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	if errors.Is(err, syscall.EBADF) {
		return true
	}
	if errors.Is(err, os.ErrClosed) {
		return true
	}
	return false
}
