//go:build unix

package clip

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/labi-le/wrclip/pkg/id"
	"github.com/labi-le/wrclip/pkg/pipe"
	"github.com/rs/zerolog"
)

// Offer is a selection advertised by another client.
type Offer interface {
	// Receive hands fd to the source client, which writes the content as
	// mimeType and closes its end. The caller keeps ownership of fd.
	Receive(mimeType string, fd *os.File) error
	Destroy()
	ID() uint32
}

// Transfer is the outcome of one descriptor handoff. It is produced
// whether or not the copy succeeded; the exchange is never retried.
type Transfer struct {
	ID       id.Unique
	MimeType string
	Written  int64
	Err      error
}

func (t Transfer) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("transfer_id", t.ID)
	e.Str("mime", t.MimeType)
	e.Str("written", humanize.Bytes(uint64(t.Written)))
	if t.Err != nil {
		e.AnErr("transfer_err", t.Err)
	}
}

// StartTransfer asks offer for mimeType and streams the answer to dst.
//
// The handoff runs on the caller's goroutine because protocol objects
// belong to the dispatch loop. Draining runs on a worker so a stalled
// peer or sink never blocks dispatch. The returned channel yields exactly
// one Transfer.
func StartTransfer(offer Offer, mimeType string, dst io.Writer) <-chan Transfer {
	result := make(chan Transfer, 1)
	t := Transfer{ID: id.New(), MimeType: mimeType}

	ch, err := pipe.New()
	if err != nil {
		t.Err = err
		result <- t
		return result
	}

	if err := offer.Receive(mimeType, ch.Fd()); err != nil {
		t.Err = fmt.Errorf("%w: %w", ErrHandoff, err)
		_ = ch.Close()
		result <- t
		return result
	}

	if err := ch.CloseWrite(); err != nil {
		t.Err = err
		_ = ch.Close()
		result <- t
		return result
	}

	go func() {
		t.Written, t.Err = ch.Drain(dst)
		result <- t
	}()

	return result
}
