//go:build unix

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"runtime"

	"github.com/labi-le/wrclip/internal/clip"
	"github.com/labi-le/wrclip/pkg/ctxlog"
	"github.com/labi-le/wrclip/pkg/wayland"
)

// offerHandle adapts a wl_data_offer to clip.Offer.
type offerHandle struct {
	obj       *wayland.DataOffer
	roundTrip func() error
	forget    func(id uint32)
}

// Receive sends the request and waits for the compositor to take the
// descriptor, after which the caller may close its copy.
func (h *offerHandle) Receive(mimeType string, fd *os.File) error {
	h.obj.Receive(mimeType, fd)

	if err := h.roundTrip(); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("receive %s: %w", mimeType, clip.ErrDisconnected)
		}
		return fmt.Errorf("receive %s: %w", mimeType, err)
	}

	// the message builder holds a duplicate of fd until it is finalized,
	// and the drain sees no end of stream while any write end is open
	runtime.GC()

	return nil
}

func (h *offerHandle) Destroy() {
	h.forget(h.obj.ID())
	h.obj.Destroy()
}

func (h *offerHandle) ID() uint32 {
	return h.obj.ID()
}

type offerListener struct {
	handle *offerHandle
	paster *clip.Paster
}

func (l offerListener) Offer(mimeType string) {
	l.paster.Offered(l.handle, mimeType)
}

// deviceListener turns data device events into paster calls. Offers are
// tracked by object id so the selection event resolves to the handle the
// paster enumerated.
type deviceListener struct {
	roundTrip func() error
	paster    *clip.Paster
	offers    map[uint32]*offerHandle
}

func newDeviceListener(roundTrip func() error, paster *clip.Paster) *deviceListener {
	return &deviceListener{
		roundTrip: roundTrip,
		paster:    paster,
		offers:    make(map[uint32]*offerHandle),
	}
}

func (l *deviceListener) DataOffer(o *wayland.DataOffer) {
	h := &offerHandle{obj: o, roundTrip: l.roundTrip, forget: l.forget}
	l.offers[o.ID()] = h
	o.Listener = offerListener{handle: h, paster: l.paster}

	l.paster.DataOffer(h)
}

func (l *deviceListener) Selection(o *wayland.DataOffer) {
	if o == nil {
		l.paster.Selection(nil)
		return
	}

	h, ok := l.offers[o.ID()]
	if !ok {
		h = &offerHandle{obj: o, roundTrip: l.roundTrip, forget: l.forget}
	}
	l.paster.Selection(h)
}

func (l *deviceListener) forget(id uint32) {
	delete(l.offers, id)
}

// transferError decides whether a finished transfer fails the paste. Only
// a failed handoff does; I/O errors while draining stay in the outcome.
func transferError(t clip.Transfer) error {
	if errors.Is(t.Err, clip.ErrHandoff) {
		return t.Err
	}
	return nil
}

// Paste negotiates the current selection and streams it to sink. A missing
// selection, no compatible type or a broken drain is not an error; the
// outcome tells them apart.
func (s *Session) Paste(ctx context.Context, sink io.Writer, opts clip.Options) (clip.Outcome, error) {
	log := ctxlog.Op(s.logger, "session.Paste")

	paster := clip.NewPaster(sink, opts)
	if err := s.attach(newDeviceListener(s.client.RoundTrip, paster)); err != nil {
		return clip.Outcome{}, err
	}

	log.Trace().Strs("wanted", opts.Types).Msg("waiting for selection")

	if err := clip.Dispatch(ctx, s.client.Events(), paster.Done()); err != nil {
		return clip.Outcome{}, err
	}

	outcome := paster.Outcome()
	if err := transferError(outcome.Transfer); err != nil {
		return outcome, err
	}
	if outcome.Transfer.Err != nil {
		log.Warn().Object("outcome", outcome).Msg("transfer failed")
		return outcome, nil
	}

	log.Debug().Object("outcome", outcome).Msg("paste finished")
	return outcome, nil
}
