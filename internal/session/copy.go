//go:build unix

package session

import (
	"context"
	"fmt"

	"github.com/labi-le/wrclip/internal/clip"
	"github.com/labi-le/wrclip/pkg/ctxlog"
	"github.com/labi-le/wrclip/pkg/wayland"
)

// sourceListener routes data source events to the copier.
type sourceListener struct {
	*clip.Copier
}

// Target only matters for drag-and-drop.
func (sourceListener) Target(string) {}

// discardOffers destroys every offer the compositor introduces while
// copying, the client's own selection included.
type discardOffers struct{}

func (discardOffers) DataOffer(o *wayland.DataOffer) {
	o.Destroy()
}

func (discardOffers) Selection(*wayland.DataOffer) {}

// Copy claims the selection with the content of store and serves it until
// the copier is done.
func (s *Session) Copy(ctx context.Context, store *clip.Store, opts clip.Options) error {
	log := ctxlog.Op(s.logger, "session.Copy")

	if err := s.attach(discardOffers{}); err != nil {
		return err
	}

	copier := clip.NewCopier(store, opts)

	source := s.manager.CreateDataSource()
	source.Listener = sourceListener{copier}
	defer source.Destroy()

	for _, typ := range opts.Types {
		source.Offer(typ)
	}

	s.device.SetSelection(source, 0)
	if err := s.client.RoundTrip(); err != nil {
		return fmt.Errorf("%w: %w", clip.ErrOwnershipClaim, err)
	}

	log.Debug().
		Object("store", store).
		Strs("types", opts.Types).
		Bool("persist", opts.Persist).
		Msg("selection claimed")
	opts.Notifier.Notify("clipboard set")

	err := clip.Dispatch(ctx, s.client.Events(), copier.Done())
	copier.Wait()

	log.Debug().
		Int64("served", copier.Served()).
		Bool("superseded", copier.Superseded()).
		Msg("copy finished")

	return err
}
