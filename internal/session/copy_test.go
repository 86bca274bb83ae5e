//go:build unix

package session

import (
	"testing"

	"deedles.dev/wl/wire"
	"github.com/google/go-cmp/cmp"
	"github.com/labi-le/wrclip/pkg/wayland"
)

func TestDiscardOffers(t *testing.T) {
	state := &connState{objects: make(map[uint32]wire.Object)}

	o := wayland.NewDataOffer(state)
	state.Add(o)

	var l wayland.DataDeviceListener = discardOffers{}
	l.DataOffer(o)
	l.Selection(o)
	l.Selection(nil)

	if diff := cmp.Diff([]string{"destroy"}, state.sent); diff != "" {
		t.Errorf("requests (-want +got):\n%s", diff)
	}
}
