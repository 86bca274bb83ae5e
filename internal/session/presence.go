//go:build unix

package session

import (
	"fmt"
	"os"

	"github.com/labi-le/wrclip/pkg/wayland"
	"github.com/rs/zerolog"
)

const (
	appID = "wrclip"

	bufferWidth   = 1
	bufferHeight  = 1
	bytesPerPixel = 4
	bufferStride  = bufferWidth * bytesPerPixel
	bufferSize    = bufferStride * bufferHeight
)

// presence is a 1x1 transparent toplevel. Compositors deliver selection
// events only to clients holding keyboard focus, which needs a mapped
// surface.
type presence struct {
	logger zerolog.Logger

	wmBase     *wayland.XdgWmBase
	surface    *wayland.Surface
	xdgSurface *wayland.XdgSurface
	toplevel   *wayland.XdgToplevel
	pool       *wayland.ShmPool
	buffer     *wayland.Buffer
	memfd      *os.File

	mapped bool
}

func newPresence(s *Session) (*presence, error) {
	memfd, err := newMemfd(bufferSize)
	if err != nil {
		return nil, fmt.Errorf("presence buffer: %w", err)
	}

	p := &presence{
		logger: s.logger.With().Str("component", "presence").Logger(),
		wmBase: s.wmBase,
		memfd:  memfd,
	}

	s.wmBase.Listener = p

	p.pool = s.shm.CreatePool(memfd, bufferSize)
	p.buffer = p.pool.CreateBuffer(0, bufferWidth, bufferHeight, bufferStride, wayland.ShmFormatArgb8888)

	p.surface = s.compositor.CreateSurface()
	p.xdgSurface = s.wmBase.GetXdgSurface(p.surface)
	p.xdgSurface.Listener = p

	p.toplevel = p.xdgSurface.GetToplevel()
	p.toplevel.SetTitle(appID)
	p.toplevel.SetAppID(appID)

	// initial commit without a buffer requests the first configure
	p.surface.Commit()

	return p, nil
}

func (p *presence) Ping(serial uint32) {
	p.wmBase.Pong(serial)
}

func (p *presence) Configure(serial uint32) {
	p.xdgSurface.AckConfigure(serial)

	if !p.mapped {
		p.surface.Attach(p.buffer, 0, 0)
		p.mapped = true
		p.logger.Trace().Uint32("serial", serial).Msg("surface mapped")
	}

	p.surface.Commit()
}

func (p *presence) Close() error {
	p.toplevel.Destroy()
	p.xdgSurface.Destroy()
	p.buffer.Destroy()
	p.pool.Destroy()
	p.surface.Destroy()

	return p.memfd.Close()
}
