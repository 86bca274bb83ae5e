//go:build unix

package session

import (
	"errors"
	"fmt"
	"os"

	wl "deedles.dev/wl/client"
	"github.com/labi-le/wrclip/pkg/ctxlog"
	"github.com/labi-le/wrclip/pkg/wayland"
	"github.com/rs/zerolog"
)

var (
	ErrConnect               = errors.New("failed to connect to the wayland display")
	ErrCapabilityUnavailable = errors.New("compositor does not provide a required global")
)

// highest versions the bindings understand
const (
	seatVersion       = 5
	managerVersion    = wayland.DataDeviceManagerVersion
	compositorVersion = wayland.CompositorVersion
	shmVersion        = wayland.ShmVersion
	wmBaseVersion     = wayland.XdgWmBaseVersion
)

var Supported = (func() bool {
	_, exist1 := os.LookupEnv("WAYLAND_DISPLAY")
	_, exist2 := os.LookupEnv("WAYLAND_SOCKET")
	return exist1 || exist2
})()

// Session is one connection to the compositor with the globals bound that
// copy and paste need.
type Session struct {
	client   *wl.Client
	registry *wl.Registry
	logger   zerolog.Logger

	seat       *wl.Seat
	manager    *wayland.DataDeviceManager
	compositor *wayland.Compositor
	shm        *wayland.Shm
	wmBase     *wayland.XdgWmBase

	// release request appeared in wl_data_device_manager version 2
	managerVersion uint32

	device   *wayland.DataDevice
	presence *presence
}

// Open dials the compositor and binds the globals. It fails with
// ErrCapabilityUnavailable naming the first missing interface.
func Open(logger zerolog.Logger) (*Session, error) {
	client, err := wl.Dial()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}

	s := &Session{
		client: client,
		logger: logger.With().Str("component", "session").Logger(),
	}

	if err := s.setup(); err != nil {
		return nil, errors.Join(err, client.Close())
	}

	return s, nil
}

func (s *Session) setup() error {
	s.registry = s.client.Display().GetRegistry()
	s.registry.Listener = s

	if err := s.client.RoundTrip(); err != nil {
		return fmt.Errorf("round trip: %w", err)
	}

	return s.missing()
}

func (s *Session) Global(name uint32, inter string, version uint32) {
	log := ctxlog.Op(s.logger, "session.Global")

	switch inter {
	case wl.SeatInterface:
		if s.seat != nil {
			// first seat wins
			return
		}
		s.seat = wl.BindSeat(s.client, s.registry, name, capVersion(version, seatVersion))
	case wayland.DataDeviceManagerInterface:
		s.managerVersion = capVersion(version, managerVersion)
		s.manager = wayland.BindDataDeviceManager(s.client, s.registry, name, s.managerVersion)
	case wayland.CompositorInterface:
		s.compositor = wayland.BindCompositor(s.client, s.registry, name, capVersion(version, compositorVersion))
	case wayland.ShmInterface:
		s.shm = wayland.BindShm(s.client, s.registry, name, capVersion(version, shmVersion))
	case wayland.XdgWmBaseInterface:
		s.wmBase = wayland.BindXdgWmBase(s.client, s.registry, name, capVersion(version, wmBaseVersion))
	default:
		return
	}

	log.Trace().
		Str("interface", inter).
		Uint32("name", name).
		Uint32("version", version).
		Msg("bound global")
}

func (s *Session) GlobalRemove(uint32) {}

// missing reports the first global that was not advertised.
func (s *Session) missing() error {
	required := []struct {
		inter string
		bound bool
	}{
		{wl.SeatInterface, s.seat != nil},
		{wayland.DataDeviceManagerInterface, s.manager != nil},
		{wayland.CompositorInterface, s.compositor != nil},
		{wayland.ShmInterface, s.shm != nil},
		{wayland.XdgWmBaseInterface, s.wmBase != nil},
	}

	for _, r := range required {
		if !r.bound {
			return fmt.Errorf("%w: %s", ErrCapabilityUnavailable, r.inter)
		}
	}

	return nil
}

func capVersion(advertised, supported uint32) uint32 {
	return min(advertised, supported)
}

// attach creates the seat's data device and the presence surface. The
// listener is installed before any event for the device can be
// dispatched.
func (s *Session) attach(listener wayland.DataDeviceListener) error {
	s.device = s.manager.GetDataDevice(s.seat)
	s.device.Listener = listener

	p, err := newPresence(s)
	if err != nil {
		return err
	}
	s.presence = p

	if err := s.client.RoundTrip(); err != nil {
		return fmt.Errorf("round trip: %w", err)
	}

	return nil
}

func (s *Session) Close() error {
	log := ctxlog.Op(s.logger, "session.Close")

	var errs []error
	if s.presence != nil {
		errs = append(errs, s.presence.Close())
	}
	if s.device != nil && s.managerVersion >= 2 {
		s.device.Release()
	}

	if err := s.client.Close(); err != nil {
		log.Error().
			Str("closer", "client").
			Err(err).
			Msg("failed to close client")
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
