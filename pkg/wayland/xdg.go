package wayland

import (
	"fmt"

	"deedles.dev/wl/wire"
)

const (
	XdgWmBaseInterface = "xdg_wm_base"
	XdgWmBaseVersion   = 2
)

// XdgWmBaseListener is a type that can respond to incoming
// messages for a XdgWmBase object.
type XdgWmBaseListener interface {
	// The ping event asks the client if it's still alive. Pass the serial
	// specified in the event back to the compositor by sending a "pong"
	// request back with the specified serial.
	Ping(serial uint32)
}

// The xdg_wm_base interface is exposed as a global object enabling
// clients to turn their wl_surfaces into windows in a desktop
// environment.
type XdgWmBase struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener XdgWmBaseListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewXdgWmBase returns a newly instantiated XdgWmBase. It is
// primarily intended for use by generated code.
func NewXdgWmBase(state wire.State) *XdgWmBase {
	return &XdgWmBase{state: state}
}

func BindXdgWmBase(state wire.State, registry wire.Binder, name, version uint32) *XdgWmBase {
	obj := NewXdgWmBase(state)
	state.Add(obj)
	registry.Bind(name, wire.NewID{Interface: XdgWmBaseInterface, Version: version, ID: obj.ID()})
	return obj
}

func (obj *XdgWmBase) State() wire.State {
	return obj.state
}

func (obj *XdgWmBase) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:

		serial := msg.ReadUint()

		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Ping(
			serial,
		)
		return nil
	}

	return wire.UnknownOpError{
		Interface: "xdg_wm_base",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *XdgWmBase) ID() uint32 {
	return obj.id
}

func (obj *XdgWmBase) SetID(id uint32) {
	obj.id = id
}

func (obj *XdgWmBase) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *XdgWmBase) String() string {
	return fmt.Sprintf("%v(%v)", "xdg_wm_base", obj.id)
}

func (obj *XdgWmBase) MethodName(op uint16) string {
	switch op {
	case 0:
		return "ping"
	}

	return "unknown method"
}

func (obj *XdgWmBase) Interface() string {
	return XdgWmBaseInterface
}

func (obj *XdgWmBase) Version() uint32 {
	return XdgWmBaseVersion
}

// This creates an xdg_surface for the given surface. While xdg_surface
// itself is not a role, the corresponding surface may only be assigned a
// role extending xdg_surface, such as xdg_toplevel or xdg_popup.
func (obj *XdgWmBase) GetXdgSurface(surface *Surface) (id *XdgSurface) {
	builder := wire.NewMessage(obj, 2)

	id = NewXdgSurface(obj.state)
	obj.state.Add(id)
	builder.WriteObject(id)
	builder.WriteObject(surface)

	builder.Method = "get_xdg_surface"
	builder.Args = []any{id, surface}
	obj.state.Enqueue(builder)
	return id
}

// A client must respond to a ping event with a pong request or the client
// may be deemed unresponsive.
func (obj *XdgWmBase) Pong(serial uint32) {
	builder := wire.NewMessage(obj, 3)

	builder.WriteUint(serial)

	builder.Method = "pong"
	builder.Args = []any{serial}
	obj.state.Enqueue(builder)
	return
}

const (
	XdgSurfaceInterface = "xdg_surface"
	XdgSurfaceVersion   = 2
)

// XdgSurfaceListener is a type that can respond to incoming
// messages for a XdgSurface object.
type XdgSurfaceListener interface {
	// The configure event marks the end of a configure sequence. A configure
	// sequence is a set of one or more events configuring the state of the
	// xdg_surface, including the final xdg_surface.configure event.
	//
	// Clients should arrange their surface for the new states, and then send
	// an ack_configure request with the serial sent in this configure event
	// at some point before committing the new surface.
	Configure(serial uint32)
}

// An interface that may be implemented by a wl_surface, for
// implementations that provide a desktop-style user interface.
//
// Creating an xdg_surface from a wl_surface which has a buffer attached
// or committed is a client error, and any attempts by a client to attach
// or manipulate a buffer prior to the first xdg_surface.configure call
// must also be treated as errors.
type XdgSurface struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener XdgSurfaceListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewXdgSurface returns a newly instantiated XdgSurface. It is
// primarily intended for use by generated code.
func NewXdgSurface(state wire.State) *XdgSurface {
	return &XdgSurface{state: state}
}

func (obj *XdgSurface) State() wire.State {
	return obj.state
}

func (obj *XdgSurface) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:

		serial := msg.ReadUint()

		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Configure(
			serial,
		)
		return nil
	}

	return wire.UnknownOpError{
		Interface: "xdg_surface",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *XdgSurface) ID() uint32 {
	return obj.id
}

func (obj *XdgSurface) SetID(id uint32) {
	obj.id = id
}

func (obj *XdgSurface) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *XdgSurface) String() string {
	return fmt.Sprintf("%v(%v)", "xdg_surface", obj.id)
}

func (obj *XdgSurface) MethodName(op uint16) string {
	switch op {
	case 0:
		return "configure"
	}

	return "unknown method"
}

func (obj *XdgSurface) Interface() string {
	return XdgSurfaceInterface
}

func (obj *XdgSurface) Version() uint32 {
	return XdgSurfaceVersion
}

// Destroy the xdg_surface object. An xdg_surface must only be destroyed
// after its role object has been destroyed.
func (obj *XdgSurface) Destroy() {
	builder := wire.NewMessage(obj, 0)

	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
	return
}

// This creates an xdg_toplevel object for the given xdg_surface and gives
// the associated wl_surface the xdg_toplevel role.
func (obj *XdgSurface) GetToplevel() (id *XdgToplevel) {
	builder := wire.NewMessage(obj, 1)

	id = NewXdgToplevel(obj.state)
	obj.state.Add(id)
	builder.WriteObject(id)

	builder.Method = "get_toplevel"
	builder.Args = []any{id}
	obj.state.Enqueue(builder)
	return id
}

// When a configure event is received, if a client commits the surface in
// response to the configure event, then the client must make an
// ack_configure request sometime before the commit request, passing along
// the serial of the configure event.
func (obj *XdgSurface) AckConfigure(serial uint32) {
	builder := wire.NewMessage(obj, 4)

	builder.WriteUint(serial)

	builder.Method = "ack_configure"
	builder.Args = []any{serial}
	obj.state.Enqueue(builder)
	return
}

const (
	XdgToplevelInterface = "xdg_toplevel"
	XdgToplevelVersion   = 2
)

// This interface defines an xdg_surface role which allows a surface to,
// among other things, set window-like properties such as maximize,
// fullscreen, and minimize, set application-specific metadata like title
// and id, and well as trigger user interactive operations such as
// interactive resize and move.
type XdgToplevel struct {

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewXdgToplevel returns a newly instantiated XdgToplevel. It is
// primarily intended for use by generated code.
func NewXdgToplevel(state wire.State) *XdgToplevel {
	return &XdgToplevel{state: state}
}

func (obj *XdgToplevel) State() wire.State {
	return obj.state
}

func (obj *XdgToplevel) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0, 1:
		// size hints and close requests; the window has no content.
		return nil
	}

	return wire.UnknownOpError{
		Interface: "xdg_toplevel",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *XdgToplevel) ID() uint32 {
	return obj.id
}

func (obj *XdgToplevel) SetID(id uint32) {
	obj.id = id
}

func (obj *XdgToplevel) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *XdgToplevel) String() string {
	return fmt.Sprintf("%v(%v)", "xdg_toplevel", obj.id)
}

func (obj *XdgToplevel) MethodName(op uint16) string {
	switch op {
	case 0:
		return "configure"

	case 1:
		return "close"
	}

	return "unknown method"
}

func (obj *XdgToplevel) Interface() string {
	return XdgToplevelInterface
}

func (obj *XdgToplevel) Version() uint32 {
	return XdgToplevelVersion
}

// This request destroys the role surface and unmaps the surface.
func (obj *XdgToplevel) Destroy() {
	builder := wire.NewMessage(obj, 0)

	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
	return
}

// Set a short title for the surface.
func (obj *XdgToplevel) SetTitle(title string) {
	builder := wire.NewMessage(obj, 2)

	builder.WriteString(title)

	builder.Method = "set_title"
	builder.Args = []any{title}
	obj.state.Enqueue(builder)
	return
}

// Set an application identifier for the surface.
func (obj *XdgToplevel) SetAppID(appID string) {
	builder := wire.NewMessage(obj, 3)

	builder.WriteString(appID)

	builder.Method = "set_app_id"
	builder.Args = []any{appID}
	obj.state.Enqueue(builder)
	return
}
