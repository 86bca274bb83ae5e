package wayland

import (
	"fmt"
	"os"

	wl "deedles.dev/wl/client"
	"deedles.dev/wl/wire"
)

const (
	DataDeviceManagerInterface = "wl_data_device_manager"
	DataDeviceManagerVersion   = 3
)

// The wl_data_device_manager is a singleton global object that provides
// access to inter-client data transfer mechanisms such as copy-and-paste
// and drag-and-drop. These mechanisms are tied to a wl_seat and this
// interface lets a client get a wl_data_device corresponding to a wl_seat.
type DataDeviceManager struct {

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewDataDeviceManager returns a newly instantiated DataDeviceManager. It is
// primarily intended for use by generated code.
func NewDataDeviceManager(state wire.State) *DataDeviceManager {
	return &DataDeviceManager{state: state}
}

func BindDataDeviceManager(state wire.State, registry wire.Binder, name, version uint32) *DataDeviceManager {
	obj := NewDataDeviceManager(state)
	state.Add(obj)
	registry.Bind(name, wire.NewID{Interface: DataDeviceManagerInterface, Version: version, ID: obj.ID()})
	return obj
}

func (obj *DataDeviceManager) State() wire.State {
	return obj.state
}

func (obj *DataDeviceManager) Dispatch(msg *wire.MessageBuffer) error {

	return wire.UnknownOpError{
		Interface: "wl_data_device_manager",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *DataDeviceManager) ID() uint32 {
	return obj.id
}

func (obj *DataDeviceManager) SetID(id uint32) {
	obj.id = id
}

func (obj *DataDeviceManager) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataDeviceManager) String() string {
	return fmt.Sprintf("%v(%v)", "wl_data_device_manager", obj.id)
}

func (obj *DataDeviceManager) MethodName(op uint16) string {
	switch op {
	}

	return "unknown method"
}

func (obj *DataDeviceManager) Interface() string {
	return DataDeviceManagerInterface
}

func (obj *DataDeviceManager) Version() uint32 {
	return DataDeviceManagerVersion
}

// Create a new data source.
func (obj *DataDeviceManager) CreateDataSource() (id *DataSource) {
	builder := wire.NewMessage(obj, 0)

	id = NewDataSource(obj.state)
	obj.state.Add(id)
	builder.WriteObject(id)

	builder.Method = "create_data_source"
	builder.Args = []any{id}
	obj.state.Enqueue(builder)
	return id
}

// Create a new data device for a given seat.
func (obj *DataDeviceManager) GetDataDevice(seat *wl.Seat) (id *DataDevice) {
	builder := wire.NewMessage(obj, 1)

	id = NewDataDevice(obj.state)
	obj.state.Add(id)
	builder.WriteObject(id)
	builder.WriteObject(seat)

	builder.Method = "get_data_device"
	builder.Args = []any{id, seat}
	obj.state.Enqueue(builder)
	return id
}

const (
	DataDeviceInterface = "wl_data_device"
	DataDeviceVersion   = 3
)

// DataDeviceListener is a type that can respond to incoming
// messages for a DataDevice object.
type DataDeviceListener interface {
	// The data_offer event introduces a new wl_data_offer object, which will
	// subsequently be used in either the data_device.enter event (for
	// drag-and-drop) or the data_device.selection event (for selections).
	// Immediately following the data_device.data_offer event, the new
	// data_offer object will send out data_offer.offer events to describe
	// the mime types it offers.
	DataOffer(id *DataOffer)

	// The selection event is sent out to notify the client of a new
	// wl_data_offer for the selection for this device. The
	// data_device.data_offer and the data_offer.offer events are sent out
	// immediately before this event to introduce the data offer object.
	// The selection event is sent to a client immediately before receiving
	// keyboard focus and when a new selection is set while the client has
	// keyboard focus. The data_offer is valid until a new data_offer or
	// NULL is received or until the client loses keyboard focus.
	Selection(id *DataOffer)
}

// There is one wl_data_device per seat which can be obtained from the
// global wl_data_device_manager singleton.
//
// A wl_data_device provides access to inter-client data transfer
// mechanisms such as copy-and-paste and drag-and-drop.
type DataDevice struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener DataDeviceListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewDataDevice returns a newly instantiated DataDevice. It is
// primarily intended for use by generated code.
func NewDataDevice(state wire.State) *DataDevice {
	return &DataDevice{state: state}
}

func (obj *DataDevice) State() wire.State {
	return obj.state
}

func (obj *DataDevice) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:

		id := NewDataOffer(obj.state)
		id.SetID(msg.ReadUint())

		obj.state.Add(id)

		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.DataOffer(
			id,
		)
		return nil

	case 1, 2, 3, 4:
		// drag-and-drop events, not tracked.
		return msg.Err()

	case 5:

		id, _ := obj.state.Get(msg.ReadUint()).(*DataOffer)

		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Selection(
			id,
		)
		return nil
	}

	return wire.UnknownOpError{
		Interface: "wl_data_device",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *DataDevice) ID() uint32 {
	return obj.id
}

func (obj *DataDevice) SetID(id uint32) {
	obj.id = id
}

func (obj *DataDevice) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataDevice) String() string {
	return fmt.Sprintf("%v(%v)", "wl_data_device", obj.id)
}

func (obj *DataDevice) MethodName(op uint16) string {
	switch op {
	case 0:
		return "data_offer"

	case 1:
		return "enter"

	case 2:
		return "leave"

	case 3:
		return "motion"

	case 4:
		return "drop"

	case 5:
		return "selection"
	}

	return "unknown method"
}

func (obj *DataDevice) Interface() string {
	return DataDeviceInterface
}

func (obj *DataDevice) Version() uint32 {
	return DataDeviceVersion
}

// This request asks the compositor to set the selection to the data from
// the source on behalf of the client.
//
// The given source may not be used in any further set_selection or
// start_drag requests.
func (obj *DataDevice) SetSelection(source *DataSource, serial uint32) {
	builder := wire.NewMessage(obj, 1)

	builder.WriteObject(source)
	builder.WriteUint(serial)

	builder.Method = "set_selection"
	builder.Args = []any{source, serial}
	obj.state.Enqueue(builder)
	return
}

// This request destroys the data device.
func (obj *DataDevice) Release() {
	builder := wire.NewMessage(obj, 2)

	builder.Method = "release"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
	return
}

const (
	DataSourceInterface = "wl_data_source"
	DataSourceVersion   = 3
)

// DataSourceListener is a type that can respond to incoming
// messages for a DataSource object.
type DataSourceListener interface {
	// Sent when a target accepts pointer_focus or motion events. If a
	// target does not accept any of the offered types, type is NULL.
	Target(mimeType string)

	// Request for data from the client. Send the data as the specified mime
	// type over the passed file descriptor, then close it.
	Send(mimeType string, fd *os.File)

	// This data source is no longer valid. There are several reasons why
	// this could happen, among them the source being replaced by another
	// data source.
	//
	// The client should clean up and destroy this data source.
	Cancelled()
}

// The wl_data_source object is the source side of a wl_data_offer. It is
// created by the source client in a data transfer and provides a way to
// describe the offered data and a way to respond to requests to transfer
// the data.
type DataSource struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener DataSourceListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewDataSource returns a newly instantiated DataSource. It is
// primarily intended for use by generated code.
func NewDataSource(state wire.State) *DataSource {
	return &DataSource{state: state}
}

func (obj *DataSource) State() wire.State {
	return obj.state
}

func (obj *DataSource) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:

		mimeType := msg.ReadString()

		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Target(
			mimeType,
		)
		return nil

	case 1:

		mimeType := msg.ReadString()

		fd := msg.ReadFile()

		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			_ = fd.Close()
			return nil
		}
		obj.Listener.Send(
			mimeType,
			fd,
		)
		return nil

	case 2:
		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Cancelled()
		return nil

	case 3, 4, 5:
		// drag-and-drop events, not tracked.
		return msg.Err()
	}

	return wire.UnknownOpError{
		Interface: "wl_data_source",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *DataSource) ID() uint32 {
	return obj.id
}

func (obj *DataSource) SetID(id uint32) {
	obj.id = id
}

func (obj *DataSource) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataSource) String() string {
	return fmt.Sprintf("%v(%v)", "wl_data_source", obj.id)
}

func (obj *DataSource) MethodName(op uint16) string {
	switch op {
	case 0:
		return "target"

	case 1:
		return "send"

	case 2:
		return "cancelled"

	case 3:
		return "dnd_drop_performed"

	case 4:
		return "dnd_finished"

	case 5:
		return "action"
	}

	return "unknown method"
}

func (obj *DataSource) Interface() string {
	return DataSourceInterface
}

func (obj *DataSource) Version() uint32 {
	return DataSourceVersion
}

// This request adds a mime type to the set of mime types advertised to
// targets. Can be called several times to offer multiple types.
func (obj *DataSource) Offer(mimeType string) {
	builder := wire.NewMessage(obj, 0)

	builder.WriteString(mimeType)

	builder.Method = "offer"
	builder.Args = []any{mimeType}
	obj.state.Enqueue(builder)
	return
}

// Destroy the data source.
func (obj *DataSource) Destroy() {
	builder := wire.NewMessage(obj, 1)

	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
	return
}

const (
	DataOfferInterface = "wl_data_offer"
	DataOfferVersion   = 3
)

// DataOfferListener is a type that can respond to incoming
// messages for a DataOffer object.
type DataOfferListener interface {
	// Sent immediately after creating the wl_data_offer object. One event
	// per offered mime type.
	Offer(mimeType string)
}

// A wl_data_offer represents a piece of data offered for transfer by
// another client (the source client). It is used by the copy-and-paste
// and drag-and-drop mechanisms. The offer describes the different mime
// types that the data can be converted to and provides the mechanism for
// transferring the data directly from the source client.
type DataOffer struct {
	// Listener's methods are called by incoming messages from the
	// remote end via Dispatch. If it is nil, messages are silently
	// ignored.
	Listener DataOfferListener

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewDataOffer returns a newly instantiated DataOffer. It is
// primarily intended for use by generated code.
func NewDataOffer(state wire.State) *DataOffer {
	return &DataOffer{state: state}
}

func (obj *DataOffer) State() wire.State {
	return obj.state
}

func (obj *DataOffer) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:

		mimeType := msg.ReadString()

		if err := msg.Err(); err != nil {
			return err
		}

		if obj.Listener == nil {
			return nil
		}
		obj.Listener.Offer(
			mimeType,
		)
		return nil

	case 1, 2:
		// drag-and-drop actions, not tracked.
		return msg.Err()
	}

	return wire.UnknownOpError{
		Interface: "wl_data_offer",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *DataOffer) ID() uint32 {
	return obj.id
}

func (obj *DataOffer) SetID(id uint32) {
	obj.id = id
}

func (obj *DataOffer) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *DataOffer) String() string {
	return fmt.Sprintf("%v(%v)", "wl_data_offer", obj.id)
}

func (obj *DataOffer) MethodName(op uint16) string {
	switch op {
	case 0:
		return "offer"

	case 1:
		return "source_actions"

	case 2:
		return "action"
	}

	return "unknown method"
}

func (obj *DataOffer) Interface() string {
	return DataOfferInterface
}

func (obj *DataOffer) Version() uint32 {
	return DataOfferVersion
}

// To transfer the offered data, the client issues this request and
// indicates the mime type it wants to receive. The transfer happens
// through the passed file descriptor (typically created with the pipe
// system call). The source client writes the data in the mime type
// representation requested and then closes the file descriptor.
//
// The receiving client reads from the read end of the pipe until EOF and
// then closes its end, at which point the transfer is complete.
func (obj *DataOffer) Receive(mimeType string, fd *os.File) {
	builder := wire.NewMessage(obj, 1)

	builder.WriteString(mimeType)
	builder.WriteFile(fd)

	builder.Method = "receive"
	builder.Args = []any{mimeType, fd}
	obj.state.Enqueue(builder)
	return
}

// Destroy the data offer.
func (obj *DataOffer) Destroy() {
	builder := wire.NewMessage(obj, 2)

	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
	return
}
