package wayland

import (
	"fmt"
	"os"

	"deedles.dev/wl/wire"
)

const (
	CompositorInterface = "wl_compositor"
	CompositorVersion   = 4
)

// A compositor. This object is a singleton global. The compositor is in
// charge of combining the contents of multiple surfaces into one
// displayable output.
type Compositor struct {

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewCompositor returns a newly instantiated Compositor. It is
// primarily intended for use by generated code.
func NewCompositor(state wire.State) *Compositor {
	return &Compositor{state: state}
}

func BindCompositor(state wire.State, registry wire.Binder, name, version uint32) *Compositor {
	obj := NewCompositor(state)
	state.Add(obj)
	registry.Bind(name, wire.NewID{Interface: CompositorInterface, Version: version, ID: obj.ID()})
	return obj
}

func (obj *Compositor) State() wire.State {
	return obj.state
}

func (obj *Compositor) Dispatch(msg *wire.MessageBuffer) error {

	return wire.UnknownOpError{
		Interface: "wl_compositor",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *Compositor) ID() uint32 {
	return obj.id
}

func (obj *Compositor) SetID(id uint32) {
	obj.id = id
}

func (obj *Compositor) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Compositor) String() string {
	return fmt.Sprintf("%v(%v)", "wl_compositor", obj.id)
}

func (obj *Compositor) MethodName(op uint16) string {
	switch op {
	}

	return "unknown method"
}

func (obj *Compositor) Interface() string {
	return CompositorInterface
}

func (obj *Compositor) Version() uint32 {
	return CompositorVersion
}

// Ask the compositor to create a new surface.
func (obj *Compositor) CreateSurface() (id *Surface) {
	builder := wire.NewMessage(obj, 0)

	id = NewSurface(obj.state)
	obj.state.Add(id)
	builder.WriteObject(id)

	builder.Method = "create_surface"
	builder.Args = []any{id}
	obj.state.Enqueue(builder)
	return id
}

const (
	SurfaceInterface = "wl_surface"
	SurfaceVersion   = 4
)

// A surface is a rectangular area that may be displayed on zero or more
// outputs, and shown any number of times at the compositor's discretion.
type Surface struct {

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewSurface returns a newly instantiated Surface. It is
// primarily intended for use by generated code.
func NewSurface(state wire.State) *Surface {
	return &Surface{state: state}
}

func (obj *Surface) State() wire.State {
	return obj.state
}

func (obj *Surface) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0, 1:
		// output enter/leave, not tracked.
		return msg.Err()
	}

	return wire.UnknownOpError{
		Interface: "wl_surface",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *Surface) ID() uint32 {
	return obj.id
}

func (obj *Surface) SetID(id uint32) {
	obj.id = id
}

func (obj *Surface) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Surface) String() string {
	return fmt.Sprintf("%v(%v)", "wl_surface", obj.id)
}

func (obj *Surface) MethodName(op uint16) string {
	switch op {
	case 0:
		return "enter"

	case 1:
		return "leave"
	}

	return "unknown method"
}

func (obj *Surface) Interface() string {
	return SurfaceInterface
}

func (obj *Surface) Version() uint32 {
	return SurfaceVersion
}

// Deletes the surface and invalidates its object ID.
func (obj *Surface) Destroy() {
	builder := wire.NewMessage(obj, 0)

	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
	return
}

// Set a buffer as the content of this surface.
//
// The new size of the surface is calculated based on the buffer size
// transformed by the inverse buffer_transform and the inverse
// buffer_scale.
func (obj *Surface) Attach(buffer *Buffer, x int32, y int32) {
	builder := wire.NewMessage(obj, 1)

	builder.WriteObject(buffer)
	builder.WriteInt(x)
	builder.WriteInt(y)

	builder.Method = "attach"
	builder.Args = []any{buffer, x, y}
	obj.state.Enqueue(builder)
	return
}

// Surface state (input, opaque, and damage regions, attached buffers,
// etc.) is double-buffered. A commit request atomically applies all
// pending state, replacing the current state.
func (obj *Surface) Commit() {
	builder := wire.NewMessage(obj, 6)

	builder.Method = "commit"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
	return
}

const (
	ShmInterface = "wl_shm"
	ShmVersion   = 1
)

// A singleton global object that provides support for shared memory.
//
// Clients can create wl_shm_pool objects using the create_pool request.
type Shm struct {

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewShm returns a newly instantiated Shm. It is
// primarily intended for use by generated code.
func NewShm(state wire.State) *Shm {
	return &Shm{state: state}
}

func BindShm(state wire.State, registry wire.Binder, name, version uint32) *Shm {
	obj := NewShm(state)
	state.Add(obj)
	registry.Bind(name, wire.NewID{Interface: ShmInterface, Version: version, ID: obj.ID()})
	return obj
}

func (obj *Shm) State() wire.State {
	return obj.state
}

func (obj *Shm) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		// format announcements, argb8888 is mandatory.
		return msg.Err()
	}

	return wire.UnknownOpError{
		Interface: "wl_shm",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *Shm) ID() uint32 {
	return obj.id
}

func (obj *Shm) SetID(id uint32) {
	obj.id = id
}

func (obj *Shm) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Shm) String() string {
	return fmt.Sprintf("%v(%v)", "wl_shm", obj.id)
}

func (obj *Shm) MethodName(op uint16) string {
	switch op {
	case 0:
		return "format"
	}

	return "unknown method"
}

func (obj *Shm) Interface() string {
	return ShmInterface
}

func (obj *Shm) Version() uint32 {
	return ShmVersion
}

// Create a new wl_shm_pool object.
//
// The pool can be used to create shared memory based buffer objects. The
// server will mmap size bytes of the passed file descriptor, to use as
// backing memory for the pool.
func (obj *Shm) CreatePool(fd *os.File, size int32) (id *ShmPool) {
	builder := wire.NewMessage(obj, 0)

	id = NewShmPool(obj.state)
	obj.state.Add(id)
	builder.WriteObject(id)
	builder.WriteFile(fd)
	builder.WriteInt(size)

	builder.Method = "create_pool"
	builder.Args = []any{id, fd, size}
	obj.state.Enqueue(builder)
	return id
}

type ShmFormat int64

const (
	// 32-bit ARGB format, [31:0] A:R:G:B 8:8:8:8 little endian
	ShmFormatArgb8888 ShmFormat = 0
	// 32-bit RGB format, [31:0] x:R:G:B 8:8:8:8 little endian
	ShmFormatXrgb8888 ShmFormat = 1
)

func (enum ShmFormat) String() string {
	switch enum {
	case 0:
		return "ShmFormatArgb8888"
	case 1:
		return "ShmFormatXrgb8888"
	}

	return "<invalid ShmFormat>"
}

const (
	ShmPoolInterface = "wl_shm_pool"
	ShmPoolVersion   = 1
)

// The wl_shm_pool object encapsulates a piece of memory shared between
// the compositor and client. Through the wl_shm_pool object, the client
// can allocate shared memory wl_buffer objects.
type ShmPool struct {

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewShmPool returns a newly instantiated ShmPool. It is
// primarily intended for use by generated code.
func NewShmPool(state wire.State) *ShmPool {
	return &ShmPool{state: state}
}

func (obj *ShmPool) State() wire.State {
	return obj.state
}

func (obj *ShmPool) Dispatch(msg *wire.MessageBuffer) error {

	return wire.UnknownOpError{
		Interface: "wl_shm_pool",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *ShmPool) ID() uint32 {
	return obj.id
}

func (obj *ShmPool) SetID(id uint32) {
	obj.id = id
}

func (obj *ShmPool) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *ShmPool) String() string {
	return fmt.Sprintf("%v(%v)", "wl_shm_pool", obj.id)
}

func (obj *ShmPool) MethodName(op uint16) string {
	switch op {
	}

	return "unknown method"
}

func (obj *ShmPool) Interface() string {
	return ShmPoolInterface
}

func (obj *ShmPool) Version() uint32 {
	return ShmPoolVersion
}

// Create a wl_buffer object from the pool.
//
// The buffer is created offset bytes into the pool and has width and
// height as specified. The stride argument specifies the number of bytes
// from the beginning of one row to the beginning of the next.
func (obj *ShmPool) CreateBuffer(offset int32, width int32, height int32, stride int32, format ShmFormat) (id *Buffer) {
	builder := wire.NewMessage(obj, 0)

	id = NewBuffer(obj.state)
	obj.state.Add(id)
	builder.WriteObject(id)
	builder.WriteInt(offset)
	builder.WriteInt(width)
	builder.WriteInt(height)
	builder.WriteInt(stride)
	builder.WriteUint(uint32(format))

	builder.Method = "create_buffer"
	builder.Args = []any{id, offset, width, height, stride, format}
	obj.state.Enqueue(builder)
	return id
}

// Destroy the shared memory pool.
//
// The mmapped memory will be released when all buffers that have been
// created from this pool are gone.
func (obj *ShmPool) Destroy() {
	builder := wire.NewMessage(obj, 1)

	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
	return
}

const (
	BufferInterface = "wl_buffer"
	BufferVersion   = 1
)

// A buffer provides the content for a wl_surface. Buffers are created
// through factory interfaces such as wl_shm.
type Buffer struct {

	// OnDelete is called when the object is removed from the tracking
	// system.
	OnDelete func()

	state wire.State
	id    uint32
}

// NewBuffer returns a newly instantiated Buffer. It is
// primarily intended for use by generated code.
func NewBuffer(state wire.State) *Buffer {
	return &Buffer{state: state}
}

func (obj *Buffer) State() wire.State {
	return obj.state
}

func (obj *Buffer) Dispatch(msg *wire.MessageBuffer) error {
	switch msg.Op() {
	case 0:
		// release, the buffer is never reused.
		return msg.Err()
	}

	return wire.UnknownOpError{
		Interface: "wl_buffer",
		Type:      "event",
		Op:        msg.Op(),
	}
}

func (obj *Buffer) ID() uint32 {
	return obj.id
}

func (obj *Buffer) SetID(id uint32) {
	obj.id = id
}

func (obj *Buffer) Delete() {
	if obj.OnDelete != nil {
		obj.OnDelete()
	}
}

func (obj *Buffer) String() string {
	return fmt.Sprintf("%v(%v)", "wl_buffer", obj.id)
}

func (obj *Buffer) MethodName(op uint16) string {
	switch op {
	case 0:
		return "release"
	}

	return "unknown method"
}

func (obj *Buffer) Interface() string {
	return BufferInterface
}

func (obj *Buffer) Version() uint32 {
	return BufferVersion
}

// Destroy a buffer.
func (obj *Buffer) Destroy() {
	builder := wire.NewMessage(obj, 0)

	builder.Method = "destroy"
	builder.Args = []any{}
	obj.state.Enqueue(builder)
	return
}
