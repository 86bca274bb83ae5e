//go:build unix

package pipe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

var (
	ErrFailedCreate = fmt.Errorf("pipe: failed to create pipe")
	ErrDrained      = errors.New("pipe: read end already drained")
)

// preferredSize is requested for every new pipe so a peer writing a large
// selection stalls less often on a slow reader.
const preferredSize = 1 << 20

// Channel is a one-shot unidirectional pipe. The write end is handed to a
// peer, the read end is drained locally exactly once.
type Channel struct {
	rfd *os.File
	wfd *os.File
}

func New() (*Channel, error) {
	var fds [2]int
	if err := pipeCloexec(fds[:]); err != nil {
		return nil, errors.Join(ErrFailedCreate, err)
	}

	grow(uintptr(fds[1]), preferredSize)

	return &Channel{
		rfd: os.NewFile(uintptr(fds[0]), "|0"),
		wfd: os.NewFile(uintptr(fds[1]), "|1"),
	}, nil
}

// Fd returns the write end. Once sent to the peer the local copy must be
// closed with CloseWrite, otherwise Drain never sees end of stream.
func (c *Channel) Fd() *os.File {
	return c.wfd
}

// ReadFd returns the read end.
func (c *Channel) ReadFd() *os.File {
	return c.rfd
}

// Capacity returns the kernel buffer size of the pipe, or 0 if unknown.
func (c *Channel) Capacity() int {
	return capacity(c.wfd.Fd())
}

func (c *Channel) CloseWrite() error {
	if err := c.wfd.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

// Drain copies the read end into dst until end of stream and closes it.
func (c *Channel) Drain(dst io.Writer) (int64, error) {
	defer c.rfd.Close()

	n, err := io.Copy(dst, c.rfd)
	if errors.Is(err, os.ErrClosed) {
		return n, ErrDrained
	}
	return n, err
}

// Close closes both ends.
func (c *Channel) Close() error {
	werr := c.CloseWrite()

	rerr := c.rfd.Close()
	if errors.Is(rerr, os.ErrClosed) {
		rerr = nil
	}

	return errors.Join(werr, rerr)
}

// Pollable re-opens a descriptor received from a peer in non-blocking mode
// so deadlines apply to it. f is closed; the returned file owns a
// duplicate of the descriptor.
func Pollable(f *os.File) (*os.File, error) {
	defer f.Close()

	rc, err := f.SyscallConn()
	if err != nil {
		return nil, fmt.Errorf("pipe: syscall conn: %w", err)
	}

	var (
		nfd   int
		opErr error
	)
	ctrlErr := rc.Control(func(fd uintptr) {
		nfd, opErr = unix.FcntlInt(fd, unix.F_DUPFD_CLOEXEC, 0)
		if opErr != nil {
			return
		}
		if opErr = unix.SetNonblock(nfd, true); opErr != nil {
			_ = unix.Close(nfd)
		}
	})
	if err := errors.Join(ctrlErr, opErr); err != nil {
		return nil, fmt.Errorf("pipe: make pollable: %w", err)
	}

	return os.NewFile(uintptr(nfd), f.Name()), nil
}
