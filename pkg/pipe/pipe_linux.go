package pipe

import (
	"golang.org/x/sys/unix"
)

// grow raises the pipe buffer, capped by /proc/sys/fs/pipe-max-size for
// unprivileged processes. Failure leaves the default size in place.
func grow(fd uintptr, size int) int {
	n, err := unix.FcntlInt(fd, unix.F_SETPIPE_SZ, size)
	if err != nil {
		return capacity(fd)
	}
	return n
}

// capacity returns the total capacity of the pipe
func capacity(fd uintptr) int {
	n, err := unix.FcntlInt(fd, unix.F_GETPIPE_SZ, 0)
	if err != nil {
		return 0
	}
	return n
}
