//go:build unix && !(linux || freebsd || netbsd || openbsd || dragonfly || solaris)

package pipe

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// pipeCloexec holds the fork lock so no child inherits the descriptors
// between pipe and the close-on-exec flag.
func pipeCloexec(fds []int) error {
	syscall.ForkLock.RLock()
	defer syscall.ForkLock.RUnlock()

	if err := unix.Pipe(fds); err != nil {
		return err
	}
	unix.CloseOnExec(fds[0])
	unix.CloseOnExec(fds[1])
	return nil
}
