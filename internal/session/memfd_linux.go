package session

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func newMemfd(size int64) (*os.File, error) {
	fd, err := unix.MemfdCreate(appID, unix.MFD_CLOEXEC)
	if err != nil {
		return nil, err
	}

	if err := unix.Ftruncate(fd, size); err != nil {
		return nil, errors.Join(err, unix.Close(fd))
	}

	return os.NewFile(uintptr(fd), "presence-buffer"), nil
}
