//go:build unix && !linux

package session

import (
	"errors"
	"os"
)

// newMemfd falls back to an unlinked file in XDG_RUNTIME_DIR, which is
// usually a tmpfs shared with the compositor.
func newMemfd(size int64) (*os.File, error) {
	f, err := os.CreateTemp(os.Getenv("XDG_RUNTIME_DIR"), appID+"-*")
	if err != nil {
		return nil, err
	}
	_ = os.Remove(f.Name())

	if err := f.Truncate(size); err != nil {
		return nil, errors.Join(err, f.Close())
	}

	return f, nil
}
