//go:build unix

package clip_test

import (
	"math/rand"
	"os"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func randomString(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alphanumeric[r.Intn(len(alphanumeric))])
	}
	return b.String()
}

// fakeOffer plays the source client: every Receive hands a duplicate of the
// descriptor to serve, as the compositor would.
type fakeOffer struct {
	id    uint32
	serve func(mimeType string, fd *os.File)
	err   error

	mu        sync.Mutex
	received  []string
	destroyed bool
}

func (f *fakeOffer) Receive(mimeType string, fd *os.File) error {
	if f.err != nil {
		return f.err
	}

	nfd, err := syscall.Dup(int(fd.Fd()))
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.received = append(f.received, mimeType)
	f.mu.Unlock()

	f.serve(mimeType, os.NewFile(uintptr(nfd), "peer"))
	return nil
}

func (f *fakeOffer) Destroy() {
	f.mu.Lock()
	f.destroyed = true
	f.mu.Unlock()
}

func (f *fakeOffer) ID() uint32 { return f.id }

func (f *fakeOffer) Received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.received...)
}

func (f *fakeOffer) Destroyed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.destroyed
}

// writePeer answers with content, or with the requested type when content
// is empty.
func writePeer(content string) func(string, *os.File) {
	return func(mimeType string, fd *os.File) {
		go func() {
			defer fd.Close()
			if content == "" {
				_, _ = fd.WriteString(mimeType)
				return
			}
			_, _ = fd.WriteString(content)
		}()
	}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for completion")
	}
}

func assertNotDone(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
		t.Fatal("completed unexpectedly")
	case <-time.After(50 * time.Millisecond):
	}
}
