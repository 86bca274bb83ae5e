//go:build unix

package clip_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labi-le/wrclip/internal/clip"
	"github.com/labi-le/wrclip/pkg/pipe"
)

func mustStore(t *testing.T, content string) *clip.Store {
	t.Helper()

	store, err := clip.Capture(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Capture() failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// request mimics a peer asking for content: it creates a pipe, gives the
// write end to the copier and returns the drained bytes.
func request(t *testing.T, c *clip.Copier, mimeType string) <-chan string {
	t.Helper()

	ch, err := pipe.New()
	if err != nil {
		t.Fatal(err)
	}

	c.Send(mimeType, ch.Fd())

	out := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = ch.Drain(&buf)
		out <- buf.String()
	}()
	return out
}

func TestCopier_Send(t *testing.T) {
	content := randomString(30)
	c := clip.NewCopier(mustStore(t, content), clip.NewOptions(clip.WithPersist(true)))

	for _, typ := range []string{"text/plain;charset=utf-8", "image/png", "unsupported/anything"} {
		select {
		case got := <-request(t, c, typ):
			if got != content {
				t.Errorf("Send(%q) delivered %q, want %q", typ, got, content)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("Send(%q) never closed the descriptor", typ)
		}
	}

	c.Wait()
	if got := c.Served(); got != 3 {
		t.Errorf("Served() = %d, want 3", got)
	}
}

func TestCopier_ConcurrentFills(t *testing.T) {
	content := strings.Repeat(randomString(64), 1<<14)
	c := clip.NewCopier(mustStore(t, content), clip.NewOptions(clip.WithPersist(true)))

	const fills = 8
	var wg sync.WaitGroup
	results := make([]<-chan string, fills)
	for i := range fills {
		results[i] = request(t, c, "text/plain")
	}

	for i, res := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := <-res; got != content {
				t.Errorf("fill %d delivered %d bytes, want %d", i, len(got), len(content))
			}
		}()
	}
	wg.Wait()
	c.Wait()
}

func TestCopier_ServesOnce(t *testing.T) {
	c := clip.NewCopier(mustStore(t, "once"), clip.NewOptions())

	assertNotDone(t, c.Done())
	<-request(t, c, "text/plain")

	waitDone(t, c.Done())
	if c.Superseded() {
		t.Error("Superseded() = true after serving")
	}
}

func TestCopier_Persist(t *testing.T) {
	c := clip.NewCopier(mustStore(t, "keep"), clip.NewOptions(clip.WithPersist(true)))

	<-request(t, c, "text/plain")
	c.Wait()
	assertNotDone(t, c.Done())

	c.Cancelled()
	waitDone(t, c.Done())
	if !c.Superseded() {
		t.Error("Superseded() = false after Cancelled")
	}
}

func TestCopier_FailedFillKeepsServing(t *testing.T) {
	c := clip.NewCopier(mustStore(t, "content"), clip.NewOptions())

	ch, err := pipe.New()
	if err != nil {
		t.Fatal(err)
	}
	if err := ch.ReadFd().Close(); err != nil {
		t.Fatal(err)
	}
	c.Send("text/plain", ch.Fd())
	c.Wait()

	if got := c.Served(); got != 0 {
		t.Errorf("Served() = %d after a broken pipe, want 0", got)
	}
	assertNotDone(t, c.Done())

	if got := <-request(t, c, "text/plain"); got != "content" {
		t.Errorf("retry delivered %q", got)
	}
	waitDone(t, c.Done())
}

func TestCopier_RegularFile(t *testing.T) {
	content := "hello regular file"
	c := clip.NewCopier(mustStore(t, content), clip.NewOptions())

	path := filepath.Join(t.TempDir(), "selection")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		t.Fatal(err)
	}

	c.Send("text/plain", f)
	c.Wait()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("file holds %q, want %q", got, content)
	}
	if c.Served() != 1 {
		t.Errorf("Served() = %d, want 1", c.Served())
	}
	waitDone(t, c.Done())
}

func TestCopier_WriteTimeout(t *testing.T) {
	// larger than any pipe buffer, so an idle reader stalls the fill
	content := strings.Repeat("x", 8<<20)
	c := clip.NewCopier(mustStore(t, content), clip.NewOptions(
		clip.WithPersist(true),
		clip.WithWriteTimeout(50*time.Millisecond),
	))

	ch, err := pipe.New()
	if err != nil {
		t.Fatal(err)
	}
	defer ch.Close()

	c.Send("text/plain", ch.Fd())

	finished := make(chan struct{})
	go func() {
		c.Wait()
		close(finished)
	}()

	waitDone(t, finished)
	if got := c.Served(); got != 0 {
		t.Errorf("Served() = %d for a stalled peer, want 0", got)
	}
}
