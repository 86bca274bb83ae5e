//go:build unix

package clip_test

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/cespare/xxhash"
	"github.com/labi-le/wrclip/internal/clip"
)

func TestCapture(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "empty", content: nil},
		{name: "text", content: []byte(randomString(30))},
		{name: "png header", content: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
		{name: "large", content: bytes.Repeat([]byte("0123456789abcdef"), 1<<16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := clip.Capture(bytes.NewReader(tt.content))
			if err != nil {
				t.Fatalf("Capture() failed: %v", err)
			}
			defer store.Close()

			if store.Size() != int64(len(tt.content)) {
				t.Errorf("Size() = %d, want %d", store.Size(), len(tt.content))
			}
			if want := xxhash.Sum64(tt.content); store.Hash() != want {
				t.Errorf("Hash() = %x, want %x", store.Hash(), want)
			}

			got, err := io.ReadAll(store.Reader())
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.content) {
				t.Errorf("Reader() returned %d bytes that differ from the input", len(got))
			}
		})
	}
}

func TestStore_IndependentReaders(t *testing.T) {
	content := strings.Repeat(randomString(128), 512)
	store := mustStore(t, content)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := io.ReadAll(store.Reader())
			if err != nil {
				t.Errorf("reader %d: %v", i, err)
				return
			}
			if string(got) != content {
				t.Errorf("reader %d saw %d bytes, want %d", i, len(got), len(content))
			}
		}()
	}
	wg.Wait()
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestCapture_ReadError(t *testing.T) {
	if _, err := clip.Capture(failingReader{}); err == nil {
		t.Fatal("Capture() succeeded on a failing reader")
	}
}
