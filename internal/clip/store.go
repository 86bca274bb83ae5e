//go:build unix

package clip

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash"
	"github.com/dustin/go-humanize"
	"github.com/labi-le/wrclip/pkg/mime"
	"github.com/rs/zerolog"
)

// Store holds captured input in an unlinked temporary file. It is never
// written after Capture, so any number of fills may read it at once.
type Store struct {
	file *os.File
	size int64
	hash uint64
	kind mime.Type
}

// Capture copies r to exhaustion into a new Store.
func Capture(r io.Reader) (*Store, error) {
	file, err := os.CreateTemp("", "wrclip-*")
	if err != nil {
		return nil, fmt.Errorf("store create: %w", err)
	}
	_ = os.Remove(file.Name())

	digest := xxhash.New()
	head := &prefix{limit: mime.SniffLen}

	size, err := io.Copy(io.MultiWriter(file, digest, head), r)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("store capture: %w", err)
	}

	return &Store{
		file: file,
		size: size,
		hash: digest.Sum64(),
		kind: mime.From(head.buf),
	}, nil
}

// Reader returns an independent cursor over the whole content.
func (s *Store) Reader() *io.SectionReader {
	return io.NewSectionReader(s.file, 0, s.size)
}

func (s *Store) Size() int64 {
	return s.size
}

func (s *Store) Hash() uint64 {
	return s.hash
}

func (s *Store) Close() error {
	return s.file.Close()
}

func (s *Store) MarshalZerologObject(e *zerolog.Event) {
	e.Str("size", humanize.Bytes(uint64(s.size)))
	e.Uint64("hash", s.hash)
	e.Stringer("kind", s.kind)
}

type prefix struct {
	buf   []byte
	limit int
}

func (p *prefix) Write(b []byte) (int, error) {
	if room := p.limit - len(p.buf); room > 0 {
		p.buf = append(p.buf, b[:min(room, len(b))]...)
	}
	return len(b), nil
}
