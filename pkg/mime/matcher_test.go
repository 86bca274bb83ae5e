package mime_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labi-le/wrclip/pkg/mime"
)

func permutations(in []string) [][]string {
	if len(in) <= 1 {
		return [][]string{append([]string(nil), in...)}
	}

	var out [][]string
	for i := range in {
		rest := make([]string, 0, len(in)-1)
		rest = append(rest, in[:i]...)
		rest = append(rest, in[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]string{in[i]}, p...))
		}
	}
	return out
}

func TestNewList(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want mime.List
	}{
		{name: "empty", in: nil, want: mime.List{"text/plain;charset=utf-8"}},
		{name: "single", in: []string{"image/png"}, want: mime.List{"image/png"}},
		{name: "ordered", in: []string{"text/html", "text/plain"}, want: mime.List{"text/html", "text/plain"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, mime.NewList(tt.in...)); diff != "" {
				t.Errorf("NewList() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewList_Copies(t *testing.T) {
	in := []string{"text/html", "text/plain"}
	list := mime.NewList(in...)
	in[0] = "image/png"

	if list[0] != "text/html" {
		t.Fatalf("list shares backing array with caller input: %v", list)
	}
}

func TestMatcher_Best(t *testing.T) {
	tests := []struct {
		name       string
		wanted     mime.List
		advertised []string
		want       string
		ok         bool
	}{
		{
			name:       "exact",
			wanted:     mime.NewList(),
			advertised: []string{"text/plain;charset=utf-8"},
			want:       "text/plain;charset=utf-8",
			ok:         true,
		},
		{
			name:       "disjoint",
			wanted:     mime.NewList("text/plain"),
			advertised: []string{"application/x-foo"},
		},
		{
			name:       "nothing advertised",
			wanted:     mime.NewList("text/plain"),
			advertised: nil,
		},
		{
			name:       "parameters are not stripped",
			wanted:     mime.NewList("text/plain"),
			advertised: []string{"text/plain;charset=utf-8"},
		},
		{
			name:       "prefers lower index",
			wanted:     mime.NewList("text/html", "text/plain", "STRING"),
			advertised: []string{"STRING", "image/png", "text/plain", "text/html"},
			want:       "text/html",
			ok:         true,
		},
		{
			name:       "duplicates",
			wanted:     mime.NewList("text/html", "text/plain"),
			advertised: []string{"text/plain", "text/plain"},
			want:       "text/plain",
			ok:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mime.NewMatcher(tt.wanted)
			for _, a := range tt.advertised {
				m.Observe(a)
			}

			got, ok := m.Best()
			if ok != tt.ok || got != tt.want {
				t.Errorf("Best() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMatcher_OrderIndependent(t *testing.T) {
	wanted := mime.NewList("text/html", "text/plain", "UTF8_STRING")
	advertised := []string{"UTF8_STRING", "image/png", "text/plain", "text/html"}

	for _, order := range permutations(advertised) {
		m := mime.NewMatcher(wanted)
		prev := len(wanted)
		for _, a := range order {
			m.Observe(a)

			best, ok := m.Best()
			if !ok {
				continue
			}
			idx := wanted.Index(best)
			if idx > prev {
				t.Fatalf("order %v: best regressed from %d to %d", order, prev, idx)
			}
			prev = idx
		}

		if best, _ := m.Best(); best != "text/html" {
			t.Errorf("order %v: Best() = %q, want text/html", order, best)
		}
	}
}

func TestMatcher_Observe(t *testing.T) {
	m := mime.NewMatcher(mime.NewList("a", "b", "c"))

	steps := []struct {
		advertised string
		improved   bool
	}{
		{"c", true},
		{"x", false},
		{"c", false},
		{"a", true},
		{"b", false},
	}

	for _, s := range steps {
		if got := m.Observe(s.advertised); got != s.improved {
			t.Errorf("Observe(%q) = %v, want %v", s.advertised, got, s.improved)
		}
	}
}

func TestMatcher_Reset(t *testing.T) {
	m := mime.NewMatcher(mime.NewList("a", "b"))
	m.Observe("a")
	m.Reset()

	if _, ok := m.Best(); ok {
		t.Fatal("Best() reported a match after Reset")
	}

	m.Observe("b")
	if got, _ := m.Best(); got != "b" {
		t.Errorf("Best() = %q after Reset, want b", got)
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]mime.Type{
		"text/plain;charset=utf-8": mime.TypeText,
		"TEXT/HTML":                mime.TypeText,
		"image/png":                mime.TypeImage,
		"text/uri-list":            mime.TypePath,
		"application/x-foo":        mime.TypeBinary,
		"UTF8_STRING":              mime.TypeText,
		"video/mp4":                mime.TypeVideo,
		"":                         mime.TypeUnknown,
	}

	for in, want := range tests {
		if got := mime.Classify(in); got != want {
			t.Errorf("Classify(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFrom(t *testing.T) {
	if got := mime.From([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")); got != mime.TypeImage {
		t.Errorf("From(png) = %v, want image", got)
	}
	if got := mime.From([]byte("hello")); got != mime.TypeText {
		t.Errorf("From(text) = %v, want text", got)
	}
	if got := mime.From([]byte{0x00, 0x01, 0xFE, 0xFF}); got != mime.TypeBinary {
		t.Errorf("From(binary) = %v, want binary", got)
	}
}
