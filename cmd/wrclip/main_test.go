//go:build unix

package main

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want action
	}{
		{
			name: "copy default types",
			args: []string{"i"},
			want: action{mode: modeCopy, types: []string{}, writeTimeout: 5 * time.Second},
		},
		{
			name: "paste with preference list",
			args: []string{"o", "text/html", "text/plain"},
			want: action{mode: modePaste, types: []string{"text/html", "text/plain"}, writeTimeout: 5 * time.Second},
		},
		{
			name: "interspersed flags",
			args: []string{"i", "--persist", "image/png", "--timeout", "3s"},
			want: action{
				mode:         modeCopy,
				types:        []string{"image/png"},
				persist:      true,
				timeout:      3 * time.Second,
				writeTimeout: 5 * time.Second,
			},
		},
		{
			name: "version needs no mode",
			args: []string{"-v"},
			want: action{showVersion: true, writeTimeout: 5 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := parseFlags(tt.args, io.Discard)
			if err != nil {
				t.Fatalf("parseFlags(%q) failed: %v", tt.args, err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(action{})); diff != "" {
				t.Errorf("parseFlags(%q) (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestParseFlags_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no mode", args: nil},
		{name: "unknown mode", args: []string{"x"}},
		{name: "unknown flag", args: []string{"--nope", "i"}},
		{name: "negative timeout", args: []string{"o", "--timeout=-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseFlags(tt.args, io.Discard)
			if !errors.Is(err, errUsage) {
				t.Errorf("parseFlags(%q) = %v, want a usage error", tt.args, err)
			}
		})
	}
}
