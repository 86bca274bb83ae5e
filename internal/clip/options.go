//go:build unix

package clip

import (
	"time"

	"github.com/labi-le/wrclip/internal/notification"
	"github.com/labi-le/wrclip/pkg/mime"
	"github.com/rs/zerolog"
)

type Options struct {
	Logger   zerolog.Logger
	Notifier notification.Notifier
	// Types is advertised by copy and used as the preference list by paste.
	Types mime.List
	// WriteTimeout closes a fill whose peer stops reading for this long.
	WriteTimeout time.Duration
	// Persist keeps a copy serving after the first successful fill, until
	// another client takes the selection.
	Persist bool
}

type Option func(*Options)

//nolint:mnd //shut up
var DefaultOptions = Options{
	Logger:       zerolog.Nop(),
	Notifier:     notification.NullNotifier{},
	Types:        mime.NewList(),
	WriteTimeout: 5 * time.Second,
}

func NewOptions(opts ...Option) Options {
	options := DefaultOptions

	for _, opt := range opts {
		opt(&options)
	}

	return options
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func WithNotifier(notifier notification.Notifier) Option {
	return func(o *Options) {
		o.Notifier = notifier
	}
}

func WithTypes(types ...string) Option {
	return func(o *Options) {
		o.Types = mime.NewList(types...)
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.WriteTimeout = d
	}
}

func WithPersist(persist bool) Option {
	return func(o *Options) {
		o.Persist = persist
	}
}
