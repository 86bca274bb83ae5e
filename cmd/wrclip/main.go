//go:build unix

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/labi-le/wrclip/internal/clip"
	"github.com/labi-le/wrclip/internal/metadata"
	"github.com/labi-le/wrclip/internal/notification"
	"github.com/labi-le/wrclip/internal/session"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const (
	modeCopy  = "i"
	modePaste = "o"
)

var errUsage = errors.New("usage")

type action struct {
	mode  string
	types []string

	verbose     bool
	showVersion bool
	showHelp    bool
	notify      bool
	persist     bool

	timeout      time.Duration
	writeTimeout time.Duration
}

func newFlagSet(act *action, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("wrclip", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVar(&act.verbose, "verbose", false, "Verbose logs")
	fs.BoolVarP(&act.showVersion, "version", "v", false, "Show version")
	fs.BoolVarP(&act.showHelp, "help", "h", false, "Show help")
	fs.BoolVar(&act.notify, "notify", false, "Send a desktop notification when the selection is set or taken over (copy)")
	fs.BoolVar(&act.persist, "persist", false, "Keep serving the selection until another client takes it (copy)")
	fs.DurationVar(&act.timeout, "timeout", 0, "Give up after this long (0 waits forever)")
	fs.DurationVar(&act.writeTimeout, "write-timeout", clip.DefaultOptions.WriteTimeout, "Drop a paste request whose reader stalls this long (copy)")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(output, "Usage:\n  wrclip [flags] i [content_type ...]   copy stdin to the selection\n")
		_, _ = fmt.Fprintf(output, "  wrclip [flags] o [content_type ...]   paste the selection to stdout\n\nFlags:\n")
		fs.PrintDefaults()
	}

	return fs
}

func parseFlags(args []string, output io.Writer) (action, *flag.FlagSet, error) {
	var act action
	fs := newFlagSet(&act, output)

	if err := fs.Parse(args); err != nil {
		return act, fs, fmt.Errorf("%w: %w", errUsage, err)
	}

	if act.showHelp || act.showVersion {
		return act, fs, nil
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return act, fs, fmt.Errorf("%w: missing mode", errUsage)
	}

	switch rest[0] {
	case modeCopy, modePaste:
		act.mode = rest[0]
	default:
		return act, fs, fmt.Errorf("%w: unknown mode %q", errUsage, rest[0])
	}
	act.types = rest[1:]

	if act.timeout < 0 || act.writeTimeout < 0 {
		return act, fs, fmt.Errorf("%w: timeouts must not be negative", errUsage)
	}

	return act, fs, nil
}

func main() {
	os.Exit(run())
}

func run() int {
	act, fs, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return exitUsage
	}

	if act.showHelp {
		fs.Usage()
		return exitOK
	}

	applyTagsOverrides(&act)
	logger := initLogger(act.verbose)

	if act.showVersion {
		logger.Info().
			Str("v", metadata.Version).
			Str("commit_hash", metadata.CommitHash).
			Str("build_time", metadata.BuildTime).
			Send()
		return exitOK
	}

	logger.Debug().
		Str("v", metadata.Version).
		Str("mode", act.mode).
		Strs("types", act.types).
		Send()

	if !session.Supported {
		logger.Warn().Msg("neither WAYLAND_DISPLAY nor WAYLAND_SOCKET is set")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if act.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, act.timeout)
		defer cancelTimeout()
	}

	opts := clip.NewOptions(
		clip.WithLogger(logger),
		clip.WithNotifier(notification.New(act.notify)),
		clip.WithTypes(act.types...),
		clip.WithWriteTimeout(act.writeTimeout),
		clip.WithPersist(act.persist),
	)

	if act.mode == modeCopy {
		err = runCopy(ctx, logger, opts)
	} else {
		err = runPaste(ctx, logger, opts)
	}

	switch {
	case err == nil:
		return exitOK
	case act.mode == modeCopy && errors.Is(err, context.Canceled):
		logger.Debug().Msg("stopped serving the selection")
		return exitOK
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error().Dur("timeout", act.timeout).Msg("timed out")
		return exitFailure
	default:
		logger.Error().Err(err).Str("mode", act.mode).Msg("clipboard operation failed")
		return exitFailure
	}
}

func runCopy(ctx context.Context, logger zerolog.Logger, opts clip.Options) error {
	store, err := clip.Capture(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn().Err(err).Msg("close store")
		}
	}()

	sess, err := session.Open(logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Warn().Err(err).Msg("close session")
		}
	}()

	return sess.Copy(ctx, store, opts)
}

func runPaste(ctx context.Context, logger zerolog.Logger, opts clip.Options) error {
	sess, err := session.Open(logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Warn().Err(err).Msg("close session")
		}
	}()

	_, err = sess.Paste(ctx, os.Stdout, opts)
	return err
}

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}

	if verbose {
		zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
			short := file
			for i := len(file) - 1; i > 0; i-- {
				if file[i] == '/' {
					short = file[i+1:]
					break
				}
			}
			file = short
			return fmt.Sprintf("%s:%d", file, line)
		}
		return zerolog.New(output).
			Level(zerolog.TraceLevel).
			With().
			Timestamp().
			Caller().
			Logger()
	}

	return zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}
