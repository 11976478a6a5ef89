// Package logging builds the zerolog loggers used by the kaya CLI and
// attaches per-invocation trace IDs to command contexts. The query library
// itself stays logger-free; everything here serves the binary.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations accepted by Config.Output.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Log formats accepted by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparsable
	// levels fall back to info.
	Level string
	// Format selects console or JSON output. Anything but "json" renders
	// the human console format.
	Format string
	// Output selects the destination: stderr (default), stdout, or file.
	Output string
	// File is the log file path when Output is "file".
	File string
	// Caller adds the caller field to every event.
	Caller bool
}

// Result carries the constructed logger plus enough state to report and
// later release a file destination.
type Result struct {
	Logger zerolog.Logger
	// FilePath is the open log file when UsingFile is set.
	FilePath  string
	UsingFile bool
	// FallbackUsed marks that a file destination was requested but could
	// not be opened, and logging fell back to stderr.
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any. Safe to call on a console
// result.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger from cfg. A file destination that cannot be opened
// degrades to stderr and reports the fallback on the Result rather than
// failing, so a broken log path never blocks the command itself.
func New(cfg Config) *Result {
	res := &Result{}

	var out io.Writer
	switch cfg.Output {
	case OutputStdout:
		out = os.Stdout
	case OutputFile:
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			res.FallbackUsed = true
			res.FallbackReason = err.Error()
			out = os.Stderr
		} else {
			res.file = f
			res.FilePath = cfg.File
			res.UsingFile = true
			out = f
		}
	default:
		out = os.Stderr
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	logCtx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	res.Logger = logCtx.Logger()
	return res
}

// ComponentLogger returns logger with a component field attached, so every
// event names the subsystem that emitted it.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// WithContext stores logger on the context for FromContext to find.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored on the context, or a disabled
// logger when none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user where file logging is going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user that file logging was requested but
// stderr is being used instead.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}
