package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
)

// consoleHandler writes bare messages: no timestamps, no level prefixes
type consoleHandler struct {
	out   io.Writer
	debug bool
	quiet *atomic.Bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level < slog.LevelInfo {
		return h.debug
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	// quiet mode keeps warnings and errors
	if h.quiet.Load() && record.Level < slog.LevelWarn {
		return nil
	}
	_, err := fmt.Fprintln(h.out, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *consoleHandler) WithGroup(string) slog.Handler { return h }

// fanoutHandler sends each record to every handler that accepts its level
type fanoutHandler []slog.Handler

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range f {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// SplogOptions configures a Splog
type SplogOptions struct {
	// Out receives console output. Defaults to os.Stdout.
	Out io.Writer
	// LogFile, when set, also records every message (debug included) in a rotating file
	LogFile string
	// Debug enables debug messages on the console
	Debug bool
}

// DefaultSplogOptions logs to stdout and the default log file. Debug
// messages are shown when DEBUG is set.
func DefaultSplogOptions() SplogOptions {
	return SplogOptions{
		Out:     os.Stdout,
		LogFile: LogFilePath(),
		Debug:   os.Getenv("DEBUG") != "",
	}
}

// Splog is the user-facing logger. Messages go to the terminal as plain
// lines and, optionally, to a rotating log file with timestamps and levels.
type Splog struct {
	logger  *slog.Logger
	out     io.Writer
	logFile io.Closer
	quiet   atomic.Bool
}

// NewSplog creates a Splog from opts
func NewSplog(opts SplogOptions) (*Splog, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	s := &Splog{out: opts.Out}

	handlers := fanoutHandler{&consoleHandler{out: opts.Out, debug: opts.Debug, quiet: &s.quiet}}

	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file := newRotatingFile(opts.LogFile)
		s.logFile = file
		handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
				}
				return a
			},
		}))
	}

	s.logger = slog.New(handlers)
	return s, nil
}

// NewConsoleSplog creates a Splog that only writes to out
func NewConsoleSplog(out io.Writer) *Splog {
	s, _ := NewSplog(SplogOptions{Out: out})
	return s
}

// SetQuiet suppresses informational output. Warnings and errors still print.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet.Store(quiet)
}

// IsQuiet reports whether informational output is suppressed
func (s *Splog) IsQuiet() bool {
	return s.quiet.Load()
}

// Writer returns the console writer
func (s *Splog) Writer() io.Writer {
	return s.out
}

func (s *Splog) log(level slog.Level, prefix, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, prefix+msg)
}

// Info writes an informational message
func (s *Splog) Info(format string, args ...any) {
	s.log(slog.LevelInfo, "", format, args)
}

// Warn writes a warning
func (s *Splog) Warn(format string, args ...any) {
	s.log(slog.LevelWarn, "⚠️  ", format, args)
}

// Error writes an error message
func (s *Splog) Error(format string, args ...any) {
	s.log(slog.LevelError, "❌ ", format, args)
}

// Debug writes a message shown only in debug mode
func (s *Splog) Debug(format string, args ...any) {
	s.log(slog.LevelDebug, "", format, args)
}

// Tip writes a hint for the user
func (s *Splog) Tip(format string, args ...any) {
	s.log(slog.LevelInfo, "💡 ", format, args)
}

// Page writes pre-rendered output as is
func (s *Splog) Page(content string) {
	if s.IsQuiet() {
		return
	}
	_, _ = fmt.Fprint(s.out, content)
}

// Newline writes an empty line
func (s *Splog) Newline() {
	if s.IsQuiet() {
		return
	}
	_, _ = fmt.Fprintln(s.out)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logFile != nil {
		return s.logFile.Close()
	}
	return nil
}
