// Package logging builds the slog logger used by the orderbench commands.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Options configures New.
type Options struct {
	Level string // debug|info|warn|error, anything else is info
	Color string // auto|always|never
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a tint logger writing to w. Every record carries a "run"
// attribute identifying the invocation.
func New(w io.Writer, opts Options) *slog.Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(opts.Level),
		TimeFormat: "15:04:05",
		NoColor:    !useColor(w, opts.Color),
	})
	return slog.New(handler).With("run", uuid.NewString()[:8])
}

// Setup builds a logger on stderr and installs it as the slog default.
func Setup(opts Options) *slog.Logger {
	logger := New(os.Stderr, opts)
	slog.SetDefault(logger)
	return logger
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
