package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel accepts debug, info, warn (or warning) and error, case-insensitively.
// Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level '%s'", s)
}

// New builds a text logger. Output goes to a rotating file when file is set and
// to stderr otherwise. The returned closer flushes the file and is never nil.
func New(level, file string) (*slog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if file != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		}
		w, closer = lj, lj
	}
	return NewWithWriter(w, lvl), closer, nil
}

func NewWithWriter(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Component tags every record from the returned logger with its origin.
func Component(log *slog.Logger, name string) *slog.Logger {
	return log.With("component", name)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
