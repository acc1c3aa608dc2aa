// Package logging provides file-based logging for dispatch.
// Entries go to a single append-only file (<data dir>/logs/dispatch.log);
// entries about one job carry a job-<id> scope.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bstc-oman/dispatch/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes formatted entries to the log file, or to a caller-supplied writer.
// Fields are ordered to minimize memory padding.
type Logger struct {
	out     io.Writer
	file    *os.File
	now     func() time.Time
	dataDir string
	mu      sync.Mutex
	level   slog.Level
}

// New creates a Logger that writes under dataDir.
// If dataDir is empty, logging is disabled.
func New(dataDir string, level slog.Level) *Logger {
	return &Logger{
		dataDir: dataDir,
		level:   level,
		now:     time.Now,
	}
}

// NewWriter creates a Logger that writes to w.
func NewWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		out:   w,
		level: level,
		now:   time.Now,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Enabled reports whether entries at level are written.
func (l *Logger) Enabled(level slog.Level) bool {
	return level >= l.level && (l.out != nil || l.dataDir != "")
}

// writer opens the log file on first use. Caller must hold l.mu.
func (l *Logger) writer() (io.Writer, error) {
	if l.out != nil {
		return l.out, nil
	}
	if l.file != nil {
		return l.file, nil
	}

	path := domain.LogPath(l.dataDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file if it was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry.
// Format: [2026-03-14 09:32:51] [INFO] [job-1] [board] message
func formatLog(t time.Time, level slog.Level, itemID, category, msg string) string {
	scope := "global"
	if itemID != "" {
		scope = "job-" + itemID
	}
	// Multi-line descriptions stay on one log line.
	msg = strings.ReplaceAll(msg, "\n", `\n`)
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		scope,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, itemID, category, msg string) {
	if !l.Enabled(level) {
		return
	}

	entry := formatLog(l.now(), level, itemID, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	if w, err := l.writer(); err == nil {
		_, _ = io.WriteString(w, entry)
	}
}

// Info logs an info message.
func (l *Logger) Info(itemID, category, msg string) {
	l.log(slog.LevelInfo, itemID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(itemID, category, msg string) {
	l.log(slog.LevelDebug, itemID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(itemID, category, msg string) {
	l.log(slog.LevelWarn, itemID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(itemID, category, msg string) {
	l.log(slog.LevelError, itemID, category, msg)
}
