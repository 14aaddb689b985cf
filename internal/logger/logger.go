// Package logger provides the process-wide structured logger for smartedit.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogEntry is a captured WARN or ERROR record, surfaced in the status line.
type LogEntry struct {
	Time    time.Time
	Level   slog.Level
	Message string
}

// ringBuffer is a fixed-size circular buffer for log entries.
type ringBuffer struct {
	mu      sync.RWMutex
	entries []LogEntry
	size    int
	head    int
	count   int

	warnCount  int
	errorCount int
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		entries: make([]LogEntry, size),
		size:    size,
	}
}

func (rb *ringBuffer) add(entry LogEntry) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.entries[rb.head] = entry
	rb.head = (rb.head + 1) % rb.size
	if rb.count < rb.size {
		rb.count++
	}

	if entry.Level >= slog.LevelError {
		rb.errorCount++
	} else {
		rb.warnCount++
	}
}

func (rb *ringBuffer) getAll() []LogEntry {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	result := make([]LogEntry, rb.count)
	for i := 0; i < rb.count; i++ {
		idx := (rb.head - rb.count + i + rb.size) % rb.size
		result[i] = rb.entries[idx]
	}
	return result
}

func (rb *ringBuffer) latest() (LogEntry, bool) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	if rb.count == 0 {
		return LogEntry{}, false
	}
	return rb.entries[(rb.head-1+rb.size)%rb.size], true
}

func (rb *ringBuffer) getCounts() (warn, err int) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.warnCount, rb.errorCount
}

// captureHandler wraps another handler and keeps recent WARN/ERROR records.
type captureHandler struct {
	inner  slog.Handler
	buffer *ringBuffer
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.buffer.add(LogEntry{
			Time:    r.Time,
			Level:   r.Level,
			Message: r.Message,
		})
	}
	return h.inner.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{inner: h.inner.WithAttrs(attrs), buffer: h.buffer}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{inner: h.inner.WithGroup(name), buffer: h.buffer}
}

var (
	// Log is the global structured logger
	Log *slog.Logger
	// LogPath is the path to the current log file
	LogPath string
	// SessionID identifies this process in the log
	SessionID string

	logWriter     *lumberjack.Logger
	captureBuffer *ringBuffer
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger initializes the global logger with the specified level and optional path.
// If logPath is empty, defaults to ~/.config/smartedit/smartedit.log
func InitLogger(level LogLevel, logPath string) {
	if logPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.TempDir()
		}
		logDir := filepath.Join(homeDir, ".config", "smartedit")
		_ = os.MkdirAll(logDir, 0755)
		logPath = filepath.Join(logDir, "smartedit.log")
	}
	LogPath = logPath

	logWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}

	initWithWriter(level, logWriter)
}

// InitWriter initializes the global logger writing JSON to w instead of the
// log file. Used by tests.
func InitWriter(level LogLevel, w io.Writer) {
	LogPath = ""
	initWithWriter(level, w)
}

func initWithWriter(level LogLevel, w io.Writer) {
	captureBuffer = newRingBuffer(100)
	SessionID = uuid.NewString()

	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level.slogLevel()})
	handler := &captureHandler{inner: jsonHandler, buffer: captureBuffer}

	Log = slog.New(handler).With("session", SessionID)
	slog.SetDefault(Log)
}

// Close closes the log file
func Close() {
	if logWriter != nil {
		logWriter.Close()
		logWriter = nil
	}
}

func getLogger() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	getLogger().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	getLogger().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	getLogger().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	getLogger().Error(msg, args...)
}

// With creates a new logger with additional attributes
func With(args ...any) *slog.Logger {
	return getLogger().With(args...)
}

// GetCounts returns the warning and error counts since initialization.
func GetCounts() (warn, err int) {
	if captureBuffer == nil {
		return 0, 0
	}
	return captureBuffer.getCounts()
}

// GetEntries returns the captured WARN/ERROR entries, oldest first.
func GetEntries() []LogEntry {
	if captureBuffer == nil {
		return nil
	}
	return captureBuffer.getAll()
}

// Latest returns the most recent captured entry.
func Latest() (LogEntry, bool) {
	if captureBuffer == nil {
		return LogEntry{}, false
	}
	return captureBuffer.latest()
}

// Format formats a log entry for display.
func (e LogEntry) Format() string {
	levelStr := "WARN"
	if e.Level >= slog.LevelError {
		levelStr = "ERROR"
	}
	return fmt.Sprintf("%s %-5s %s", e.Time.Format("15:04:05"), levelStr, e.Message)
}
