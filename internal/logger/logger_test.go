package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWriter_JSONWithSession(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(LevelInfo, &buf)

	Debug("hidden")
	Info("document opened", "path", "/tmp/a.txt")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "document opened", rec["msg"])
	assert.Equal(t, "/tmp/a.txt", rec["path"])
	assert.Equal(t, SessionID, rec["session"])
	assert.NotEmpty(t, SessionID)
}

func TestCapture_WarnAndError(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(LevelDebug, &buf)

	_, ok := Latest()
	assert.False(t, ok)

	Info("ignored")
	Warn("vocabulary missing")
	Error("save failed")

	warn, errs := GetCounts()
	assert.Equal(t, 1, warn)
	assert.Equal(t, 1, errs)

	entries := GetEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "vocabulary missing", entries[0].Message)

	latest, ok := Latest()
	require.True(t, ok)
	assert.Equal(t, "save failed", latest.Message)
}

func TestRingBuffer_Wraps(t *testing.T) {
	rb := newRingBuffer(2)
	for _, msg := range []string{"a", "b", "c"} {
		rb.add(LogEntry{Message: msg})
	}

	all := rb.getAll()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Message)
	assert.Equal(t, "c", all[1].Message)
}

func TestLogEntry_Format(t *testing.T) {
	ts := time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC)
	e := LogEntry{Time: ts, Level: 8, Message: "boom"}
	assert.Equal(t, "13:04:05 ERROR boom", e.Format())
}
