package testhelper

import (
	"fmt"
	"sync"

	"github.com/verandalabs/veranda-stays/backend/internal/logger"
)

// TestLogger records log entries so tests can assert on what was logged
type TestLogger struct {
	mu           sync.RWMutex
	root         *TestLogger // set on derived loggers so entries land in one place
	entries      []LogEntry
	fields       map[string]interface{}
	debugEnabled bool
}

// LogEntry represents a recorded log entry
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// NewTestLogger creates a new test logger instance
func NewTestLogger(debugEnabled bool) *TestLogger {
	return &TestLogger{
		fields:       make(map[string]interface{}),
		debugEnabled: debugEnabled,
	}
}

// LogInfo implements logger.Logger
func (t *TestLogger) LogInfo(msg string, fields map[string]interface{}) {
	t.record("info", msg, fields)
}

// LogError implements logger.Logger
func (t *TestLogger) LogError(err error, msg string) error {
	fields := map[string]interface{}{}
	if err != nil {
		fields["error"] = err.Error()
	}
	t.record("error", msg, fields)
	return err
}

// LogErrorf implements logger.Logger
func (t *TestLogger) LogErrorf(err error, format string, args ...interface{}) error {
	return t.LogError(err, fmt.Sprintf(format, args...))
}

// LogFatal implements logger.Logger. In tests it records the entry
// instead of exiting.
func (t *TestLogger) LogFatal(err error, context string) {
	fields := map[string]interface{}{
		"context": context,
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	t.record("error", "FATAL: "+context, fields)
}

// LogDebug implements logger.Logger
func (t *TestLogger) LogDebug(message string, fields map[string]interface{}) {
	if !t.debugEnabled {
		return
	}
	t.record("debug", message, fields)
}

// LogWarn implements logger.Logger
func (t *TestLogger) LogWarn(message string, fields map[string]interface{}) {
	t.record("warn", message, fields)
}

// WithFields implements logger.Logger. Entries logged through the
// derived logger are visible from the base logger's getters.
func (t *TestLogger) WithFields(fields map[string]interface{}) logger.Logger {
	t.mu.RLock()
	defer t.mu.RUnlock()

	root := t.root
	if root == nil {
		root = t
	}
	return &TestLogger{
		root:         root,
		fields:       t.mergeFields(fields),
		debugEnabled: t.debugEnabled,
	}
}

// WithRequestID implements logger.Logger
func (t *TestLogger) WithRequestID(requestID string) logger.Logger {
	return t.WithFields(map[string]interface{}{
		"requestID": requestID,
	})
}

// GetInfoMessages returns all info level entries
func (t *TestLogger) GetInfoMessages() []LogEntry {
	return t.entriesAt("info")
}

// GetErrorMessages returns all error level entries
func (t *TestLogger) GetErrorMessages() []LogEntry {
	return t.entriesAt("error")
}

// GetWarnMessages returns all warning level entries
func (t *TestLogger) GetWarnMessages() []LogEntry {
	return t.entriesAt("warn")
}

// GetDebugMessages returns all debug level entries
func (t *TestLogger) GetDebugMessages() []LogEntry {
	return t.entriesAt("debug")
}

// ClearMessages clears all recorded entries
func (t *TestLogger) ClearMessages() {
	sink := t.sink()
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.entries = nil
}

func (t *TestLogger) record(level, message string, fields map[string]interface{}) {
	sink := t.sink()
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.entries = append(sink.entries, LogEntry{
		Level:   level,
		Message: message,
		Fields:  t.mergeFields(fields),
	})
}

func (t *TestLogger) entriesAt(level string) []LogEntry {
	sink := t.sink()
	sink.mu.RLock()
	defer sink.mu.RUnlock()

	var out []LogEntry
	for _, entry := range sink.entries {
		if entry.Level == level {
			out = append(out, entry)
		}
	}
	return out
}

func (t *TestLogger) sink() *TestLogger {
	if t.root != nil {
		return t.root
	}
	return t
}

// mergeFields merges the logger's base fields with the provided fields
func (t *TestLogger) mergeFields(fields map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(t.fields)+len(fields))
	for k, v := range t.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}
