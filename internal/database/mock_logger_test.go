package database

import (
	"fmt"
	"sync"
)

// mockLogEntry represents a log entry with its message and fields
type mockLogEntry struct {
	Message string
	Fields  map[string]interface{}
}

// mockRecorder stores entries shared across derived loggers
type mockRecorder struct {
	mu            sync.RWMutex
	infoMessages  []mockLogEntry
	errorMessages []mockLogEntry
	warnMessages  []mockLogEntry
	debugMessages []mockLogEntry
	fatalMessages []mockLogEntry
}

// mockLogger provides a logger implementation for testing
type mockLogger struct {
	rec    *mockRecorder
	fields map[string]interface{}
}

// newMockLogger creates a new mock logger instance
func newMockLogger() *mockLogger {
	return &mockLogger{
		rec:    &mockRecorder{},
		fields: make(map[string]interface{}),
	}
}

func (m *mockLogger) LogInfo(msg string, fields map[string]interface{}) {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()
	m.rec.infoMessages = append(m.rec.infoMessages, mockLogEntry{Message: msg, Fields: m.mergeFields(fields)})
}

func (m *mockLogger) LogError(err error, msg string) error {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()

	fields := map[string]interface{}{}
	if err != nil {
		fields["error"] = err.Error()
	}
	m.rec.errorMessages = append(m.rec.errorMessages, mockLogEntry{Message: msg, Fields: m.mergeFields(fields)})
	return err
}

func (m *mockLogger) LogErrorf(err error, format string, args ...interface{}) error {
	return m.LogError(err, fmt.Sprintf(format, args...))
}

func (m *mockLogger) LogWarn(message string, fields map[string]interface{}) {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()
	m.rec.warnMessages = append(m.rec.warnMessages, mockLogEntry{Message: message, Fields: m.mergeFields(fields)})
}

func (m *mockLogger) LogDebug(message string, fields map[string]interface{}) {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()
	m.rec.debugMessages = append(m.rec.debugMessages, mockLogEntry{Message: message, Fields: m.mergeFields(fields)})
}

func (m *mockLogger) LogFatal(err error, context string) {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()
	fields := map[string]interface{}{"context": context}
	if err != nil {
		fields["error"] = err.Error()
	}
	m.rec.fatalMessages = append(m.rec.fatalMessages, mockLogEntry{Message: "FATAL: " + context, Fields: m.mergeFields(fields)})
}

// WithFields derives a logger that shares the same recorder
func (m *mockLogger) WithFields(fields map[string]interface{}) Logger {
	derived := &mockLogger{
		rec:    m.rec,
		fields: make(map[string]interface{}),
	}
	for k, v := range m.fields {
		derived.fields[k] = v
	}
	for k, v := range fields {
		derived.fields[k] = v
	}
	return derived
}

func (m *mockLogger) WithRequestID(requestID string) Logger {
	return m.WithFields(map[string]interface{}{"requestID": requestID})
}

// GetInfoMessages returns all info level messages
func (m *mockLogger) GetInfoMessages() []mockLogEntry {
	m.rec.mu.RLock()
	defer m.rec.mu.RUnlock()
	return m.rec.infoMessages
}

// GetErrorMessages returns all error level messages
func (m *mockLogger) GetErrorMessages() []mockLogEntry {
	m.rec.mu.RLock()
	defer m.rec.mu.RUnlock()
	return m.rec.errorMessages
}

// GetWarnMessages returns all warning level messages
func (m *mockLogger) GetWarnMessages() []mockLogEntry {
	m.rec.mu.RLock()
	defer m.rec.mu.RUnlock()
	return m.rec.warnMessages
}

// GetDebugMessages returns all debug level messages
func (m *mockLogger) GetDebugMessages() []mockLogEntry {
	m.rec.mu.RLock()
	defer m.rec.mu.RUnlock()
	return m.rec.debugMessages
}

// ClearMessages clears all logged messages
func (m *mockLogger) ClearMessages() {
	m.rec.mu.Lock()
	defer m.rec.mu.Unlock()
	m.rec.infoMessages = nil
	m.rec.errorMessages = nil
	m.rec.warnMessages = nil
	m.rec.debugMessages = nil
	m.rec.fatalMessages = nil
}

func (m *mockLogger) mergeFields(fields map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{})
	for k, v := range m.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return merged
}
