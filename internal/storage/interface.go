package storage

import (
	"context"
	"io"
)

// ObjectStorage defines the interface for storing listing media
type ObjectStorage interface {
	// UploadStream stores an object under key and returns its public URL
	UploadStream(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)

	// Delete removes an object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// ObjectURL returns the public URL of a stored object
	ObjectURL(key string) string

	Close() error
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogDebug(message string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
	LogError(err error, msg string) error
}
