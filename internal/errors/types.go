package errors

// ValidationError represents a validation error with a field and message
type ValidationError struct {
	Field   string
	Message string
}

// ConflictError represents a request that cannot proceed in the current state
type ConflictError struct {
	Message string
}

// StorageError represents an error during object storage operations
type StorageError struct {
	Message string
	Cause   error
}
