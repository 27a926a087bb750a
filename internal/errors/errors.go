package errors

import "fmt"

// Error method implementation for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Error method implementation for ConflictError
func (e *ConflictError) Error() string {
	return e.Message
}

// Error method implementation for StorageError
func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying storage failure
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) *ConflictError {
	return &ConflictError{
		Message: message,
	}
}

// NewStorageError creates a new StorageError
func NewStorageError(message string, cause error) *StorageError {
	return &StorageError{
		Message: message,
		Cause:   cause,
	}
}
