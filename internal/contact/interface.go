package contact

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for contact operations
type Service interface {
	SubmitMessage(ctx context.Context, req SubmitMessageRequest) (*ContactMessage, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*ContactMessage, error)
	ListMessages(ctx context.Context, opts FilterOptions) (*PaginatedMessages, error)
	MarkMessageStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

// Repository defines the interface for contact persistence
type Repository interface {
	Create(ctx context.Context, message *ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*ContactMessage, error)
	Update(ctx context.Context, message *ContactMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, opts FilterOptions) ([]ContactMessage, int64, error)
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogDebug(message string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
	LogError(err error, msg string) error
}
