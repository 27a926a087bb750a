package review

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for review operations
type Service interface {
	CreateReview(ctx context.Context, propertyID uuid.UUID, req CreateReviewRequest) (*Review, error)
	ListPropertyReviews(ctx context.Context, propertyID uuid.UUID, opts FilterOptions) (*PaginatedReviews, error)
	GetPropertyRating(ctx context.Context, propertyID uuid.UUID) (*PropertyRating, error)
	HideReview(ctx context.Context, id uuid.UUID) error
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

// Repository defines the interface for review persistence
type Repository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*Review, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProperty(ctx context.Context, propertyID uuid.UUID, opts FilterOptions) ([]Review, int64, error)
	Rating(ctx context.Context, propertyID uuid.UUID) (*PropertyRating, error)
}

// StayVerifier reports whether a guest has completed a stay at a listing.
// The booking repository satisfies it.
type StayVerifier interface {
	HasCompletedStay(ctx context.Context, guestID, propertyID uuid.UUID) (bool, error)
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogDebug(message string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
	LogError(err error, msg string) error
}
