package property

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/verandalabs/veranda-stays/backend/internal/account"
)

// Service defines the business operations for rental listings
type Service interface {
	CreateProperty(ctx context.Context, req *CreatePropertyRequest) (*Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*Property, error)
	GetPropertyWithImages(ctx context.Context, id uuid.UUID) (*PropertyWithImages, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, req *UpdatePropertyRequest) (*Property, error)
	ListProperties(ctx context.Context, opts FilterOptions) (*PaginatedProperties, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, opts FilterOptions) (*PaginatedProperties, error)
	FeaturedProperties(ctx context.Context) ([]Property, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	DeleteProperty(ctx context.Context, id uuid.UUID) error
	AddImage(ctx context.Context, propertyID uuid.UUID, file multipart.File, header *multipart.FileHeader) (*PropertyImage, error)
	RemoveImage(ctx context.Context, propertyID, imageID uuid.UUID) error
	GetStats(ctx context.Context) (*PropertyStats, error)
}

// Repository defines the persistence operations for listings
type Repository interface {
	Create(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*Property, error)
	Update(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, opts FilterOptions) ([]Property, int64, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, opts FilterOptions) ([]Property, int64, error)
	Featured(ctx context.Context) ([]Property, error)
	GetStats(ctx context.Context) (*PropertyStats, error)

	AddImage(ctx context.Context, image *PropertyImage) error
	GetImage(ctx context.Context, id uuid.UUID) (*PropertyImage, error)
	ListImages(ctx context.Context, propertyID uuid.UUID) ([]PropertyImage, error)
	CountImages(ctx context.Context, propertyID uuid.UUID) (int64, error)
	RemoveImage(ctx context.Context, id uuid.UUID) error
}

// ImageStorage defines the object storage operations the listing
// service needs for photo uploads
type ImageStorage interface {
	UploadStream(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// HostReader resolves host accounts referenced by listings
type HostReader interface {
	GetHost(ctx context.Context, id uuid.UUID) (*account.Host, error)
}

// BookingChecker reports whether a listing still has bookings in flight
type BookingChecker interface {
	HasActiveBookings(ctx context.Context, propertyID uuid.UUID) (bool, error)
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogDebug(message string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
	LogError(err error, msg string) error
}
