package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/verandalabs/veranda-stays/backend/internal/account"
	"github.com/verandalabs/veranda-stays/backend/internal/property"
)

// Service defines the business operations for the booking lifecycle
type Service interface {
	RequestBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID) error
	CancelBooking(ctx context.Context, id uuid.UUID) error
	CompleteBooking(ctx context.Context, id uuid.UUID) error
	ListBookings(ctx context.Context, opts FilterOptions) (*PaginatedBookings, error)
	ListGuestBookings(ctx context.Context, guestID uuid.UUID, opts FilterOptions) (*PaginatedBookings, error)
	PropertyAvailability(ctx context.Context, propertyID uuid.UUID, from, to time.Time) (*Availability, error)
	GetStats(ctx context.Context) (*BookingStats, error)
}

// Repository defines the persistence operations for bookings
type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	Update(ctx context.Context, booking *Booking) error
	List(ctx context.Context, opts FilterOptions) ([]Booking, int64, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, opts FilterOptions) ([]Booking, int64, error)
	Overlapping(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
	BookedRanges(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]BookedRange, error)
	GetStats(ctx context.Context) (*BookingStats, error)

	HasActiveBookings(ctx context.Context, propertyID uuid.UUID) (bool, error)
	HasCompletedStay(ctx context.Context, guestID, propertyID uuid.UUID) (bool, error)
}

// PropertyReader resolves listings referenced by bookings
type PropertyReader interface {
	GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error)
}

// GuestReader resolves guest accounts referenced by bookings
type GuestReader interface {
	GetGuest(ctx context.Context, id uuid.UUID) (*account.Guest, error)
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogDebug(message string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
	LogError(err error, msg string) error
}
