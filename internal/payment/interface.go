package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/verandalabs/veranda-stays/backend/internal/booking"
)

// Service defines the interface for payment operations
type Service interface {
	ListActiveMethods(ctx context.Context) ([]PaymentMethod, error)
	ListMethods(ctx context.Context) ([]PaymentMethod, error)
	CreateMethod(ctx context.Context, req CreateMethodRequest) (*PaymentMethod, error)
	UpdateMethod(ctx context.Context, id uuid.UUID, req UpdateMethodRequest) (*PaymentMethod, error)
	SetMethodActive(ctx context.Context, id uuid.UUID, active bool) error
	SubmitPayment(ctx context.Context, req SubmitPaymentRequest) (*Payment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, opts FilterOptions) (*PaginatedPayments, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID) error
	RejectPayment(ctx context.Context, id uuid.UUID) error
}

// Repository defines the interface for payment persistence
type Repository interface {
	CreateMethod(ctx context.Context, method *PaymentMethod) error
	GetMethodByID(ctx context.Context, id uuid.UUID) (*PaymentMethod, error)
	UpdateMethod(ctx context.Context, method *PaymentMethod) error
	ListMethods(ctx context.Context, activeOnly bool) ([]PaymentMethod, error)
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	UpdatePayment(ctx context.Context, payment *Payment) error
	ListPayments(ctx context.Context, opts FilterOptions) ([]Payment, int64, error)
	HasPendingPayment(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

// BookingService is the slice of the booking service payments rely on
type BookingService interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID) error
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogDebug(message string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
	LogError(err error, msg string) error
}
