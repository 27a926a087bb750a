package account

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business operations for guest and host accounts
type Service interface {
	CreateGuest(ctx context.Context, req *CreateGuestRequest) (*Guest, error)
	GetGuest(ctx context.Context, id uuid.UUID) (*Guest, error)
	UpdateGuest(ctx context.Context, id uuid.UUID, req *UpdateGuestRequest) (*Guest, error)
	ListGuests(ctx context.Context, opts FilterOptions) (*PaginatedGuests, error)
	SetGuestStatus(ctx context.Context, id uuid.UUID, status Status) error

	CreateHost(ctx context.Context, req *CreateHostRequest) (*Host, error)
	GetHost(ctx context.Context, id uuid.UUID) (*Host, error)
	UpdateHost(ctx context.Context, id uuid.UUID, req *UpdateHostRequest) (*Host, error)
	ListHosts(ctx context.Context, opts FilterOptions) (*PaginatedHosts, error)
	VerifyHost(ctx context.Context, id uuid.UUID) error
	SetHostStatus(ctx context.Context, id uuid.UUID, status Status) error

	GetStats(ctx context.Context) (*Stats, error)
}

// Repository defines the persistence operations for accounts
type Repository interface {
	CreateGuest(ctx context.Context, guest *Guest) error
	GetGuestByID(ctx context.Context, id uuid.UUID) (*Guest, error)
	GetGuestByEmail(ctx context.Context, email string) (*Guest, error)
	UpdateGuest(ctx context.Context, guest *Guest) error
	ListGuests(ctx context.Context, opts FilterOptions) ([]Guest, int64, error)

	CreateHost(ctx context.Context, host *Host) error
	GetHostByID(ctx context.Context, id uuid.UUID) (*Host, error)
	GetHostByEmail(ctx context.Context, email string) (*Host, error)
	UpdateHost(ctx context.Context, host *Host) error
	ListHosts(ctx context.Context, opts FilterOptions) ([]Host, int64, error)

	GetStats(ctx context.Context) (*Stats, error)
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogDebug(message string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
	LogError(err error, msg string) error
}
