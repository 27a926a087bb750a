package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/verandalabs/veranda-stays/backend/internal/cache"
)

// Sentinel errors for account operations
var (
	ErrGuestNotFound = errors.New("guest not found")
	ErrHostNotFound  = errors.New("host not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrInvalidStatus = errors.New("invalid account status")
)

// service implements the Service interface
type service struct {
	repo   Repository
	store  cache.Store
	tiers  cache.Tiers
	logger Logger
}

// NewService creates a new account service
func NewService(repo Repository, store cache.Store, tiers cache.Tiers, logger Logger) Service {
	return &service{
		repo:   repo,
		store:  store,
		tiers:  tiers,
		logger: logger,
	}
}

func (s *service) CreateGuest(ctx context.Context, req *CreateGuestRequest) (*Guest, error) {
	existing, err := s.repo.GetGuestByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, ErrGuestNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	guest := &Guest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.repo.CreateGuest(ctx, guest); err != nil {
		return nil, err
	}

	s.invalidateGuestLists(ctx)
	s.logger.LogInfo("Guest account created", map[string]interface{}{
		"guestId": guest.ID.String(),
	})
	return guest, nil
}

func (s *service) GetGuest(ctx context.Context, id uuid.UUID) (*Guest, error) {
	key := cache.EntityKey(guestResource, id.String())
	if cached, ok := cache.GetTyped[*Guest](ctx, s.store, key); ok {
		return cached, nil
	}

	guest, err := s.repo.GetGuestByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, guest, s.tiers.Medium)
	return guest, nil
}

func (s *service) UpdateGuest(ctx context.Context, id uuid.UUID, req *UpdateGuestRequest) (*Guest, error) {
	guest, err := s.repo.GetGuestByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		guest.Name = req.Name
	}
	if req.Phone != "" {
		guest.Phone = req.Phone
	}

	if err := s.repo.UpdateGuest(ctx, guest); err != nil {
		return nil, err
	}

	s.invalidateGuest(ctx, id)
	return guest, nil
}

func (s *service) ListGuests(ctx context.Context, opts FilterOptions) (*PaginatedGuests, error) {
	opts.normalize()
	key := cache.ListKey(guestResource, opts)
	if cached, ok := cache.GetTyped[*PaginatedGuests](ctx, s.store, key); ok {
		return cached, nil
	}

	guests, total, err := s.repo.ListGuests(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &PaginatedGuests{
		Guests:     guests,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
	}
	s.store.Set(ctx, key, result, s.tiers.Short)
	return result, nil
}

func (s *service) SetGuestStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if status != StatusActive && status != StatusSuspended {
		return ErrInvalidStatus
	}

	guest, err := s.repo.GetGuestByID(ctx, id)
	if err != nil {
		return err
	}

	guest.Status = status
	if err := s.repo.UpdateGuest(ctx, guest); err != nil {
		return err
	}

	s.invalidateGuest(ctx, id)
	s.logger.LogInfo("Guest status changed", map[string]interface{}{
		"guestId": id.String(),
		"status":  string(status),
	})
	return nil
}

func (s *service) CreateHost(ctx context.Context, req *CreateHostRequest) (*Host, error) {
	existing, err := s.repo.GetHostByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, ErrHostNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	host := &Host{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Bio:   req.Bio,
	}
	if err := s.repo.CreateHost(ctx, host); err != nil {
		return nil, err
	}

	s.invalidateHostLists(ctx)
	s.logger.LogInfo("Host account created", map[string]interface{}{
		"hostId": host.ID.String(),
	})
	return host, nil
}

func (s *service) GetHost(ctx context.Context, id uuid.UUID) (*Host, error) {
	key := cache.EntityKey(hostResource, id.String())
	if cached, ok := cache.GetTyped[*Host](ctx, s.store, key); ok {
		return cached, nil
	}

	host, err := s.repo.GetHostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, host, s.tiers.Medium)
	return host, nil
}

func (s *service) UpdateHost(ctx context.Context, id uuid.UUID, req *UpdateHostRequest) (*Host, error) {
	host, err := s.repo.GetHostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		host.Name = req.Name
	}
	if req.Phone != "" {
		host.Phone = req.Phone
	}
	if req.Bio != "" {
		host.Bio = req.Bio
	}

	if err := s.repo.UpdateHost(ctx, host); err != nil {
		return nil, err
	}

	s.invalidateHost(ctx, id)
	return host, nil
}

func (s *service) ListHosts(ctx context.Context, opts FilterOptions) (*PaginatedHosts, error) {
	opts.normalize()
	key := cache.ListKey(hostResource, opts)
	if cached, ok := cache.GetTyped[*PaginatedHosts](ctx, s.store, key); ok {
		return cached, nil
	}

	hosts, total, err := s.repo.ListHosts(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &PaginatedHosts{
		Hosts:      hosts,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
	}
	s.store.Set(ctx, key, result, s.tiers.Short)
	return result, nil
}

func (s *service) VerifyHost(ctx context.Context, id uuid.UUID) error {
	host, err := s.repo.GetHostByID(ctx, id)
	if err != nil {
		return err
	}

	if host.Verified {
		return nil
	}

	host.Verified = true
	if err := s.repo.UpdateHost(ctx, host); err != nil {
		return err
	}

	s.invalidateHost(ctx, id)
	s.logger.LogInfo("Host verified", map[string]interface{}{
		"hostId": id.String(),
	})
	return nil
}

func (s *service) SetHostStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if status != StatusActive && status != StatusSuspended {
		return ErrInvalidStatus
	}

	host, err := s.repo.GetHostByID(ctx, id)
	if err != nil {
		return err
	}

	host.Status = status
	if err := s.repo.UpdateHost(ctx, host); err != nil {
		return err
	}

	s.invalidateHost(ctx, id)
	s.logger.LogInfo("Host status changed", map[string]interface{}{
		"hostId": id.String(),
		"status": string(status),
	})
	return nil
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	key := cache.StatsKey(statsResource)
	if cached, ok := cache.GetTyped[*Stats](ctx, s.store, key); ok {
		return cached, nil
	}

	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, stats, s.tiers.Long)
	return stats, nil
}

func (s *service) invalidateGuest(ctx context.Context, id uuid.UUID) {
	s.store.Delete(ctx, cache.EntityKey(guestResource, id.String()))
	s.invalidateGuestLists(ctx)
}

func (s *service) invalidateGuestLists(ctx context.Context) {
	s.store.DeletePattern(ctx, cache.ListPrefix(guestResource))
	s.store.Delete(ctx, cache.StatsKey(statsResource))
}

func (s *service) invalidateHost(ctx context.Context, id uuid.UUID) {
	s.store.Delete(ctx, cache.EntityKey(hostResource, id.String()))
	s.invalidateHostLists(ctx)
}

func (s *service) invalidateHostLists(ctx context.Context) {
	s.store.DeletePattern(ctx, cache.ListPrefix(hostResource))
	s.store.Delete(ctx, cache.StatsKey(statsResource))
}
