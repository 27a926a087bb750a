package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/verandalabs/veranda-stays/backend/internal/account"
	"github.com/verandalabs/veranda-stays/backend/internal/cache"
	"github.com/verandalabs/veranda-stays/backend/internal/config"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
	"github.com/verandalabs/veranda-stays/backend/internal/property"
)

// ErrBookingNotFound is returned when a booking does not exist
var ErrBookingNotFound = errors.New("booking not found")

// service implements the Service interface
type service struct {
	repo       Repository
	store      cache.Store
	tiers      cache.Tiers
	properties PropertyReader
	guests     GuestReader
	config     *config.BookingConfig
	logger     Logger
}

// NewService creates a new booking service
func NewService(repo Repository, store cache.Store, tiers cache.Tiers, properties PropertyReader, guests GuestReader, config *config.BookingConfig, logger Logger) Service {
	return &service{
		repo:       repo,
		store:      store,
		tiers:      tiers,
		properties: properties,
		guests:     guests,
		config:     config,
		logger:     logger,
	}
}

func (s *service) RequestBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	checkIn := dateOnly(req.CheckIn)
	checkOut := dateOnly(req.CheckOut)

	if !checkOut.After(checkIn) {
		return nil, apperrors.NewValidationError("checkOut", apperrors.ErrMsgInvalidDates)
	}
	if checkIn.Before(dateOnly(time.Now())) {
		return nil, apperrors.NewValidationError("checkIn", apperrors.ErrMsgDatesInPast)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights > s.config.MaxStayNights {
		return nil, apperrors.NewValidationError("checkOut", fmt.Sprintf("Stay cannot exceed %d nights", s.config.MaxStayNights))
	}

	guest, err := s.guests.GetGuest(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, account.ErrGuestNotFound) {
			return nil, apperrors.NewValidationError("guestId", "Guest does not exist")
		}
		return nil, err
	}
	if guest.Status == account.StatusSuspended {
		return nil, apperrors.NewConflictError("Guest account is suspended")
	}

	listing, err := s.properties.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, property.ErrPropertyNotFound) {
			return nil, apperrors.NewValidationError("propertyId", "Listing does not exist")
		}
		return nil, err
	}
	if listing.Status != property.StatusActive {
		return nil, apperrors.NewConflictError("Listing is not open for booking")
	}

	if req.Guests < 1 {
		return nil, apperrors.NewValidationError("guests", "Booking must include at least one guest")
	}
	if req.Guests > listing.MaxGuests {
		return nil, apperrors.NewValidationError("guests", apperrors.ErrMsgGuestCount)
	}

	overlapping, err := s.repo.Overlapping(ctx, req.PropertyID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, apperrors.NewConflictError("Listing is already booked for the selected dates")
	}

	booking := &Booking{
		PropertyID: req.PropertyID,
		GuestID:    req.GuestID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		Nights:     nights,
		TotalPrice: listing.PricePerNight.Mul(decimal.NewFromInt(int64(nights))),
		Note:       req.Note,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.invalidateBooking(ctx, booking)
	s.logger.LogInfo("Booking requested", map[string]interface{}{
		"bookingId":  booking.ID.String(),
		"propertyId": booking.PropertyID.String(),
		"guestId":    booking.GuestID.String(),
		"nights":     booking.Nights,
		"totalPrice": booking.TotalPrice.String(),
	})
	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	key := cache.EntityKey(bookingResource, id.String())
	if cached, ok := cache.GetTyped[*Booking](ctx, s.store, key); ok {
		return cached, nil
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, booking, s.tiers.Medium)
	return booking, nil
}

func (s *service) ConfirmBooking(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusConfirmed)
}

func (s *service) CancelBooking(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusCancelled)
}

func (s *service) CompleteBooking(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusCompleted)
}

// transition applies a guarded status change to a booking
func (s *service) transition(ctx context.Context, id uuid.UUID, to Status) error {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !canTransition(booking.Status, to) {
		return apperrors.NewConflictError(fmt.Sprintf("Booking cannot move from %s to %s", booking.Status, to))
	}

	from := booking.Status
	booking.Status = to
	if err := s.repo.Update(ctx, booking); err != nil {
		return err
	}

	s.invalidateBooking(ctx, booking)
	s.logger.LogInfo("Booking status changed", map[string]interface{}{
		"bookingId": id.String(),
		"from":      string(from),
		"to":        string(to),
	})
	return nil
}

func (s *service) ListBookings(ctx context.Context, opts FilterOptions) (*PaginatedBookings, error) {
	opts.normalize()
	key := cache.ListKey(bookingResource, opts)
	if cached, ok := cache.GetTyped[*PaginatedBookings](ctx, s.store, key); ok {
		return cached, nil
	}

	bookings, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &PaginatedBookings{
		Bookings:   bookings,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
	}
	s.store.Set(ctx, key, result, s.tiers.Short)
	return result, nil
}

func (s *service) ListGuestBookings(ctx context.Context, guestID uuid.UUID, opts FilterOptions) (*PaginatedBookings, error) {
	opts.normalize()
	key := cache.ListKey(cache.Key(bookingResource, "guest", guestID.String()), opts)
	if cached, ok := cache.GetTyped[*PaginatedBookings](ctx, s.store, key); ok {
		return cached, nil
	}

	bookings, total, err := s.repo.ListByGuest(ctx, guestID, opts)
	if err != nil {
		return nil, err
	}

	result := &PaginatedBookings{
		Bookings:   bookings,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
	}
	s.store.Set(ctx, key, result, s.tiers.Short)
	return result, nil
}

func (s *service) PropertyAvailability(ctx context.Context, propertyID uuid.UUID, from, to time.Time) (*Availability, error) {
	from = dateOnly(from)
	to = dateOnly(to)
	if !to.After(from) {
		return nil, apperrors.NewValidationError("to", apperrors.ErrMsgInvalidDates)
	}

	key := cache.Key(availabilityResource, propertyID.String(), from.Format(dateLayout), to.Format(dateLayout))
	if cached, ok := cache.GetTyped[*Availability](ctx, s.store, key); ok {
		return cached, nil
	}

	if _, err := s.properties.GetProperty(ctx, propertyID); err != nil {
		return nil, err
	}

	booked, err := s.repo.BookedRanges(ctx, propertyID, from, to)
	if err != nil {
		return nil, err
	}

	result := &Availability{
		PropertyID: propertyID,
		From:       from,
		To:         to,
		Booked:     booked,
	}
	s.store.Set(ctx, key, result, s.tiers.Short)
	return result, nil
}

func (s *service) GetStats(ctx context.Context) (*BookingStats, error) {
	key := cache.StatsKey(bookingResource)
	if cached, ok := cache.GetTyped[*BookingStats](ctx, s.store, key); ok {
		return cached, nil
	}

	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, stats, s.tiers.Long)
	return stats, nil
}

// invalidateBooking drops every key family a lifecycle change can affect
func (s *service) invalidateBooking(ctx context.Context, booking *Booking) {
	s.store.Delete(ctx, cache.EntityKey(bookingResource, booking.ID.String()))
	s.store.DeletePattern(ctx, cache.ListPrefix(bookingResource))
	s.store.DeletePattern(ctx, cache.Key(bookingResource, "guest")+cache.Separator)
	s.store.Delete(ctx, cache.StatsKey(bookingResource))
	s.store.DeletePattern(ctx, cache.Key(availabilityResource, booking.PropertyID.String())+cache.Separator)
}

// dateOnly truncates a timestamp to its UTC calendar date
func dateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
