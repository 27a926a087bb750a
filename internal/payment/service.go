package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verandalabs/veranda-stays/backend/internal/booking"
	"github.com/verandalabs/veranda-stays/backend/internal/cache"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
)

var (
	// ErrPaymentNotFound is returned when a payment does not exist
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrMethodNotFound is returned when a payment method does not exist
	ErrMethodNotFound = errors.New("payment method not found")
)

// service implements the Service interface
type service struct {
	repo     Repository
	store    cache.Store
	tiers    cache.Tiers
	bookings BookingService
	logger   Logger
}

// NewService creates a new payment service
func NewService(repo Repository, store cache.Store, tiers cache.Tiers, bookings BookingService, logger Logger) Service {
	return &service{
		repo:     repo,
		store:    store,
		tiers:    tiers,
		bookings: bookings,
		logger:   logger,
	}
}

func (s *service) ListActiveMethods(ctx context.Context) ([]PaymentMethod, error) {
	key := cache.Key(methodResource, "active")
	if cached, ok := cache.GetTyped[[]PaymentMethod](ctx, s.store, key); ok {
		return cached, nil
	}

	methods, err := s.repo.ListMethods(ctx, true)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, methods, s.tiers.Long)
	return methods, nil
}

func (s *service) ListMethods(ctx context.Context) ([]PaymentMethod, error) {
	key := cache.ListKey(methodResource, nil)
	if cached, ok := cache.GetTyped[[]PaymentMethod](ctx, s.store, key); ok {
		return cached, nil
	}

	methods, err := s.repo.ListMethods(ctx, false)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, methods, s.tiers.Medium)
	return methods, nil
}

func (s *service) CreateMethod(ctx context.Context, req CreateMethodRequest) (*PaymentMethod, error) {
	kind, err := parseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name", "Name is required")
	}

	method := &PaymentMethod{
		Name:          req.Name,
		Kind:          kind,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		Instructions:  req.Instructions,
		Active:        true,
		Position:      req.Position,
	}
	if err := s.repo.CreateMethod(ctx, method); err != nil {
		return nil, err
	}

	s.invalidateMethods(ctx)
	s.logger.LogInfo("Payment method created", map[string]interface{}{
		"methodId": method.ID.String(),
		"kind":     string(method.Kind),
	})
	return method, nil
}

func (s *service) UpdateMethod(ctx context.Context, id uuid.UUID, req UpdateMethodRequest) (*PaymentMethod, error) {
	method, err := s.repo.GetMethodByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		method.Name = req.Name
	}
	if req.AccountName != "" {
		method.AccountName = req.AccountName
	}
	if req.AccountNumber != "" {
		method.AccountNumber = req.AccountNumber
	}
	if req.Instructions != "" {
		method.Instructions = req.Instructions
	}
	if req.Position != nil {
		method.Position = *req.Position
	}

	if err := s.repo.UpdateMethod(ctx, method); err != nil {
		return nil, err
	}

	s.invalidateMethods(ctx)
	return method, nil
}

func (s *service) SetMethodActive(ctx context.Context, id uuid.UUID, active bool) error {
	method, err := s.repo.GetMethodByID(ctx, id)
	if err != nil {
		return err
	}
	if method.Active == active {
		return nil
	}

	method.Active = active
	if err := s.repo.UpdateMethod(ctx, method); err != nil {
		return err
	}

	s.invalidateMethods(ctx)
	s.logger.LogInfo("Payment method toggled", map[string]interface{}{
		"methodId": id.String(),
		"active":   active,
	})
	return nil
}

func (s *service) SubmitPayment(ctx context.Context, req SubmitPaymentRequest) (*Payment, error) {
	method, err := s.repo.GetMethodByID(ctx, req.MethodID)
	if err != nil {
		if errors.Is(err, ErrMethodNotFound) {
			return nil, apperrors.NewValidationError("methodId", "Payment method does not exist")
		}
		return nil, err
	}
	if !method.Active {
		return nil, apperrors.NewConflictError("Payment method is no longer accepted")
	}

	bkg, err := s.bookings.GetBooking(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, apperrors.NewValidationError("bookingId", "Booking does not exist")
		}
		return nil, err
	}
	if bkg.Status != booking.StatusPending {
		return nil, apperrors.NewConflictError("Booking is not awaiting payment")
	}
	if !req.Amount.Equal(bkg.TotalPrice) {
		return nil, apperrors.NewValidationError("amount", "Amount must match the booking total")
	}

	pending, err := s.repo.HasPendingPayment(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.NewConflictError("A payment for this booking is already under review")
	}

	payment := &Payment{
		BookingID:   req.BookingID,
		MethodID:    req.MethodID,
		Amount:      req.Amount,
		Reference:   req.Reference,
		Status:      StatusPending,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	s.invalidatePayment(ctx, payment)
	s.logger.LogInfo("Payment submitted", map[string]interface{}{
		"paymentId": payment.ID.String(),
		"bookingId": payment.BookingID.String(),
		"amount":    payment.Amount.String(),
	})
	return payment, nil
}

func (s *service) GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error) {
	key := cache.EntityKey(paymentResource, id.String())
	if cached, ok := cache.GetTyped[*Payment](ctx, s.store, key); ok {
		return cached, nil
	}

	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, payment, s.tiers.Medium)
	return payment, nil
}

func (s *service) ListPayments(ctx context.Context, opts FilterOptions) (*PaginatedPayments, error) {
	opts.normalize()
	key := cache.ListKey(paymentResource, opts)
	if cached, ok := cache.GetTyped[*PaginatedPayments](ctx, s.store, key); ok {
		return cached, nil
	}

	payments, total, err := s.repo.ListPayments(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &PaginatedPayments{
		Payments: payments,
		Total:    total,
		Page:     opts.Page,
		Limit:    opts.Limit,
	}
	s.store.Set(ctx, key, result, s.tiers.Short)
	return result, nil
}

func (s *service) ConfirmPayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		return err
	}
	if payment.Status != StatusPending {
		return apperrors.NewConflictError("Payment has already been decided")
	}

	bkg, err := s.bookings.GetBooking(ctx, payment.BookingID)
	if err != nil {
		return err
	}
	if bkg.Status != booking.StatusPending {
		return apperrors.NewConflictError("Booking is not awaiting payment")
	}

	now := time.Now().UTC()
	payment.Status = StatusConfirmed
	payment.DecidedAt = &now
	if err := s.repo.UpdatePayment(ctx, payment); err != nil {
		return err
	}
	s.invalidatePayment(ctx, payment)

	if err := s.bookings.ConfirmBooking(ctx, payment.BookingID); err != nil {
		// The payment record is already decided; the booking can still
		// be confirmed through the booking endpoints.
		return s.logger.LogError(err, "Payment confirmed but booking transition failed")
	}

	s.logger.LogInfo("Payment confirmed", map[string]interface{}{
		"paymentId": id.String(),
		"bookingId": payment.BookingID.String(),
	})
	return nil
}

func (s *service) RejectPayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		return err
	}
	if payment.Status != StatusPending {
		return apperrors.NewConflictError("Payment has already been decided")
	}

	now := time.Now().UTC()
	payment.Status = StatusRejected
	payment.DecidedAt = &now
	if err := s.repo.UpdatePayment(ctx, payment); err != nil {
		return err
	}

	s.invalidatePayment(ctx, payment)
	s.logger.LogInfo("Payment rejected", map[string]interface{}{
		"paymentId": id.String(),
		"bookingId": payment.BookingID.String(),
	})
	return nil
}

// invalidateMethods drops the active listing and every admin listing
func (s *service) invalidateMethods(ctx context.Context) {
	s.store.DeletePattern(ctx, methodResource)
}

func (s *service) invalidatePayment(ctx context.Context, payment *Payment) {
	s.store.Delete(ctx, cache.EntityKey(paymentResource, payment.ID.String()))
	s.store.DeletePattern(ctx, cache.ListPrefix(paymentResource))
}

func parseKind(raw string) (Kind, error) {
	switch kind := Kind(strings.ToUpper(raw)); kind {
	case KindBank, KindMobile, KindOther:
		return kind, nil
	default:
		return "", apperrors.NewValidationError("kind", "Kind must be one of BANK, MOBILE, OTHER")
	}
}
