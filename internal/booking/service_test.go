package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/verandalabs/veranda-stays/backend/internal/account"
	"github.com/verandalabs/veranda-stays/backend/internal/cache"
	"github.com/verandalabs/veranda-stays/backend/internal/config"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
	"github.com/verandalabs/veranda-stays/backend/internal/property"
)

// mockRepository is a mock implementation of Repository
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, booking *Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, booking *Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *mockRepository) List(ctx context.Context, opts FilterOptions) ([]Booking, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Booking), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) ListByGuest(ctx context.Context, guestID uuid.UUID, opts FilterOptions) ([]Booking, int64, error) {
	args := m.Called(ctx, guestID, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Booking), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) Overlapping(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	args := m.Called(ctx, propertyID, checkIn, checkOut)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) BookedRanges(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]BookedRange, error) {
	args := m.Called(ctx, propertyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookedRange), args.Error(1)
}

func (m *mockRepository) GetStats(ctx context.Context) (*BookingStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookingStats), args.Error(1)
}

func (m *mockRepository) HasActiveBookings(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, propertyID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) HasCompletedStay(ctx context.Context, guestID, propertyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, guestID, propertyID)
	return args.Bool(0), args.Error(1)
}

// stubPropertyReader resolves every lookup to a fixed listing
type stubPropertyReader struct {
	listing *property.Property
	err     error
}

func (s *stubPropertyReader) GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.listing, nil
}

// stubGuestReader resolves every lookup to a fixed guest
type stubGuestReader struct {
	guest *account.Guest
	err   error
}

func (s *stubGuestReader) GetGuest(ctx context.Context, id uuid.UUID) (*account.Guest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.guest, nil
}

// testLogger is a no-op logger for service tests
type testLogger struct{}

func (l *testLogger) LogInfo(msg string, fields map[string]interface{})      {}
func (l *testLogger) LogDebug(message string, fields map[string]interface{}) {}
func (l *testLogger) LogWarn(message string, fields map[string]interface{})  {}
func (l *testLogger) LogError(err error, msg string) error                   { return err }

type serviceFixture struct {
	repo       *mockRepository
	properties *stubPropertyReader
	guests     *stubGuestReader
	svc        Service
}

func newFixture() *serviceFixture {
	repo := new(mockRepository)
	properties := &stubPropertyReader{listing: &property.Property{
		ID:            uuid.New(),
		Status:        property.StatusActive,
		PricePerNight: decimal.NewFromInt(120),
		MaxGuests:     4,
	}}
	guests := &stubGuestReader{guest: &account.Guest{ID: uuid.New(), Status: account.StatusActive}}
	cfg := &config.BookingConfig{MaxStayNights: 30}
	svc := NewService(repo, cache.NewMemoryStore(), cache.DefaultTiers(), properties, guests, cfg, &testLogger{})
	return &serviceFixture{repo: repo, properties: properties, guests: guests, svc: svc}
}

// stayRequest builds a valid request starting a month from now
func stayRequest(nights int) *CreateBookingRequest {
	checkIn := dateOnly(time.Now()).AddDate(0, 1, 0)
	return &CreateBookingRequest{
		PropertyID: uuid.New(),
		GuestID:    uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, nights),
		Guests:     2,
	}
}

func TestRequestBooking_ComputesNightsAndTotal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := stayRequest(3)
	f.repo.On("Overlapping", ctx, req.PropertyID, mock.Anything, mock.Anything).Return(int64(0), nil)
	f.repo.On("Create", ctx, mock.Anything).Return(nil)

	booking, err := f.svc.RequestBooking(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 3, booking.Nights)
	assert.True(t, booking.TotalPrice.Equal(decimal.NewFromInt(360)),
		"expected total 360, got %s", booking.TotalPrice)
}

func TestRequestBooking_RejectsReversedDates(t *testing.T) {
	f := newFixture()

	req := stayRequest(3)
	req.CheckOut = req.CheckIn

	_, err := f.svc.RequestBooking(context.Background(), req)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "checkOut", validationErr.Field)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestBooking_RejectsPastDates(t *testing.T) {
	f := newFixture()

	req := stayRequest(3)
	req.CheckIn = dateOnly(time.Now()).AddDate(0, 0, -2)
	req.CheckOut = req.CheckIn.AddDate(0, 0, 3)

	_, err := f.svc.RequestBooking(context.Background(), req)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "checkIn", validationErr.Field)
}

func TestRequestBooking_RejectsOverlongStay(t *testing.T) {
	f := newFixture()

	_, err := f.svc.RequestBooking(context.Background(), stayRequest(31))
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "checkOut", validationErr.Field)
}

func TestRequestBooking_RejectsOverCapacity(t *testing.T) {
	f := newFixture()

	req := stayRequest(3)
	req.Guests = 5

	_, err := f.svc.RequestBooking(context.Background(), req)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "guests", validationErr.Field)
}

func TestRequestBooking_ConflictOnOverlap(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := stayRequest(3)
	f.repo.On("Overlapping", ctx, req.PropertyID, mock.Anything, mock.Anything).Return(int64(1), nil)

	_, err := f.svc.RequestBooking(ctx, req)
	var conflictErr *apperrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestBooking_RejectsInactiveListing(t *testing.T) {
	f := newFixture()
	f.properties.listing.Status = property.StatusSuspended

	_, err := f.svc.RequestBooking(context.Background(), stayRequest(3))
	var conflictErr *apperrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestRequestBooking_RejectsUnknownGuest(t *testing.T) {
	f := newFixture()
	f.guests.err = account.ErrGuestNotFound

	_, err := f.svc.RequestBooking(context.Background(), stayRequest(3))
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "guestId", validationErr.Field)
}

func TestTransitions_FollowLifecycleGuards(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	id := uuid.New()
	current := &Booking{ID: id, PropertyID: uuid.New(), Status: StatusPending}
	f.repo.On("GetByID", ctx, id).Return(current, nil)
	f.repo.On("Update", ctx, mock.Anything).Return(nil)

	// pending -> completed skips payment and is refused
	err := f.svc.CompleteBooking(ctx, id)
	var conflictErr *apperrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)

	// pending -> confirmed is the payment path
	require.NoError(t, f.svc.ConfirmBooking(ctx, id))
	assert.Equal(t, StatusConfirmed, current.Status)

	// confirmed -> completed after the stay
	require.NoError(t, f.svc.CompleteBooking(ctx, id))
	assert.Equal(t, StatusCompleted, current.Status)

	// completed is terminal
	err = f.svc.CancelBooking(ctx, id)
	require.ErrorAs(t, err, &conflictErr)
}

func TestGetBooking_ServesSecondReadFromCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	id := uuid.New()
	f.repo.On("GetByID", ctx, id).Return(&Booking{ID: id, Status: StatusPending}, nil).Once()

	_, err := f.svc.GetBooking(ctx, id)
	require.NoError(t, err)
	_, err = f.svc.GetBooking(ctx, id)
	require.NoError(t, err)

	f.repo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestPropertyAvailability_InvalidatedByNewBooking(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := stayRequest(3)
	propertyID := req.PropertyID
	from := dateOnly(time.Now())
	to := from.AddDate(0, 2, 0)

	f.repo.On("BookedRanges", ctx, propertyID, from, to).Return([]BookedRange{}, nil)
	f.repo.On("Overlapping", ctx, propertyID, mock.Anything, mock.Anything).Return(int64(0), nil)
	f.repo.On("Create", ctx, mock.Anything).Return(nil)

	_, err := f.svc.PropertyAvailability(ctx, propertyID, from, to)
	require.NoError(t, err)
	_, err = f.svc.PropertyAvailability(ctx, propertyID, from, to)
	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "BookedRanges", 1)

	// A new booking on the listing drops its availability window cache
	_, err = f.svc.RequestBooking(ctx, req)
	require.NoError(t, err)

	_, err = f.svc.PropertyAvailability(ctx, propertyID, from, to)
	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "BookedRanges", 2)
}

func TestPropertyAvailability_RejectsEmptyWindow(t *testing.T) {
	f := newFixture()

	from := dateOnly(time.Now())
	_, err := f.svc.PropertyAvailability(context.Background(), uuid.New(), from, from)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestGetStats_InvalidatedByTransition(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	id := uuid.New()
	f.repo.On("GetStats", ctx).Return(&BookingStats{TotalBookings: 2, Pending: 1}, nil)
	f.repo.On("GetByID", ctx, id).Return(&Booking{ID: id, PropertyID: uuid.New(), Status: StatusPending}, nil)
	f.repo.On("Update", ctx, mock.Anything).Return(nil)

	_, err := f.svc.GetStats(ctx)
	require.NoError(t, err)
	_, err = f.svc.GetStats(ctx)
	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "GetStats", 1)

	require.NoError(t, f.svc.ConfirmBooking(ctx, id))

	_, err = f.svc.GetStats(ctx)
	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "GetStats", 2)
}
