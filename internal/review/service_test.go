package review

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/verandalabs/veranda-stays/backend/internal/cache"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
)

// mockRepository is a mock implementation of Repository
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, review *Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Review), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, review *Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID, opts FilterOptions) ([]Review, int64, error) {
	args := m.Called(ctx, propertyID, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Review), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) Rating(ctx context.Context, propertyID uuid.UUID) (*PropertyRating, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PropertyRating), args.Error(1)
}

// stubStayVerifier answers every stay check with a fixed verdict
type stubStayVerifier struct {
	stayed bool
	err    error
}

func (s *stubStayVerifier) HasCompletedStay(ctx context.Context, guestID, propertyID uuid.UUID) (bool, error) {
	return s.stayed, s.err
}

// testLogger is a no-op logger for service tests
type testLogger struct{}

func (l *testLogger) LogInfo(msg string, fields map[string]interface{})      {}
func (l *testLogger) LogDebug(message string, fields map[string]interface{}) {}
func (l *testLogger) LogWarn(message string, fields map[string]interface{})  {}
func (l *testLogger) LogError(err error, msg string) error                   { return err }

type serviceFixture struct {
	repo  *mockRepository
	stays *stubStayVerifier
	svc   Service
}

func newFixture() *serviceFixture {
	repo := new(mockRepository)
	stays := &stubStayVerifier{stayed: true}
	svc := NewService(repo, cache.NewMemoryStore(), cache.DefaultTiers(), stays, &testLogger{})
	return &serviceFixture{repo: repo, stays: stays, svc: svc}
}

func TestCreateReview_RejectsOutOfRangeRating(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := f.svc.CreateReview(ctx, uuid.New(), CreateReviewRequest{GuestID: uuid.New(), Rating: rating})
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr, "rating %d should be rejected", rating)
		assert.Equal(t, "rating", validationErr.Field)
	}
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_RequiresCompletedStay(t *testing.T) {
	f := newFixture()
	f.stays.stayed = false

	_, err := f.svc.CreateReview(context.Background(), uuid.New(), CreateReviewRequest{GuestID: uuid.New(), Rating: 5})

	var conflictErr *apperrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_PublishesAfterStay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("Create", ctx, mock.Anything).Return(nil)

	review, err := f.svc.CreateReview(ctx, uuid.New(), CreateReviewRequest{
		GuestID: uuid.New(),
		Rating:  4,
		Comment: "Quiet street, spotless kitchen",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, review.Status)
	assert.Equal(t, 4, review.Rating)
}

func TestListPropertyReviews_CachedPerPage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	propertyID := uuid.New()

	pageOne := FilterOptions{Page: 1, Limit: 10}
	pageTwo := FilterOptions{Page: 2, Limit: 10}
	f.repo.On("ListByProperty", ctx, propertyID, pageOne).Return([]Review{}, int64(0), nil)
	f.repo.On("ListByProperty", ctx, propertyID, pageTwo).Return([]Review{}, int64(0), nil)

	_, err := f.svc.ListPropertyReviews(ctx, propertyID, pageOne)
	require.NoError(t, err)
	_, err = f.svc.ListPropertyReviews(ctx, propertyID, pageOne)
	require.NoError(t, err)
	_, err = f.svc.ListPropertyReviews(ctx, propertyID, pageTwo)
	require.NoError(t, err)

	f.repo.AssertNumberOfCalls(t, "ListByProperty", 2)
}

func TestGetPropertyRating_InvalidatedByNewReview(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	propertyID := uuid.New()

	f.repo.On("Rating", ctx, propertyID).Return(&PropertyRating{PropertyID: propertyID}, nil)
	f.repo.On("Create", ctx, mock.Anything).Return(nil)

	_, err := f.svc.GetPropertyRating(ctx, propertyID)
	require.NoError(t, err)
	_, err = f.svc.GetPropertyRating(ctx, propertyID)
	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "Rating", 1)

	_, err = f.svc.CreateReview(ctx, propertyID, CreateReviewRequest{GuestID: uuid.New(), Rating: 5})
	require.NoError(t, err)

	_, err = f.svc.GetPropertyRating(ctx, propertyID)
	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "Rating", 2)
}

func TestCreateReview_LeavesOtherListingsCached(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	reviewed := uuid.New()
	other := uuid.New()

	f.repo.On("Rating", ctx, mock.Anything).Return(&PropertyRating{}, nil)
	f.repo.On("Create", ctx, mock.Anything).Return(nil)

	_, err := f.svc.GetPropertyRating(ctx, other)
	require.NoError(t, err)

	_, err = f.svc.CreateReview(ctx, reviewed, CreateReviewRequest{GuestID: uuid.New(), Rating: 5})
	require.NoError(t, err)

	_, err = f.svc.GetPropertyRating(ctx, other)
	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "Rating", 1)
}

func TestHideReview_NoOpWhenAlreadyHidden(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	review := &Review{ID: uuid.New(), PropertyID: uuid.New(), Status: StatusHidden}
	f.repo.On("GetByID", ctx, review.ID).Return(review, nil)

	require.NoError(t, f.svc.HideReview(ctx, review.ID))
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestHideReview_DropsListingCaches(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	propertyID := uuid.New()

	review := &Review{ID: uuid.New(), PropertyID: propertyID, Rating: 2, Status: StatusPublished}
	opts := FilterOptions{Page: 1, Limit: 20}
	f.repo.On("GetByID", ctx, review.ID).Return(review, nil)
	f.repo.On("Update", ctx, review).Return(nil)
	f.repo.On("ListByProperty", ctx, propertyID, opts).Return([]Review{*review}, int64(1), nil)
	f.repo.On("Rating", ctx, propertyID).Return(&PropertyRating{PropertyID: propertyID}, nil)

	_, err := f.svc.ListPropertyReviews(ctx, propertyID, opts)
	require.NoError(t, err)
	_, err = f.svc.GetPropertyRating(ctx, propertyID)
	require.NoError(t, err)

	require.NoError(t, f.svc.HideReview(ctx, review.ID))
	assert.Equal(t, StatusHidden, review.Status)

	_, err = f.svc.ListPropertyReviews(ctx, propertyID, opts)
	require.NoError(t, err)
	_, err = f.svc.GetPropertyRating(ctx, propertyID)
	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "ListByProperty", 2)
	f.repo.AssertNumberOfCalls(t, "Rating", 2)
}

func TestDeleteReview_InvalidatesListingRating(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	propertyID := uuid.New()

	review := &Review{ID: uuid.New(), PropertyID: propertyID, Rating: 1, Status: StatusPublished}
	f.repo.On("GetByID", ctx, review.ID).Return(review, nil)
	f.repo.On("Delete", ctx, review.ID).Return(nil)
	f.repo.On("Rating", ctx, propertyID).Return(&PropertyRating{PropertyID: propertyID}, nil)

	_, err := f.svc.GetPropertyRating(ctx, propertyID)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteReview(ctx, review.ID))

	_, err = f.svc.GetPropertyRating(ctx, propertyID)
	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "Rating", 2)
}

func TestDeleteReview_MissingReview(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	id := uuid.New()
	f.repo.On("GetByID", ctx, id).Return(nil, ErrReviewNotFound)

	err := f.svc.DeleteReview(ctx, id)
	assert.ErrorIs(t, err, ErrReviewNotFound)
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
