package review

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepository(t *testing.T) Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory database")
	require.NoError(t, db.AutoMigrate(&Review{}), "Failed to migrate review table")
	return NewRepository(db)
}

func seedReview(t *testing.T, repo Repository, propertyID uuid.UUID, rating int, status Status) *Review {
	t.Helper()
	review := &Review{
		PropertyID: propertyID,
		GuestID:    uuid.New(),
		Rating:     rating,
		Comment:    "Great location",
		Status:     status,
	}
	require.NoError(t, repo.Create(context.Background(), review))
	return review
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	created := seedReview(t, repo, uuid.New(), 5, StatusPublished)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.PropertyID, fetched.PropertyID)
	assert.Equal(t, 5, fetched.Rating)
	assert.Equal(t, StatusPublished, fetched.Status)
}

func TestRepository_GetMissingReview(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestRepository_ListExcludesHiddenReviews(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	propertyID := uuid.New()

	seedReview(t, repo, propertyID, 5, StatusPublished)
	seedReview(t, repo, propertyID, 4, StatusPublished)
	seedReview(t, repo, propertyID, 1, StatusHidden)
	seedReview(t, repo, uuid.New(), 3, StatusPublished)

	reviews, total, err := repo.ListByProperty(ctx, propertyID, FilterOptions{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, reviews, 2)
	for _, review := range reviews {
		assert.Equal(t, StatusPublished, review.Status)
	}
}

func TestRepository_ListPaginates(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	propertyID := uuid.New()

	for i := 0; i < 5; i++ {
		seedReview(t, repo, propertyID, 4, StatusPublished)
	}

	page, total, err := repo.ListByProperty(ctx, propertyID, FilterOptions{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 1)
}

func TestRepository_RatingAggregatesPublishedOnly(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	propertyID := uuid.New()

	seedReview(t, repo, propertyID, 5, StatusPublished)
	seedReview(t, repo, propertyID, 4, StatusPublished)
	seedReview(t, repo, propertyID, 3, StatusPublished)
	seedReview(t, repo, propertyID, 1, StatusHidden)

	rating, err := repo.Rating(ctx, propertyID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rating.Count)
	assert.True(t, rating.Average.Equal(decimal.NewFromInt(4)),
		"expected average 4, got %s", rating.Average)
}

func TestRepository_RatingOfUnreviewedListing(t *testing.T) {
	repo := setupRepository(t)

	rating, err := repo.Rating(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), rating.Count)
	assert.True(t, rating.Average.IsZero())
}

func TestRepository_UpdatePersistsStatus(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	review := seedReview(t, repo, uuid.New(), 2, StatusPublished)
	review.Status = StatusHidden
	require.NoError(t, repo.Update(ctx, review))

	fetched, err := repo.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusHidden, fetched.Status)
}

func TestRepository_DeleteMissingReview(t *testing.T) {
	repo := setupRepository(t)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
