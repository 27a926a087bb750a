package property

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
	require.NoError(t, db.AutoMigrate(&Property{}, &PropertyImage{}), "Failed to migrate listing tables")
	return NewRepository(db)
}

func seedListing(t *testing.T, repo Repository, city string, price int64, maxGuests int, status Status, featured bool) *Property {
	t.Helper()
	property := &Property{
		HostID:        uuid.New(),
		Title:         "Listing in " + city,
		City:          city,
		PricePerNight: decimal.NewFromInt(price),
		MaxGuests:     maxGuests,
		Amenities:     []string{"wifi", "kitchen"},
		Status:        status,
		Featured:      featured,
	}
	require.NoError(t, repo.Create(context.Background(), property))
	return property
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	created := seedListing(t, repo, "Amsterdam", 120, 4, StatusActive, false)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amsterdam", found.City)
	assert.True(t, found.PricePerNight.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, []string{"wifi", "kitchen"}, found.Amenities)
}

func TestRepository_GetMissingListing(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestRepository_ListFiltersByCityAndCapacity(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	seedListing(t, repo, "Amsterdam", 120, 4, StatusActive, false)
	seedListing(t, repo, "Amsterdam", 80, 2, StatusActive, false)
	seedListing(t, repo, "Lisbon", 60, 6, StatusActive, false)

	byCity, total, err := repo.List(ctx, FilterOptions{City: "amsterdam", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, byCity, 2)

	byGuests, guestTotal, err := repo.List(ctx, FilterOptions{Guests: 5, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), guestTotal)
	assert.Equal(t, "Lisbon", byGuests[0].City)
}

func TestRepository_ListFiltersByPriceRange(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	seedListing(t, repo, "Amsterdam", 120, 4, StatusActive, false)
	seedListing(t, repo, "Lisbon", 60, 2, StatusActive, false)
	seedListing(t, repo, "Porto", 45, 2, StatusActive, false)

	inRange, total, err := repo.List(ctx, FilterOptions{MinPrice: "50", MaxPrice: "100", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Lisbon", inRange[0].City)

	// Unparsable bounds are ignored rather than failing the search
	all, allTotal, err := repo.List(ctx, FilterOptions{MinPrice: "cheap", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(3), allTotal)
	assert.Len(t, all, 3)
}

func TestRepository_ListSortsByPrice(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	seedListing(t, repo, "Amsterdam", 120, 4, StatusActive, false)
	seedListing(t, repo, "Lisbon", 60, 2, StatusActive, false)
	seedListing(t, repo, "Porto", 45, 2, StatusActive, false)

	ascending, _, err := repo.List(ctx, FilterOptions{SortBy: "price_asc", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, "Porto", ascending[0].City)
	assert.Equal(t, "Amsterdam", ascending[2].City)

	descending, _, err := repo.List(ctx, FilterOptions{SortBy: "price_desc", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, "Amsterdam", descending[0].City)
}

func TestRepository_ListByHost(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	first := seedListing(t, repo, "Amsterdam", 120, 4, StatusActive, false)
	seedListing(t, repo, "Lisbon", 60, 2, StatusActive, false)

	listings, total, err := repo.ListByHost(ctx, first.HostID, FilterOptions{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, first.ID, listings[0].ID)
}

func TestRepository_FeaturedReturnsOnlyActiveFlagged(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	seedListing(t, repo, "Amsterdam", 120, 4, StatusActive, true)
	seedListing(t, repo, "Lisbon", 60, 2, StatusSuspended, true)
	seedListing(t, repo, "Porto", 45, 2, StatusActive, false)

	featured, err := repo.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Amsterdam", featured[0].City)
}

func TestRepository_GetStats(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	seedListing(t, repo, "Amsterdam", 100, 4, StatusActive, true)
	seedListing(t, repo, "Lisbon", 50, 2, StatusActive, false)
	seedListing(t, repo, "Porto", 45, 2, StatusDraft, false)

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalProperties)
	assert.Equal(t, int64(2), stats.ActiveProperties)
	assert.Equal(t, int64(1), stats.DraftProperties)
	assert.Equal(t, int64(1), stats.FeaturedProperties)
	// Average over active listings only: (100 + 50) / 2
	assert.True(t, stats.AverageNightlyPrice.Equal(decimal.NewFromInt(75)),
		"expected average 75, got %s", stats.AverageNightlyPrice)
}

func TestRepository_ImageLifecycle(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	listing := seedListing(t, repo, "Amsterdam", 120, 4, StatusActive, false)

	first := &PropertyImage{PropertyID: listing.ID, StorageKey: "properties/a/1.jpg", URL: "https://cdn/1.jpg", Position: 0}
	second := &PropertyImage{PropertyID: listing.ID, StorageKey: "properties/a/2.jpg", URL: "https://cdn/2.jpg", Position: 1}
	require.NoError(t, repo.AddImage(ctx, first))
	require.NoError(t, repo.AddImage(ctx, second))

	count, err := repo.CountImages(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	images, err := repo.ListImages(ctx, listing.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "https://cdn/1.jpg", images[0].URL)

	require.NoError(t, repo.RemoveImage(ctx, first.ID))
	count, err = repo.CountImages(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_DeleteRemovesImages(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	listing := seedListing(t, repo, "Amsterdam", 120, 4, StatusActive, false)
	require.NoError(t, repo.AddImage(ctx, &PropertyImage{PropertyID: listing.ID, StorageKey: "properties/a/1.jpg", URL: "https://cdn/1.jpg"}))

	require.NoError(t, repo.Delete(ctx, listing.ID))

	_, err := repo.GetByID(ctx, listing.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	count, err := repo.CountImages(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
