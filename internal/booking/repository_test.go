package booking

import (
	"context"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&Booking{}), "Failed to migrate booking table")
	return NewRepository(db)
}

// day returns a fixed September 2026 calendar date
func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func seedBooking(t *testing.T, repo Repository, propertyID, guestID uuid.UUID, checkIn, checkOut time.Time, status Status, total int64) *Booking {
	t.Helper()
	booking := &Booking{
		PropertyID: propertyID,
		GuestID:    guestID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
		Nights:     int(checkOut.Sub(checkIn).Hours() / 24),
		TotalPrice: decimal.NewFromInt(total),
		Status:     status,
	}
	require.NoError(t, repo.Create(context.Background(), booking))
	return booking
}

func TestRepository_OverlapDetection(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	propertyID := uuid.New()
	seedBooking(t, repo, propertyID, uuid.New(), day(10), day(14), StatusConfirmed, 480)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int64
	}{
		{"identical span", day(10), day(14), 1},
		{"contained span", day(11), day(13), 1},
		{"straddles start", day(8), day(11), 1},
		{"straddles end", day(13), day(16), 1},
		{"surrounds existing", day(8), day(16), 1},
		{"before existing", day(5), day(8), 0},
		{"after existing", day(16), day(20), 0},
		{"checks in on checkout day", day(14), day(18), 0},
		{"checks out on checkin day", day(7), day(10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := repo.Overlapping(ctx, propertyID, tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestRepository_OverlapIgnoresClosedBookings(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	propertyID := uuid.New()
	seedBooking(t, repo, propertyID, uuid.New(), day(10), day(14), StatusCancelled, 480)
	seedBooking(t, repo, propertyID, uuid.New(), day(10), day(14), StatusCompleted, 480)

	count, err := repo.Overlapping(ctx, propertyID, day(10), day(14))
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "cancelled and completed stays free the calendar")
}

func TestRepository_OverlapScopedToProperty(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	seedBooking(t, repo, uuid.New(), uuid.New(), day(10), day(14), StatusConfirmed, 480)

	count, err := repo.Overlapping(ctx, uuid.New(), day(10), day(14))
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRepository_BookedRangesWindowAndOrder(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	propertyID := uuid.New()
	seedBooking(t, repo, propertyID, uuid.New(), day(20), day(24), StatusPending, 400)
	seedBooking(t, repo, propertyID, uuid.New(), day(5), day(8), StatusConfirmed, 300)
	seedBooking(t, repo, propertyID, uuid.New(), day(10), day(12), StatusCancelled, 200)
	// Outside the queried window
	seedBooking(t, repo, propertyID, uuid.New(), day(26), day(29), StatusConfirmed, 300)

	ranges, err := repo.BookedRanges(ctx, propertyID, day(1), day(25))
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.WithinDuration(t, day(5), ranges[0].CheckIn, time.Second)
	assert.Equal(t, StatusConfirmed, ranges[0].Status)
	assert.WithinDuration(t, day(20), ranges[1].CheckIn, time.Second)
	assert.Equal(t, StatusPending, ranges[1].Status)
}

func TestRepository_HasActiveBookings(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	withActive := uuid.New()
	withClosed := uuid.New()
	seedBooking(t, repo, withActive, uuid.New(), day(10), day(14), StatusPending, 480)
	seedBooking(t, repo, withClosed, uuid.New(), day(10), day(14), StatusCancelled, 480)

	active, err := repo.HasActiveBookings(ctx, withActive)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = repo.HasActiveBookings(ctx, withClosed)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestRepository_HasCompletedStay(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	propertyID := uuid.New()
	guestID := uuid.New()
	seedBooking(t, repo, propertyID, guestID, day(1), day(4), StatusCompleted, 300)
	seedBooking(t, repo, propertyID, uuid.New(), day(10), day(14), StatusConfirmed, 480)

	stayed, err := repo.HasCompletedStay(ctx, guestID, propertyID)
	require.NoError(t, err)
	assert.True(t, stayed)

	// A confirmed but not yet completed stay does not count
	stayed, err = repo.HasCompletedStay(ctx, uuid.New(), propertyID)
	require.NoError(t, err)
	assert.False(t, stayed)
}

func TestRepository_ListFilters(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	propertyID := uuid.New()
	guestID := uuid.New()
	seedBooking(t, repo, propertyID, guestID, day(1), day(4), StatusPending, 300)
	seedBooking(t, repo, propertyID, uuid.New(), day(5), day(8), StatusConfirmed, 300)
	seedBooking(t, repo, uuid.New(), guestID, day(9), day(12), StatusPending, 300)

	byStatus, total, err := repo.List(ctx, FilterOptions{Status: string(StatusPending), Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, byStatus, 2)

	byProperty, propertyTotal, err := repo.List(ctx, FilterOptions{PropertyID: propertyID.String(), Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), propertyTotal)
	assert.Len(t, byProperty, 2)

	guestBookings, guestTotal, err := repo.ListByGuest(ctx, guestID, FilterOptions{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), guestTotal)
	assert.Len(t, guestBookings, 2)
}

func TestRepository_GetStatsRevenue(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	propertyID := uuid.New()
	seedBooking(t, repo, propertyID, uuid.New(), day(1), day(4), StatusCompleted, 300)
	seedBooking(t, repo, propertyID, uuid.New(), day(5), day(8), StatusConfirmed, 450)
	seedBooking(t, repo, propertyID, uuid.New(), day(9), day(12), StatusPending, 999)
	seedBooking(t, repo, propertyID, uuid.New(), day(13), day(16), StatusCancelled, 999)

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalBookings)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Confirmed)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.Cancelled)
	// Revenue covers confirmed and completed stays only: 300 + 450
	assert.True(t, stats.Revenue.Equal(decimal.NewFromInt(750)),
		"expected revenue 750, got %s", stats.Revenue)
}
