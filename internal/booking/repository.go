package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// inFlight are the statuses that occupy a listing's calendar
var inFlight = []Status{StatusPending, StatusConfirmed}

// repository implements Repository using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new booking repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) Update(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *repository) List(ctx context.Context, opts FilterOptions) ([]Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&Booking{})
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}
	if opts.PropertyID != "" {
		if propertyID, err := uuid.Parse(opts.PropertyID); err == nil {
			query = query.Where("property_id = ?", propertyID)
		}
	}
	if opts.GuestID != "" {
		if guestID, err := uuid.Parse(opts.GuestID); err == nil {
			query = query.Where("guest_id = ?", guestID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []Booking
	offset := (opts.Page - 1) * opts.Limit
	if err := query.Order("created_at DESC").Limit(opts.Limit).Offset(offset).Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *repository) ListByGuest(ctx context.Context, guestID uuid.UUID, opts FilterOptions) ([]Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&Booking{}).Where("guest_id = ?", guestID)
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []Booking
	offset := (opts.Page - 1) * opts.Limit
	if err := query.Order("check_in DESC").Limit(opts.Limit).Offset(offset).Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// Overlapping counts in-flight bookings whose date span intersects the
// requested one. Two spans intersect when each starts before the other ends;
// a check-in on another stay's check-out day does not collide.
func (r *repository) Overlapping(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("property_id = ? AND status IN ?", propertyID, inFlight).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&count).Error
	return count, err
}

func (r *repository) BookedRanges(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]BookedRange, error) {
	var ranges []BookedRange
	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Select("check_in, check_out, status").
		Where("property_id = ? AND status IN ?", propertyID, inFlight).
		Where("check_in < ? AND check_out > ?", to, from).
		Order("check_in ASC").
		Find(&ranges).Error
	if err != nil {
		return nil, err
	}
	return ranges, nil
}

func (r *repository) GetStats(ctx context.Context) (*BookingStats, error) {
	var stats BookingStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}

	counts := map[Status]*int64{
		StatusPending:   &stats.Pending,
		StatusConfirmed: &stats.Confirmed,
		StatusCompleted: &stats.Completed,
		StatusCancelled: &stats.Cancelled,
	}
	for status, target := range counts {
		if err := db.Model(&Booking{}).Where("status = ?", status).Count(target).Error; err != nil {
			return nil, err
		}
	}

	row := db.Model(&Booking{}).
		Where("status IN ?", []Status{StatusConfirmed, StatusCompleted}).
		Select("COALESCE(SUM(total_price), 0)").
		Row()
	if err := row.Scan(&stats.Revenue); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *repository) HasActiveBookings(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("property_id = ? AND status IN ?", propertyID, inFlight).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasCompletedStay(ctx context.Context, guestID, propertyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("guest_id = ? AND property_id = ? AND status = ?", guestID, propertyID, StatusCompleted).
		Count(&count).Error
	return count > 0, err
}
