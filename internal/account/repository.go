package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// repository implements Repository using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new account repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateGuest(ctx context.Context, guest *Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *repository) GetGuestByID(ctx context.Context, id uuid.UUID) (*Guest, error) {
	var guest Guest
	if err := r.db.WithContext(ctx).First(&guest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return &guest, nil
}

func (r *repository) GetGuestByEmail(ctx context.Context, email string) (*Guest, error) {
	var guest Guest
	if err := r.db.WithContext(ctx).First(&guest, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return &guest, nil
}

func (r *repository) UpdateGuest(ctx context.Context, guest *Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

func (r *repository) ListGuests(ctx context.Context, opts FilterOptions) ([]Guest, int64, error) {
	query := r.db.WithContext(ctx).Model(&Guest{})
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var guests []Guest
	offset := (opts.Page - 1) * opts.Limit
	if err := query.Order("created_at DESC").Limit(opts.Limit).Offset(offset).Find(&guests).Error; err != nil {
		return nil, 0, err
	}
	return guests, total, nil
}

func (r *repository) CreateHost(ctx context.Context, host *Host) error {
	return r.db.WithContext(ctx).Create(host).Error
}

func (r *repository) GetHostByID(ctx context.Context, id uuid.UUID) (*Host, error) {
	var host Host
	if err := r.db.WithContext(ctx).First(&host, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, err
	}
	return &host, nil
}

func (r *repository) GetHostByEmail(ctx context.Context, email string) (*Host, error) {
	var host Host
	if err := r.db.WithContext(ctx).First(&host, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, err
	}
	return &host, nil
}

func (r *repository) UpdateHost(ctx context.Context, host *Host) error {
	return r.db.WithContext(ctx).Save(host).Error
}

func (r *repository) ListHosts(ctx context.Context, opts FilterOptions) ([]Host, int64, error) {
	query := r.db.WithContext(ctx).Model(&Host{})
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hosts []Host
	offset := (opts.Page - 1) * opts.Limit
	if err := query.Order("created_at DESC").Limit(opts.Limit).Offset(offset).Find(&hosts).Error; err != nil {
		return nil, 0, err
	}
	return hosts, total, nil
}

func (r *repository) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	db := r.db.WithContext(ctx)

	if err := db.Model(&Guest{}).Count(&stats.TotalGuests).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Guest{}).Where("status = ?", StatusActive).Count(&stats.ActiveGuests).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Host{}).Count(&stats.TotalHosts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Host{}).Where("verified = ?", true).Count(&stats.VerifiedHosts).Error; err != nil {
		return nil, err
	}

	var suspendedGuests, suspendedHosts int64
	if err := db.Model(&Guest{}).Where("status = ?", StatusSuspended).Count(&suspendedGuests).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Host{}).Where("status = ?", StatusSuspended).Count(&suspendedHosts).Error; err != nil {
		return nil, err
	}
	stats.Suspended = suspendedGuests + suspendedHosts

	return &stats, nil
}
