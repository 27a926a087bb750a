package property

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// repository implements Repository using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new listing repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, property *Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Property, error) {
	var property Property
	if err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *repository) Update(ctx context.Context, property *Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&PropertyImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Property{}, "id = ?", id).Error
	})
}

func (r *repository) List(ctx context.Context, opts FilterOptions) ([]Property, int64, error) {
	query := r.applyFilters(r.db.WithContext(ctx).Model(&Property{}), opts)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []Property
	offset := (opts.Page - 1) * opts.Limit
	if err := query.Order(sortClause(opts.SortBy)).Limit(opts.Limit).Offset(offset).Find(&properties).Error; err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (r *repository) ListByHost(ctx context.Context, hostID uuid.UUID, opts FilterOptions) ([]Property, int64, error) {
	query := r.applyFilters(r.db.WithContext(ctx).Model(&Property{}), opts).
		Where("host_id = ?", hostID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []Property
	offset := (opts.Page - 1) * opts.Limit
	if err := query.Order(sortClause(opts.SortBy)).Limit(opts.Limit).Offset(offset).Find(&properties).Error; err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (r *repository) Featured(ctx context.Context) ([]Property, error) {
	var properties []Property
	err := r.db.WithContext(ctx).
		Where("featured = ? AND status = ?", true, StatusActive).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *repository) GetStats(ctx context.Context) (*PropertyStats, error) {
	var stats PropertyStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&Property{}).Count(&stats.TotalProperties).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Property{}).Where("status = ?", StatusActive).Count(&stats.ActiveProperties).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Property{}).Where("status = ?", StatusDraft).Count(&stats.DraftProperties).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Property{}).Where("status = ?", StatusSuspended).Count(&stats.SuspendedProperties).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&Property{}).Where("featured = ?", true).Count(&stats.FeaturedProperties).Error; err != nil {
		return nil, err
	}

	row := db.Model(&Property{}).
		Where("status = ?", StatusActive).
		Select("COALESCE(AVG(price_per_night), 0)").
		Row()
	if err := row.Scan(&stats.AverageNightlyPrice); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *repository) AddImage(ctx context.Context, image *PropertyImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *repository) GetImage(ctx context.Context, id uuid.UUID) (*PropertyImage, error) {
	var image PropertyImage
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *repository) ListImages(ctx context.Context, propertyID uuid.UUID) ([]PropertyImage, error) {
	var images []PropertyImage
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("position ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *repository) CountImages(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PropertyImage{}).
		Where("property_id = ?", propertyID).
		Count(&count).Error
	return count, err
}

func (r *repository) RemoveImage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&PropertyImage{}, "id = ?", id).Error
}

// applyFilters translates search options into query conditions
func (r *repository) applyFilters(query *gorm.DB, opts FilterOptions) *gorm.DB {
	if opts.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", opts.City)
	}
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}
	if opts.Guests > 0 {
		query = query.Where("max_guests >= ?", opts.Guests)
	}
	if opts.MinPrice != "" {
		if min, err := decimal.NewFromString(opts.MinPrice); err == nil {
			query = query.Where("price_per_night >= ?", min)
		}
	}
	if opts.MaxPrice != "" {
		if max, err := decimal.NewFromString(opts.MaxPrice); err == nil {
			query = query.Where("price_per_night <= ?", max)
		}
	}
	return query
}

func sortClause(sortBy string) string {
	switch sortBy {
	case "price_asc":
		return "price_per_night ASC"
	case "price_desc":
		return "price_per_night DESC"
	default:
		return "created_at DESC"
	}
}
