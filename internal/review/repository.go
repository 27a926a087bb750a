package review

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

// NewRepository creates a new review repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, review *Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Review, error) {
	var review Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *repository) Update(ctx context.Context, review *Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *repository) ListByProperty(ctx context.Context, propertyID uuid.UUID, opts FilterOptions) ([]Review, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&Review{}).
		Where("property_id = ? AND status = ?", propertyID, StatusPublished)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []Review
	offset := (opts.Page - 1) * opts.Limit
	if err := query.Order("created_at DESC").Limit(opts.Limit).Offset(offset).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// Rating aggregates the published reviews of a listing. A listing with no
// reviews yields a zero average and a zero count.
func (r *repository) Rating(ctx context.Context, propertyID uuid.UUID) (*PropertyRating, error) {
	rating := &PropertyRating{PropertyID: propertyID}

	row := r.db.WithContext(ctx).
		Model(&Review{}).
		Where("property_id = ? AND status = ?", propertyID, StatusPublished).
		Select("COALESCE(AVG(rating), 0), COUNT(*)").
		Row()
	if err := row.Scan(&rating.Average, &rating.Count); err != nil {
		return nil, err
	}

	return rating, nil
}
