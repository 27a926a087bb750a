package contact

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

// NewRepository creates a new contact repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, message *ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*ContactMessage, error) {
	var message ContactMessage
	if err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *repository) Update(ctx context.Context, message *ContactMessage) error {
	return r.db.WithContext(ctx).Save(message).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ContactMessage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, opts FilterOptions) ([]ContactMessage, int64, error) {
	query := r.db.WithContext(ctx).Model(&ContactMessage{})
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []ContactMessage
	offset := (opts.Page - 1) * opts.Limit
	if err := query.Order("created_at DESC").Limit(opts.Limit).Offset(offset).Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
