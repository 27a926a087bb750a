package payment

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

// NewRepository creates a new payment repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateMethod(ctx context.Context, method *PaymentMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *repository) GetMethodByID(ctx context.Context, id uuid.UUID) (*PaymentMethod, error) {
	var method PaymentMethod
	if err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMethodNotFound
		}
		return nil, err
	}
	return &method, nil
}

func (r *repository) UpdateMethod(ctx context.Context, method *PaymentMethod) error {
	return r.db.WithContext(ctx).Save(method).Error
}

func (r *repository) ListMethods(ctx context.Context, activeOnly bool) ([]PaymentMethod, error) {
	query := r.db.WithContext(ctx).Model(&PaymentMethod{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var methods []PaymentMethod
	if err := query.Order("position ASC, created_at ASC").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *repository) CreatePayment(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	var payment Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *repository) UpdatePayment(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *repository) ListPayments(ctx context.Context, opts FilterOptions) ([]Payment, int64, error) {
	query := r.db.WithContext(ctx).Model(&Payment{})
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []Payment
	offset := (opts.Page - 1) * opts.Limit
	if err := query.Order("submitted_at DESC").Limit(opts.Limit).Offset(offset).Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *repository) HasPendingPayment(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payment{}).
		Where("booking_id = ? AND status = ?", bookingID, StatusPending).
		Count(&count).Error
	return count > 0, err
}
