package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking represents a stay reservation for a listing
type Booking struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID       `gorm:"type:uuid;not null;index" json:"propertyId"`
	GuestID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"guestId"`
	CheckIn    time.Time       `gorm:"not null" json:"checkIn"`
	CheckOut   time.Time       `gorm:"not null" json:"checkOut"`
	Guests     int             `gorm:"not null" json:"guests"`
	Nights     int             `gorm:"not null" json:"nights"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalPrice"`
	Status     Status          `gorm:"not null;default:'PENDING';index" json:"status"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Status represents the lifecycle state of a booking
type Status string

const (
	// StatusPending represents a requested stay awaiting payment
	StatusPending Status = "PENDING"

	// StatusConfirmed represents a stay whose payment was confirmed
	StatusConfirmed Status = "CONFIRMED"

	// StatusCompleted represents a stay that has taken place
	StatusCompleted Status = "COMPLETED"

	// StatusCancelled represents a stay called off before completion
	StatusCancelled Status = "CANCELLED"
)

// canTransition reports whether a booking may move between two states
func canTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

// BeforeCreate hook for Booking model
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}
