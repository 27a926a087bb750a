package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethod represents a configured way for guests to pay,
// e.g. a bank account or a mobile money number
type PaymentMethod struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Kind          Kind      `gorm:"not null" json:"kind"`
	AccountName   string    `json:"accountName"`
	AccountNumber string    `json:"accountNumber"`
	Instructions  string    `json:"instructions"`
	Active        bool      `gorm:"default:true" json:"active"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Payment represents a guest's submitted payment for a booking
type Payment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"bookingId"`
	MethodID    uuid.UUID       `gorm:"type:uuid;not null" json:"methodId"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Reference   string          `json:"reference"`
	Status      Status          `gorm:"not null;default:'PENDING';index" json:"status"`
	SubmittedAt time.Time       `gorm:"not null" json:"submittedAt"`
	DecidedAt   *time.Time      `json:"decidedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Kind represents the category of a payment method
type Kind string

const (
	// KindBank represents a bank transfer destination
	KindBank Kind = "BANK"

	// KindMobile represents a mobile money account
	KindMobile Kind = "MOBILE"

	// KindOther represents any other arrangement
	KindOther Kind = "OTHER"
)

// Status represents the review state of a submitted payment
type Status string

const (
	// StatusPending represents a payment awaiting review
	StatusPending Status = "PENDING"

	// StatusConfirmed represents a payment verified by an operator
	StatusConfirmed Status = "CONFIRMED"

	// StatusRejected represents a payment that could not be verified
	StatusRejected Status = "REJECTED"
)

// BeforeCreate hook for PaymentMethod model
func (m *PaymentMethod) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for Payment model
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	return nil
}
