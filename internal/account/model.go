package account

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest represents a traveler account that books stays
type Guest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Status    Status    `gorm:"not null;default:'ACTIVE'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Host represents a property owner account
type Host struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Verified  bool      `gorm:"default:false" json:"verified"`
	Status    Status    `gorm:"not null;default:'ACTIVE'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Status represents the possible statuses of an account
type Status string

const (
	// StatusActive represents an account in good standing
	StatusActive Status = "ACTIVE"

	// StatusSuspended represents an account blocked from transacting
	StatusSuspended Status = "SUSPENDED"
)

// BeforeCreate hook for Guest model
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Status == "" {
		g.Status = StatusActive
	}
	return nil
}

// BeforeCreate hook for Host model
func (h *Host) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Status == "" {
		h.Status = StatusActive
	}
	return nil
}
