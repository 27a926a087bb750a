package review

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review represents a guest's rating of a listing after a completed stay
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"propertyId"`
	GuestID    uuid.UUID `gorm:"type:uuid;not null;index" json:"guestId"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `json:"comment"`
	Status     Status    `gorm:"not null;default:'PUBLISHED'" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Status represents the visibility of a review
type Status string

const (
	// StatusPublished represents a review visible to guests
	StatusPublished Status = "PUBLISHED"

	// StatusHidden represents a review withdrawn by a moderator
	StatusHidden Status = "HIDDEN"
)

// BeforeCreate hook for Review model
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = StatusPublished
	}
	return nil
}
