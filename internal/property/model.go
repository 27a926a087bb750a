package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Property represents a rental listing owned by a host
type Property struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	HostID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"hostId"`
	Title         string          `gorm:"not null" json:"title"`
	Description   string          `json:"description"`
	City          string          `gorm:"not null;index" json:"city"`
	Address       string          `json:"address"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"pricePerNight"`
	MaxGuests     int             `gorm:"not null" json:"maxGuests"`
	Bedrooms      int             `json:"bedrooms"`
	Bathrooms     int             `json:"bathrooms"`
	Amenities     []string        `gorm:"serializer:json" json:"amenities"`
	Status        Status          `gorm:"not null;default:'DRAFT'" json:"status"`
	Featured      bool            `gorm:"default:false" json:"featured"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PropertyImage represents a stored photo attached to a listing
type PropertyImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"propertyId"`
	StorageKey string    `gorm:"not null" json:"-"`
	URL        string    `gorm:"not null" json:"url"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Status represents the possible statuses of a listing
type Status string

const (
	// StatusDraft represents a listing not yet visible to guests
	StatusDraft Status = "DRAFT"

	// StatusActive represents a listing open for booking
	StatusActive Status = "ACTIVE"

	// StatusSuspended represents a listing withdrawn from booking
	StatusSuspended Status = "SUSPENDED"
)

// BeforeCreate hook for Property model
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	return nil
}

// BeforeCreate hook for PropertyImage model
func (i *PropertyImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
