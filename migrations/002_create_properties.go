package migrations

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Property is the schema snapshot for the properties table
type Property struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HostID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"not null"`
	Description   string
	City          string          `gorm:"not null;index"`
	Address       string
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MaxGuests     int             `gorm:"not null"`
	Bedrooms      int
	Bathrooms     int
	Amenities     []string  `gorm:"serializer:json"`
	Status        string    `gorm:"not null;default:'DRAFT'"`
	Featured      bool      `gorm:"default:false"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// PropertyImage is the schema snapshot for the property_images table
type PropertyImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index"`
	StorageKey string    `gorm:"not null"`
	URL        string    `gorm:"not null"`
	Position   int
	CreatedAt  time.Time `gorm:"not null"`
}

type PropertyMigration struct {
	db *gorm.DB
}

func NewPropertyMigration(db *gorm.DB) *PropertyMigration {
	return &PropertyMigration{db: db}
}

func (m *PropertyMigration) Up() error {
	if err := m.db.AutoMigrate(&Property{}); err != nil {
		return err
	}
	return m.db.AutoMigrate(&PropertyImage{})
}

func (m *PropertyMigration) Down() error {
	// Drop the image table first since it references properties
	if err := m.db.Migrator().DropTable(&PropertyImage{}); err != nil {
		return err
	}
	return m.db.Migrator().DropTable(&Property{})
}
