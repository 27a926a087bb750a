package migrations

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking is the schema snapshot for the bookings table
type Booking struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	GuestID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CheckIn    time.Time       `gorm:"not null"`
	CheckOut   time.Time       `gorm:"not null"`
	Guests     int             `gorm:"not null"`
	Nights     int             `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status     string          `gorm:"not null;default:'PENDING';index"`
	Note       string
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

type BookingMigration struct {
	db *gorm.DB
}

func NewBookingMigration(db *gorm.DB) *BookingMigration {
	return &BookingMigration{db: db}
}

func (m *BookingMigration) Up() error {
	return m.db.AutoMigrate(&Booking{})
}

func (m *BookingMigration) Down() error {
	return m.db.Migrator().DropTable(&Booking{})
}
