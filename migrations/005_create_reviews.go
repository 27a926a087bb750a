package migrations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is the schema snapshot for the reviews table
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index"`
	GuestID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string
	Status     string    `gorm:"not null;default:'PUBLISHED'"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

type ReviewMigration struct {
	db *gorm.DB
}

func NewReviewMigration(db *gorm.DB) *ReviewMigration {
	return &ReviewMigration{db: db}
}

func (m *ReviewMigration) Up() error {
	return m.db.AutoMigrate(&Review{})
}

func (m *ReviewMigration) Down() error {
	return m.db.Migrator().DropTable(&Review{})
}
