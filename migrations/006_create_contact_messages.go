package migrations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage is the schema snapshot for the contact_messages table
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Subject   string
	Body      string    `gorm:"not null"`
	Status    string    `gorm:"not null;default:'NEW';index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ContactMigration struct {
	db *gorm.DB
}

func NewContactMigration(db *gorm.DB) *ContactMigration {
	return &ContactMigration{db: db}
}

func (m *ContactMigration) Up() error {
	return m.db.AutoMigrate(&ContactMessage{})
}

func (m *ContactMigration) Down() error {
	return m.db.Migrator().DropTable(&ContactMessage{})
}
