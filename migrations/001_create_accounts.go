package migrations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest is the schema snapshot for the guests table. Migration structs
// stay frozen even when the domain models evolve.
type Guest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Phone     string
	Status    string    `gorm:"not null;default:'ACTIVE'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Host is the schema snapshot for the hosts table
type Host struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Phone     string
	Bio       string
	Verified  bool      `gorm:"default:false"`
	Status    string    `gorm:"not null;default:'ACTIVE'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AccountMigration struct {
	db *gorm.DB
}

func NewAccountMigration(db *gorm.DB) *AccountMigration {
	return &AccountMigration{db: db}
}

func (m *AccountMigration) Up() error {
	if err := m.db.AutoMigrate(&Guest{}); err != nil {
		return err
	}
	return m.db.AutoMigrate(&Host{})
}

func (m *AccountMigration) Down() error {
	if err := m.db.Migrator().DropTable(&Host{}); err != nil {
		return err
	}
	return m.db.Migrator().DropTable(&Guest{})
}
