package migrations

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethod is the schema snapshot for the payment_methods table
type PaymentMethod struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	Kind          string    `gorm:"not null"`
	AccountName   string
	AccountNumber string
	Instructions  string
	Active        bool `gorm:"default:true"`
	Position      int
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// Payment is the schema snapshot for the payments table
type Payment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BookingID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	MethodID    uuid.UUID       `gorm:"type:uuid;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Reference   string
	Status      string    `gorm:"not null;default:'PENDING';index"`
	SubmittedAt time.Time `gorm:"not null"`
	DecidedAt   *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

type PaymentMigration struct {
	db *gorm.DB
}

func NewPaymentMigration(db *gorm.DB) *PaymentMigration {
	return &PaymentMigration{db: db}
}

func (m *PaymentMigration) Up() error {
	if err := m.db.AutoMigrate(&PaymentMethod{}); err != nil {
		return err
	}
	return m.db.AutoMigrate(&Payment{})
}

func (m *PaymentMigration) Down() error {
	// Drop payments first since they reference payment methods
	if err := m.db.Migrator().DropTable(&Payment{}); err != nil {
		return err
	}
	return m.db.Migrator().DropTable(&PaymentMethod{})
}
