package contact

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage represents an enquiry submitted through the public contact form
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `gorm:"not null" json:"body"`
	Status    Status    `gorm:"not null;default:'NEW';index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Status represents the handling state of a contact message
type Status string

const (
	// StatusNew represents a message nobody has looked at yet
	StatusNew Status = "NEW"

	// StatusRead represents a message an operator has opened
	StatusRead Status = "READ"

	// StatusReplied represents a message that has been answered
	StatusReplied Status = "REPLIED"
)

// BeforeCreate hook for ContactMessage model
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = StatusNew
	}
	return nil
}
