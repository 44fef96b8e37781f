package types

import (
	"time"

	"github.com/google/uuid"
)

type ContactSubmission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Email     string    `gorm:"not null;column:email" json:"email"`
	Message   string    `gorm:"not null;column:message" json:"message"`
	Status    string    `gorm:"not null;default:pending;column:status" json:"status"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"createdAt"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
