package types

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Description string    `gorm:"not null;column:description" json:"description"`
	Icon        string    `gorm:"not null;column:icon" json:"icon"`
	Price       string    `gorm:"not null;column:price" json:"price"`
	Order       int       `gorm:"not null;default:0;column:order" json:"order"`
	CreatedAt   time.Time `gorm:"not null;column:created_at" json:"createdAt"`
}

func (Service) TableName() string {
	return "services"
}
