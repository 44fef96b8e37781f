package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PricingPlan.Popular is a two-valued string ("true"/"false") rather
// than a bool; the admin panel stores and compares it as text.
type PricingPlan struct {
	ID          uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                     `gorm:"not null;column:name" json:"name"`
	Price       string                     `gorm:"not null;column:price" json:"price"`
	Description string                     `gorm:"not null;column:description" json:"description"`
	Features    datatypes.JSONSlice[string] `gorm:"not null;column:features" json:"features"`
	Popular     string                     `gorm:"not null;default:false;column:popular" json:"popular"`
	Order       int                        `gorm:"not null;default:0;column:order" json:"order"`
	CreatedAt   time.Time                  `gorm:"not null;column:created_at" json:"createdAt"`
}

func (PricingPlan) TableName() string {
	return "pricing_plans"
}
