package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PortfolioItem struct {
	ID           uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string                     `gorm:"not null;column:title" json:"title"`
	Description  string                     `gorm:"not null;column:description" json:"description"`
	Image        string                     `gorm:"not null;column:image" json:"image"`
	Technologies datatypes.JSONSlice[string] `gorm:"not null;column:technologies" json:"technologies"`
	Link         *string                    `gorm:"column:link" json:"link"`
	Order        int                        `gorm:"not null;default:0;column:order" json:"order"`
	CreatedAt    time.Time                  `gorm:"not null;column:created_at" json:"createdAt"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}
