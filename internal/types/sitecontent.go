package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SiteContent is one editable block of the public site, keyed by its
// section name ("hero", "about", "contact"). The content blob is an
// open-ended JSON object whose shape is owned by the frontend.
type SiteContent struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Section   string            `gorm:"uniqueIndex;not null;column:section" json:"section"`
	Content   datatypes.JSONMap `gorm:"not null;column:content" json:"content"`
	UpdatedAt time.Time         `gorm:"not null;column:updated_at" json:"updatedAt"`
}

func (SiteContent) TableName() string {
	return "site_content"
}
