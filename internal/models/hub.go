package models

import (
	"time"

	"astra/internal/utils"

	"gorm.io/gorm"
)

// Hub topic-based community (e.g. STEM, Entrepreneurship, Health)
type Hub struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;size:100;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:50;default:'💡'" json:"icon"`
	Moderators  []Profile `gorm:"many2many:hub_moderators;" json:"-"`
	Members     []Account `gorm:"many2many:hub_members;" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeSave derives the slug from the name when not supplied.
// Slug uniqueness is enforced by the index.
func (h *Hub) BeforeSave(tx *gorm.DB) error {
	if h.Slug == "" {
		h.Slug = utils.Slugify(h.Name)
	}
	return nil
}
