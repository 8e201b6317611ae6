package models

import (
	"time"
)

type Comment struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	PostID           uint      `gorm:"not null;index" json:"post_id"`
	Post             Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	AuthorID         uint      `gorm:"not null;index" json:"author_id"`
	Author           Account   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Content          string    `gorm:"type:text;not null" json:"content"`
	IsAcceptedAnswer bool      `gorm:"default:false" json:"is_accepted_answer"`
	HelpfulCount     int       `gorm:"default:0" json:"helpful_count"`
	CreatedAt        time.Time `json:"created_at"`
	// No UpdatedAt, comments are not editable
}
