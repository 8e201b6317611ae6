package models

import (
	"time"
)

// Post types
const (
	PostTypeQuestion = "question"
	PostTypeTutorial = "tutorial"
	PostTypeStory    = "story"
	PostTypeResource = "resource"
	PostTypePlaybook = "playbook"
)

// PostTypeChoices form options in display order
var PostTypeChoices = []struct {
	Value string
	Label string
}{
	{PostTypeQuestion, "❓ Question"},
	{PostTypeTutorial, "📚 Tutorial"},
	{PostTypeStory, "💭 Story"},
	{PostTypeResource, "🔗 Resource"},
	{PostTypePlaybook, "📖 Playbook"},
}

type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AuthorID     uint      `gorm:"not null;index" json:"author_id"`
	Author       Account   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	HubID        uint      `gorm:"not null;index" json:"hub_id"`
	Hub          Hub       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hub"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	PostType     string    `gorm:"size:20;default:'question';not null;index" json:"post_type"`
	VideoURL     string    `json:"video_url"` // optional YouTube/Vimeo link
	IsAnonymous  bool      `gorm:"default:false" json:"is_anonymous"`
	HelpfulCount int       `gorm:"default:0" json:"helpful_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// filled by queries, not a column
	CommentCount int `gorm:"-" json:"comment_count"`
}

// TypeLabel returns the human label for the post type.
func (p *Post) TypeLabel() string {
	for _, c := range PostTypeChoices {
		if c.Value == p.PostType {
			return c.Label
		}
	}
	return p.PostType
}

// AuthorDisplay returns "Anonymous" for anonymous posts, otherwise the
// author's visibility-resolved display name. Requires Author (with
// Profile) to be preloaded for non-anonymous posts.
func (p *Post) AuthorDisplay() string {
	if p.IsAnonymous {
		return "Anonymous"
	}
	return p.Author.DisplayName()
}
