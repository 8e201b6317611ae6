package models

import (
	"time"
)

// HelpfulVote records who marked what as helpful. Exactly one of PostID /
// CommentID is set. The composite unique indexes enforce at most one
// vote per (account, post) and per (account, comment). PG treats NULLs
// as distinct, so post votes and comment votes never collide across the
// two indexes.
type HelpfulVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID uint      `gorm:"not null;uniqueIndex:idx_helpful_account_post;uniqueIndex:idx_helpful_account_comment" json:"account_id"`
	Account   Account   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PostID    *uint     `gorm:"uniqueIndex:idx_helpful_account_post" json:"post_id"`
	Post      *Post     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CommentID *uint     `gorm:"uniqueIndex:idx_helpful_account_comment" json:"comment_id"`
	Comment   *Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
