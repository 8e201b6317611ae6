package services

import (
	"astra/internal/db"
	"astra/internal/models"

	"gorm.io/gorm"
)

// ToggleAcceptedAnswer flips a comment's accepted-answer flag, keeping
// at most one accepted answer per post: accepting a comment clears any
// previously accepted one. The comment must belong to the post.
// Returns whether the comment is accepted afterwards.
func ToggleAcceptedAnswer(postID, commentID uint) (bool, error) {
	var comment models.Comment
	if err := db.DB.Where("post_id = ?", postID).First(&comment, commentID).Error; err != nil {
		return false, err
	}

	accepting := !comment.IsAcceptedAnswer
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if accepting {
			if err := tx.Model(&models.Comment{}).
				Where("post_id = ?", postID).
				Update("is_accepted_answer", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Comment{}).
			Where("id = ?", comment.ID).
			Update("is_accepted_answer", accepting).Error
	})
	if err != nil {
		return false, err
	}
	return accepting, nil
}
