package services

import (
	"errors"

	"astra/internal/db"
	"astra/internal/models"

	"gorm.io/gorm"
)

// Vote target kinds
const (
	VoteTargetPost    = "post"
	VoteTargetComment = "comment"
)

var ErrUnknownVoteTarget = errors.New("unknown vote target")

// ToggleHelpfulVote flips the (account, target) helpful vote: inserts a
// vote and bumps the target's helpful_count by one, or removes an
// existing vote and drops the count by one. The vote row is the sole
// source of truth for the count deltas; nothing else writes
// helpful_count. Returns whether the account holds a vote afterwards.
func ToggleHelpfulVote(accountID uint, itemType string, itemID uint) (bool, error) {
	if itemType != VoteTargetPost && itemType != VoteTargetComment {
		return false, ErrUnknownVoteTarget
	}

	// Target must exist
	if itemType == VoteTargetPost {
		var post models.Post
		if err := db.DB.Select("id").First(&post, itemID).Error; err != nil {
			return false, err
		}
	} else {
		var comment models.Comment
		if err := db.DB.Select("id").First(&comment, itemID).Error; err != nil {
			return false, err
		}
	}

	var existing models.HelpfulVote
	if err := voteQuery(accountID, itemType, itemID).First(&existing).Error; err == nil {
		return false, removeVote(&existing, itemType, itemID)
	}

	vote := models.HelpfulVote{AccountID: accountID}
	if itemType == VoteTargetPost {
		vote.PostID = &itemID
	} else {
		vote.CommentID = &itemID
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}
		return bumpHelpfulCount(tx, itemType, itemID, +1)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent identical toggle won the insert; the unique index
		// rejected ours. Observe it as "already voted" and take the
		// toggle-off branch.
		if err := voteQuery(accountID, itemType, itemID).First(&existing).Error; err != nil {
			return false, nil
		}
		return false, removeVote(&existing, itemType, itemID)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// HasVoted reports whether the account currently holds a helpful vote on the target.
func HasVoted(accountID uint, itemType string, itemID uint) bool {
	var vote models.HelpfulVote
	return voteQuery(accountID, itemType, itemID).First(&vote).Error == nil
}

func voteQuery(accountID uint, itemType string, itemID uint) *gorm.DB {
	q := db.DB.Where("account_id = ?", accountID)
	if itemType == VoteTargetPost {
		return q.Where("post_id = ?", itemID)
	}
	return q.Where("comment_id = ?", itemID)
}

func removeVote(vote *models.HelpfulVote, itemType string, itemID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.HelpfulVote{}, vote.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Someone else removed it first, nothing to decrement
			return nil
		}
		return bumpHelpfulCount(tx, itemType, itemID, -1)
	})
}

func bumpHelpfulCount(tx *gorm.DB, itemType string, itemID uint, delta int) error {
	q := tx.Model(&models.Post{})
	if itemType == VoteTargetComment {
		q = tx.Model(&models.Comment{})
	}
	q = q.Where("id = ?", itemID)
	if delta < 0 {
		// helpful_count never goes negative
		q = q.Where("helpful_count > 0")
	}
	return q.UpdateColumn("helpful_count", gorm.Expr("helpful_count + ?", delta)).Error
}
