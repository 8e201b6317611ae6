package services

import (
	"encoding/csv"
	"io"
	"strconv"

	"astra/internal/db"
	"astra/internal/models"
)

// WritePortfolio serializes one account's posts as CSV: header row, then
// one row per post, newest first. Embedded delimiters are handled by
// the default field quoting.
func WritePortfolio(w io.Writer, accountID uint) error {
	var posts []models.Post
	if err := db.DB.Preload("Hub").
		Where("author_id = ?", accountID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return err
	}
	FillCommentCounts(posts)

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Type", "Title", "Hub", "Date", "Helpful Count", "Comments"}); err != nil {
		return err
	}
	for _, post := range posts {
		record := []string{
			post.TypeLabel(),
			post.Title,
			post.Hub.Name,
			post.CreatedAt.Format("2006-01-02"),
			strconv.Itoa(post.HelpfulCount),
			strconv.Itoa(post.CommentCount),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
