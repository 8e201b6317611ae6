package handlers

import (
	"errors"
	"net/http"

	"astra/internal/db"
	"astra/internal/middleware"
	"astra/internal/models"
	"astra/internal/services"
	"astra/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

// Toggle flips the caller's helpful vote on a post or comment and
// sends them back to the post page.
func (h *VoteHandler) Toggle(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)
	itemType := c.Param("type")
	itemID := utils.StringToUint(c.Param("id"))

	_, err := services.ToggleHelpfulVote(user.ID, itemType, itemID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownVoteTarget) || errors.Is(err, gorm.ErrRecordNotFound) {
			RenderError(c, http.StatusNotFound, "Nothing to vote on.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not record vote.")
		return
	}

	// Land back on the post the vote belongs to
	postID := itemID
	if itemType == services.VoteTargetComment {
		var comment models.Comment
		if err := db.DB.First(&comment, itemID).Error; err == nil {
			postID = comment.PostID
		}
	}
	c.Redirect(http.StatusFound, "/p/"+itoa(postID))
}
