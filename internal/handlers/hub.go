package handlers

import (
	"net/http"

	"astra/internal/db"
	"astra/internal/middleware"
	"astra/internal/models"
	"astra/internal/services"

	"github.com/gin-gonic/gin"
)

type HubHandler struct{}

func NewHubHandler() *HubHandler {
	return &HubHandler{}
}

// List shows all hubs ordered by member count
func (h *HubHandler) List(c *gin.Context) {
	hubs, err := services.HubStats("member_count DESC")
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load hubs.")
		return
	}

	Render(c, http.StatusOK, "hub/list.html", gin.H{
		"Title":  "Hubs",
		"Hubs":   hubs,
		"Active": "hubs",
	})
}

// Detail shows one hub with its posts
func (h *HubHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")

	var hub models.Hub
	if err := db.DB.Where("slug = ?", slug).First(&hub).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Hub not found.")
		return
	}

	var posts []models.Post
	db.DB.Preload("Author").Preload("Author.Profile").Preload("Hub").
		Where("hub_id = ?", hub.ID).
		Order("created_at DESC").
		Find(&posts)
	services.FillCommentCounts(posts)

	user := middleware.CurrentAccount(c)
	isMember := false
	if user != nil {
		var count int64
		db.DB.Table("hub_members").
			Where("hub_id = ? AND account_id = ?", hub.ID, user.ID).
			Count(&count)
		isMember = count > 0
	}

	Render(c, http.StatusOK, "hub/detail.html", gin.H{
		"Title":    hub.Name,
		"Hub":      hub,
		"Posts":    posts,
		"IsMember": isMember,
	})
}

// ToggleMembership joins the hub, or leaves it when already a member
func (h *HubHandler) ToggleMembership(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)
	slug := c.Param("slug")

	var hub models.Hub
	if err := db.DB.Where("slug = ?", slug).First(&hub).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Hub not found.")
		return
	}

	var count int64
	db.DB.Table("hub_members").
		Where("hub_id = ? AND account_id = ?", hub.ID, user.ID).
		Count(&count)

	if count > 0 {
		if err := db.DB.Model(&hub).Association("Members").Delete(user); err != nil {
			RenderError(c, http.StatusInternalServerError, "Could not leave hub.")
			return
		}
	} else {
		if err := db.DB.Model(&hub).Association("Members").Append(user); err != nil {
			RenderError(c, http.StatusInternalServerError, "Could not join hub.")
			return
		}
	}

	c.Redirect(http.StatusFound, "/h/"+hub.Slug)
}
