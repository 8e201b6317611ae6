package handlers

import (
	"net/http"

	"astra/internal/db"
	"astra/internal/models"
	"astra/internal/services"

	"github.com/gin-gonic/gin"
)

// APIHandler serves the read-only JSON endpoints under /api.
type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// Hubs returns every hub with its member and post counts, busiest
// first.
func (h *APIHandler) Hubs(c *gin.Context) {
	hubs, err := services.HubStats("member_count DESC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load hubs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hubs": hubs, "total": len(hubs)})
}

// HubPosts returns a hub's posts, newest first. Anonymous posts keep
// their author hidden.
func (h *APIHandler) HubPosts(c *gin.Context) {
	slug := c.Param("slug")

	var hub models.Hub
	if err := db.DB.Where("slug = ?", slug).First(&hub).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hub not found"})
		return
	}

	var posts []models.Post
	db.DB.Preload("Author").Preload("Author.Profile").
		Where("hub_id = ?", hub.ID).
		Order("created_at DESC").Find(&posts)
	services.FillCommentCounts(posts)

	out := make([]gin.H, len(posts))
	for i, p := range posts {
		item := gin.H{
			"id":            p.ID,
			"title":         p.Title,
			"content":       p.Content,
			"post_type":     p.PostType,
			"helpful_count": p.HelpfulCount,
			"comment_count": p.CommentCount,
			"created_at":    p.CreatedAt,
		}
		if p.IsAnonymous {
			item["author_username"] = "Anonymous"
		} else {
			item["author_username"] = p.Author.Username
			item["author_first_name"] = p.Author.FirstName
			item["author_last_name"] = p.Author.LastName
		}
		out[i] = item
	}

	c.JSON(http.StatusOK, gin.H{"hub": hub.Name, "posts": out, "total": len(out)})
}

func (h *APIHandler) PlatformStats(c *gin.Context) {
	stats, err := services.GetPlatformStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *APIHandler) GrowthStats(c *gin.Context) {
	users, posts, err := services.GrowthStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "posts": posts})
}

func (h *APIHandler) SkillsDistribution(c *gin.Context) {
	skills, err := services.SkillsDistribution()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}
