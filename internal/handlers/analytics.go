package handlers

import (
	"net/http"

	"astra/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

// Dashboard renders the staff-only analytics page.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := services.GetPlatformStats()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load statistics.")
		return
	}

	skills, _ := services.SkillsDistribution()
	mentorships, _ := services.GetMentorshipBreakdown()

	Render(c, http.StatusOK, "analytics/dashboard.html", gin.H{
		"Title":       "Analytics",
		"Stats":       stats,
		"Skills":      skills,
		"Mentorships": mentorships,
	})
}
