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

type MentorshipHandler struct{}

func NewMentorshipHandler() *MentorshipHandler {
	return &MentorshipHandler{}
}

// Mentors lists everyone who opted in as a mentor. Public.
func (h *MentorshipHandler) Mentors(c *gin.Context) {
	var mentors []models.Profile
	db.DB.Preload("Account").Preload("Skills").
		Where("is_mentor = ?", true).
		Order("reputation_score DESC").Find(&mentors)

	Render(c, http.StatusOK, "mentorship/list.html", gin.H{
		"Title":   "Mentors",
		"Mentors": mentors,
		"Active":  "mentors",
	})
}

func (h *MentorshipHandler) ShowRequest(c *gin.Context) {
	mentorID := utils.StringToUint(c.Param("id"))

	var mentor models.Profile
	if err := db.DB.Preload("Account").
		Where("account_id = ? AND is_mentor = ?", mentorID, true).
		First(&mentor).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Mentor not found.")
		return
	}

	Render(c, http.StatusOK, "mentorship/request.html", gin.H{
		"Title":  "Request Mentorship",
		"Mentor": &mentor,
	})
}

func (h *MentorshipHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)
	mentorID := utils.StringToUint(c.Param("id"))

	topic := c.PostForm("topic")
	message := c.PostForm("message")
	if topic == "" {
		RenderError(c, http.StatusBadRequest, "A topic is required.")
		return
	}
	if mentorID == user.ID {
		RenderError(c, http.StatusBadRequest, "You cannot request mentorship from yourself.")
		return
	}

	_, err := services.CreateMentorshipRequest(user.ID, mentorID, topic, message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotMentor):
			RenderError(c, http.StatusBadRequest, "That member is not accepting mentees.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			RenderError(c, http.StatusNotFound, "Mentor not found.")
		default:
			RenderError(c, http.StatusInternalServerError, "Could not send request.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/mentorship")
}

// Dashboard shows requests the user sent and, when they mentor,
// requests they received.
func (h *MentorshipHandler) Dashboard(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)

	var sent []models.MentorshipRequest
	db.DB.Preload("Mentor").Where("mentee_id = ?", user.ID).
		Order("created_at DESC").Find(&sent)

	var received []models.MentorshipRequest
	db.DB.Preload("Mentee").Where("mentor_id = ?", user.ID).
		Order("created_at DESC").Find(&received)

	Render(c, http.StatusOK, "mentorship/dashboard.html", gin.H{
		"Title":    "Mentorship",
		"Sent":     sent,
		"Received": received,
		"Active":   "mentorship",
	})
}

// UpdateStatus lets the mentor accept or decline a pending request.
func (h *MentorshipHandler) UpdateStatus(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)
	requestID := utils.StringToUint(c.Param("id"))
	status := c.PostForm("status")

	err := services.UpdateMentorshipStatus(requestID, user.ID, status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotRequestMentor):
			RenderError(c, http.StatusForbidden, "Only the mentor can answer this request.")
		case errors.Is(err, services.ErrInvalidTransition):
			RenderError(c, http.StatusBadRequest, "This request was already answered.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			RenderError(c, http.StatusNotFound, "Request not found.")
		default:
			RenderError(c, http.StatusInternalServerError, "Could not update request.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/mentorship")
}

// Complete closes out an accepted mentorship. Mentor only.
func (h *MentorshipHandler) Complete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)
	requestID := utils.StringToUint(c.Param("id"))

	err := services.CompleteMentorship(requestID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotRequestMentor):
			RenderError(c, http.StatusForbidden, "Only the mentor can complete a mentorship.")
		case errors.Is(err, services.ErrInvalidTransition):
			RenderError(c, http.StatusBadRequest, "Only accepted mentorships can be completed.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			RenderError(c, http.StatusNotFound, "Request not found.")
		default:
			RenderError(c, http.StatusInternalServerError, "Could not update request.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/mentorship")
}
