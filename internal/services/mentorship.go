package services

import (
	"errors"

	"astra/internal/db"
	"astra/internal/models"
)

var (
	ErrNotMentor         = errors.New("account is not a mentor")
	ErrNotRequestMentor  = errors.New("only the request's mentor may do this")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// CreateMentorshipRequest opens a pending request from mentee to mentor.
// The mentor flag is checked here at the boundary; the ledger itself
// does not enforce it.
func CreateMentorshipRequest(menteeID, mentorID uint, topic, message string) (*models.MentorshipRequest, error) {
	var profile models.Profile
	if err := db.DB.Where("account_id = ?", mentorID).First(&profile).Error; err != nil {
		return nil, err
	}
	if !profile.IsMentor {
		return nil, ErrNotMentor
	}

	req := models.MentorshipRequest{
		MenteeID: menteeID,
		MentorID: mentorID,
		Topic:    topic,
		Message:  message,
		Status:   models.RequestStatusPending,
	}
	if err := db.DB.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateMentorshipStatus transitions a pending request to accepted or
// declined. Only the designated mentor may transition it; anything else
// leaves the request untouched.
func UpdateMentorshipStatus(requestID, actorID uint, status string) error {
	if status != models.RequestStatusAccepted && status != models.RequestStatusDeclined {
		return ErrInvalidTransition
	}

	var req models.MentorshipRequest
	if err := db.DB.First(&req, requestID).Error; err != nil {
		return err
	}
	if req.MentorID != actorID {
		return ErrNotRequestMentor
	}

	// Status guard in the WHERE clause so concurrent transitions can't
	// both apply.
	res := db.DB.Model(&models.MentorshipRequest{}).
		Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// CompleteMentorship transitions an accepted request to completed.
// Reserved to the mentor; declined and completed stay terminal.
func CompleteMentorship(requestID, actorID uint) error {
	var req models.MentorshipRequest
	if err := db.DB.First(&req, requestID).Error; err != nil {
		return err
	}
	if req.MentorID != actorID {
		return ErrNotRequestMentor
	}

	res := db.DB.Model(&models.MentorshipRequest{}).
		Where("id = ? AND status = ?", requestID, models.RequestStatusAccepted).
		Update("status", models.RequestStatusCompleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}
