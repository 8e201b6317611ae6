package models

import (
	"time"
)

// Mentorship request lifecycle states
const (
	RequestStatusPending   = "pending"
	RequestStatusAccepted  = "accepted"
	RequestStatusDeclined  = "declined"
	RequestStatusCompleted = "completed"
)

// MentorshipRequest directed request from a mentee to a mentor.
// pending → accepted/declined by the mentor; accepted → completed by the
// mentor; declined and completed are terminal.
type MentorshipRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MenteeID  uint      `gorm:"not null;index" json:"mentee_id"`
	Mentee    Account   `gorm:"foreignKey:MenteeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"mentee"`
	MentorID  uint      `gorm:"not null;index" json:"mentor_id"`
	Mentor    Account   `gorm:"foreignKey:MentorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"mentor"`
	Topic     string    `gorm:"size:200;not null" json:"topic"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;default:'pending';not null;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
