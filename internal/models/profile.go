package models

import (
	"fmt"
	"time"
)

// Visibility modes controlling how a profile's identity is rendered to others.
const (
	VisibilityPublic       = "public"
	VisibilityPseudonymous = "pseudonymous"
	VisibilityTrusted      = "trusted"
)

// Profile 1:1 extension of Account with privacy and mentorship settings
type Profile struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AccountID       uint      `gorm:"uniqueIndex;not null" json:"account_id"`
	Account         Account   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"account"`
	Bio             string    `gorm:"size:500" json:"bio"`
	Location        string    `gorm:"size:100" json:"location"`
	VisibilityMode  string    `gorm:"size:20;default:'public';not null" json:"visibility_mode"`
	IsMentor        bool      `gorm:"default:false" json:"is_mentor"`
	ReputationScore int       `gorm:"default:0" json:"reputation_score"` // set independently, never derived
	Skills          []Skill   `gorm:"many2many:profile_skills;" json:"skills"`
	Badges          []Badge   `gorm:"many2many:profile_badges;" json:"badges"`
	CreatedAt       time.Time `json:"created_at"`
}

// DisplayName resolves the rendered identity per visibility mode.
// Pseudonymous profiles get an opaque per-account label; everyone else
// shows their full name with the username as fallback.
// Requires Account to be preloaded.
func (p *Profile) DisplayName() string {
	if p.VisibilityMode == VisibilityPseudonymous {
		return fmt.Sprintf("User%d", p.AccountID)
	}
	if name := p.Account.FullName(); name != "" {
		return name
	}
	return p.Account.Username
}
