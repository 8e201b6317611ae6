package models

import (
	"fmt"
	"time"
)

type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Hash
	FirstName string    `gorm:"size:30" json:"first_name"`
	LastName  string    `gorm:"size:30" json:"last_name"`
	IsStaff   bool      `gorm:"default:false" json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile *Profile `json:"profile,omitempty"`
	// No DeletedAt for hard delete
}

// DisplayName resolves the rendered identity per the profile's
// visibility mode: an opaque per-account label for pseudonymous
// profiles, otherwise the full name with the username as fallback.
// Works with or without Profile loaded.
func (a *Account) DisplayName() string {
	if a.Profile != nil && a.Profile.VisibilityMode == VisibilityPseudonymous {
		return fmt.Sprintf("User%d", a.ID)
	}
	if name := a.FullName(); name != "" {
		return name
	}
	return a.Username
}

// FullName returns "First Last", or an empty string when both are unset.
func (a *Account) FullName() string {
	switch {
	case a.FirstName != "" && a.LastName != "":
		return a.FirstName + " " + a.LastName
	case a.FirstName != "":
		return a.FirstName
	default:
		return a.LastName
	}
}
