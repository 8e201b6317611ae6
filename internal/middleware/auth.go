package middleware

import (
	"net/http"

	"astra/internal/db"
	"astra/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser retrieves the account from the session and sets it on the context
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		accountID := session.Get("account_id")

		if accountID != nil {
			var account models.Account
			result := db.DB.Preload("Profile").First(&account, accountID)
			if result.Error == nil {
				c.Set(CheckUserKey, &account)
			}
		}
		c.Next()
	}
}

// AuthRequired ensures an account is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffRequired gates staff-only pages. Runs after AuthRequired.
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get(CheckUserKey)
		if !exists || !user.(*models.Account).IsStaff {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentAccount returns the logged-in account from the context, or nil.
func CurrentAccount(c *gin.Context) *models.Account {
	if user, exists := c.Get(CheckUserKey); exists {
		return user.(*models.Account)
	}
	return nil
}
