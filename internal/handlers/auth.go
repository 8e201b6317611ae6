package handlers

import (
	"net/http"

	"astra/internal/db"
	"astra/internal/models"
	"astra/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", gin.H{"Title": "Sign Up"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	firstName := c.PostForm("first_name")
	lastName := c.PostForm("last_name")
	email := c.PostForm("email")
	password := c.PostForm("password1")
	confirm := c.PostForm("password2")
	bio := c.PostForm("bio")

	form := gin.H{
		"Title":     "Sign Up",
		"Username":  username,
		"FirstName": firstName,
		"LastName":  lastName,
		"Email":     email,
		"Bio":       bio,
	}

	if username == "" || email == "" {
		form["Error"] = "Username and email are required."
		Render(c, http.StatusBadRequest, "auth/register.html", form)
		return
	}
	if len(password) < 8 {
		form["Error"] = "Password must be at least 8 characters."
		Render(c, http.StatusBadRequest, "auth/register.html", form)
		return
	}
	if password != confirm {
		form["Error"] = "Passwords do not match."
		Render(c, http.StatusBadRequest, "auth/register.html", form)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		form["Error"] = "Something went wrong, please try again."
		Render(c, http.StatusInternalServerError, "auth/register.html", form)
		return
	}

	account := models.Account{
		Username:  username,
		Email:     email,
		Password:  hash,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := db.DB.Create(&account).Error; err != nil {
		form["Error"] = "Username or email is already taken."
		Render(c, http.StatusConflict, "auth/register.html", form)
		return
	}

	// Every account gets a profile
	profile := models.Profile{
		AccountID: account.ID,
		Bio:       bio,
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		form["Error"] = "Something went wrong, please try again."
		Render(c, http.StatusInternalServerError, "auth/register.html", form)
		return
	}

	session := sessions.Default(c)
	session.Set("account_id", account.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Log In"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var account models.Account
	if err := db.DB.Where("username = ?", username).First(&account).Error; err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Title": "Log In", "Error": "Invalid username or password."})
		return
	}
	if !utils.CheckPasswordHash(password, account.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Title": "Log In", "Error": "Invalid username or password."})
		return
	}

	session := sessions.Default(c)
	session.Set("account_id", account.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}
