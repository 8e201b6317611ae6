package services

import (
	"fmt"
	"testing"

	"astra/internal/db"
	"astra/internal/models"
)

func createAccount(t *testing.T, username string) *models.Account {
	t.Helper()
	account := &models.Account{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "not-a-real-hash",
	}
	if err := db.DB.Create(account).Error; err != nil {
		t.Fatalf("create account %s: %v", username, err)
	}
	profile := &models.Profile{AccountID: account.ID}
	if err := db.DB.Create(profile).Error; err != nil {
		t.Fatalf("create profile for %s: %v", username, err)
	}
	account.Profile = profile
	return account
}

func createMentor(t *testing.T, username string) *models.Account {
	t.Helper()
	account := createAccount(t, username)
	if err := db.DB.Model(account.Profile).Update("is_mentor", true).Error; err != nil {
		t.Fatalf("mark mentor: %v", err)
	}
	account.Profile.IsMentor = true
	return account
}

func createHub(t *testing.T, name string) *models.Hub {
	t.Helper()
	hub := &models.Hub{Name: name, Description: name}
	if err := db.DB.Create(hub).Error; err != nil {
		t.Fatalf("create hub %s: %v", name, err)
	}
	return hub
}

func createPost(t *testing.T, author *models.Account, hub *models.Hub, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		AuthorID: author.ID,
		HubID:    hub.ID,
		Title:    title,
		Content:  "some content",
		PostType: models.PostTypeQuestion,
	}
	if err := db.DB.Create(post).Error; err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return post
}

func createComment(t *testing.T, author *models.Account, post *models.Post, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Content: content}
	if err := db.DB.Create(comment).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
	return comment
}
