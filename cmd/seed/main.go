package main

import (
	"log"

	"astra/internal/db"
	"astra/internal/models"
	"astra/internal/services"
	"astra/internal/utils"

	"github.com/joho/godotenv"
)

// Seeds a demo community on top of the startup catalogue: accounts with
// profiles, hub memberships, posts, comments, helpful votes and a few
// mentorship requests. Safe to rerun; it refuses to touch a database
// that already has accounts.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}
	db.Init()

	var count int64
	db.DB.Model(&models.Account{}).Count(&count)
	if count > 0 {
		log.Println("Accounts already exist, skipping demo seed")
		return
	}

	password, err := utils.HashPassword("demo1234")
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	type seedUser struct {
		username   string
		first      string
		last       string
		bio        string
		mentor     bool
		visibility string
		skills     []string
	}
	users := []seedUser{
		{"maya", "Maya", "Chen", "Data scientist who switched from teaching.", true, models.VisibilityPublic, []string{"Python", "Data Science", "Mentorship"}},
		{"rosa", "Rosa", "Alvarez", "Founder of a small design studio.", true, models.VisibilityPublic, []string{"Graphic Design", "Marketing"}},
		{"sam", "Sam", "Okafor", "First-gen professional finding my way in tech.", false, models.VisibilityPublic, []string{"JavaScript"}},
		{"quietbird", "Dana", "Silva", "Prefer to keep my name out of it.", false, models.VisibilityPseudonymous, []string{"Writing"}},
		{"admin", "Astra", "Admin", "", false, models.VisibilityPublic, nil},
	}

	accounts := make(map[string]*models.Account)
	for _, u := range users {
		account := &models.Account{
			Username:  u.username,
			Email:     u.username + "@example.com",
			Password:  password,
			FirstName: u.first,
			LastName:  u.last,
			IsStaff:   u.username == "admin",
		}
		if err := db.DB.Create(account).Error; err != nil {
			log.Fatalf("create account %s: %v", u.username, err)
		}

		profile := &models.Profile{
			AccountID:      account.ID,
			Bio:            u.bio,
			VisibilityMode: u.visibility,
			IsMentor:       u.mentor,
		}
		if err := db.DB.Create(profile).Error; err != nil {
			log.Fatalf("create profile %s: %v", u.username, err)
		}
		if len(u.skills) > 0 {
			var skills []models.Skill
			db.DB.Where("name IN ?", u.skills).Find(&skills)
			if err := db.DB.Model(profile).Association("Skills").Append(&skills); err != nil {
				log.Fatalf("attach skills for %s: %v", u.username, err)
			}
		}
		accounts[u.username] = account
	}

	var hubs []models.Hub
	db.DB.Find(&hubs)
	hubBySlug := make(map[string]*models.Hub)
	for i := range hubs {
		hubBySlug[hubs[i].Slug] = &hubs[i]
	}

	memberships := map[string][]string{
		"maya":      {"stem-careers", "health-wellness"},
		"rosa":      {"entrepreneurship", "creative-arts"},
		"sam":       {"stem-careers", "entrepreneurship"},
		"quietbird": {"creative-arts"},
	}
	for username, slugs := range memberships {
		for _, slug := range slugs {
			hub, ok := hubBySlug[slug]
			if !ok {
				continue
			}
			if err := db.DB.Model(hub).Association("Members").Append(accounts[username]); err != nil {
				log.Fatalf("join %s to %s: %v", username, slug, err)
			}
		}
	}

	type seedPost struct {
		author    string
		hub       string
		title     string
		content   string
		postType  string
		anonymous bool
	}
	posts := []seedPost{
		{"sam", "stem-careers", "How do I prepare for a career switch into data?", "I have two years of JavaScript experience and want to move toward data engineering. Where should I start?", models.PostTypeQuestion, false},
		{"maya", "stem-careers", "From classroom to notebooks: my path into data science", "Five years ago I was teaching high school math. Here is the exact sequence of steps that got me my first analyst role.", models.PostTypeStory, false},
		{"rosa", "entrepreneurship", "A playbook for your first ten clients", "1. Start with people who already know your work.\n2. Charge real money from day one.\n3. Write everything down.", models.PostTypePlaybook, false},
		{"maya", "health-wellness", "Free resources for managing burnout", "A curated list of books, apps and hotlines that helped me through a rough year.", models.PostTypeResource, false},
		{"quietbird", "creative-arts", "Sharing my first published essay", "After months of rejections it finally happened. Posting anonymously because the essay is personal.", models.PostTypeStory, true},
	}
	created := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		hub, ok := hubBySlug[p.hub]
		if !ok {
			continue
		}
		post := &models.Post{
			AuthorID:    accounts[p.author].ID,
			HubID:       hub.ID,
			Title:       p.title,
			Content:     p.content,
			PostType:    p.postType,
			IsAnonymous: p.anonymous,
		}
		if err := db.DB.Create(post).Error; err != nil {
			log.Fatalf("create post %q: %v", p.title, err)
		}
		created = append(created, post)
	}

	if len(created) > 0 {
		comment := &models.Comment{
			PostID:   created[0].ID,
			AuthorID: accounts["maya"].ID,
			Content:  "Start with SQL before anything else. Happy to chat, send me a mentorship request.",
		}
		if err := db.DB.Create(comment).Error; err != nil {
			log.Fatalf("create comment: %v", err)
		}

		if _, err := services.ToggleHelpfulVote(accounts["sam"].ID, services.VoteTargetComment, comment.ID); err != nil {
			log.Fatalf("vote comment: %v", err)
		}
		if _, err := services.ToggleHelpfulVote(accounts["rosa"].ID, services.VoteTargetPost, created[1].ID); err != nil {
			log.Fatalf("vote post: %v", err)
		}
	}

	req, err := services.CreateMentorshipRequest(accounts["sam"].ID, accounts["maya"].ID, "Breaking into data engineering", "Saw your story post, would love some guidance.")
	if err != nil {
		log.Fatalf("create mentorship request: %v", err)
	}
	if err := services.UpdateMentorshipStatus(req.ID, accounts["maya"].ID, models.RequestStatusAccepted); err != nil {
		log.Fatalf("accept mentorship request: %v", err)
	}
	if _, err := services.CreateMentorshipRequest(accounts["quietbird"].ID, accounts["rosa"].ID, "Pricing creative work", ""); err != nil {
		log.Fatalf("create mentorship request: %v", err)
	}

	log.Println("Demo data seeded. All demo accounts use password 'demo1234'.")
}
