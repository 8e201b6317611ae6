package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"astra/internal/db"
	"astra/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiRouter() *gin.Engine {
	r := gin.New()
	api := NewAPIHandler()
	r.GET("/api/hubs", api.Hubs)
	r.GET("/api/posts/:slug", api.HubPosts)
	r.GET("/api/stats/platform", api.PlatformStats)
	r.GET("/api/stats/growth", api.GrowthStats)
	r.GET("/api/stats/skills", api.SkillsDistribution)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
	}
	return w
}

func seedAccount(t *testing.T, username string) *models.Account {
	t.Helper()
	account := &models.Account{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.DB.Create(account).Error)
	require.NoError(t, db.DB.Create(&models.Profile{AccountID: account.ID}).Error)
	return account
}

func TestAPIHubs(t *testing.T) {
	resetTables(t)

	alice := seedAccount(t, "alice")
	hub := models.Hub{Name: "API Hub", Description: "testing"}
	require.NoError(t, db.DB.Create(&hub).Error)
	require.NoError(t, db.DB.Model(&hub).Association("Members").Append(alice))

	var body struct {
		Hubs []struct {
			Name        string `json:"name"`
			Slug        string `json:"slug"`
			MemberCount int64  `json:"member_count"`
			PostCount   int64  `json:"post_count"`
		} `json:"hubs"`
		Total int `json:"total"`
	}
	w := getJSON(t, apiRouter(), "/api/hubs", &body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Hubs, 1)
	assert.Equal(t, "API Hub", body.Hubs[0].Name)
	assert.Equal(t, "api-hub", body.Hubs[0].Slug)
	assert.EqualValues(t, 1, body.Hubs[0].MemberCount)
}

func TestAPIHubPosts(t *testing.T) {
	resetTables(t)

	alice := seedAccount(t, "alice")
	hub := models.Hub{Name: "Post Hub"}
	require.NoError(t, db.DB.Create(&hub).Error)

	post := models.Post{AuthorID: alice.ID, HubID: hub.ID, Title: "Visible", Content: "the full body", PostType: models.PostTypeQuestion}
	require.NoError(t, db.DB.Create(&post).Error)
	anon := models.Post{AuthorID: alice.ID, HubID: hub.ID, Title: "Hidden author", Content: "c", PostType: models.PostTypeStory, IsAnonymous: true}
	require.NoError(t, db.DB.Create(&anon).Error)

	var body struct {
		Hub   string `json:"hub"`
		Total int    `json:"total"`
		Posts []map[string]interface{} `json:"posts"`
	}
	w := getJSON(t, apiRouter(), "/api/posts/post-hub", &body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Post Hub", body.Hub)
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Posts, 2)

	// Newest first: the anonymous one leads and exposes no real name
	assert.Equal(t, "Anonymous", body.Posts[0]["author_username"])
	assert.NotContains(t, body.Posts[0], "author_first_name")
	assert.Equal(t, "alice", body.Posts[1]["author_username"])
	assert.Equal(t, "the full body", body.Posts[1]["content"])
}

func TestAPIHubPostsUnknownSlug(t *testing.T) {
	resetTables(t)

	var body map[string]string
	w := getJSON(t, apiRouter(), "/api/posts/no-such-hub", &body)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Hub not found", body["error"])
}

func TestAPIPlatformStats(t *testing.T) {
	resetTables(t)

	seedAccount(t, "alice")
	seedAccount(t, "bob")

	var body struct {
		TotalUsers   int64                    `json:"total_users"`
		TotalPosts   int64                    `json:"total_posts"`
		HubBreakdown []map[string]interface{} `json:"hub_breakdown"`
		PostTypes    []map[string]interface{} `json:"post_types"`
	}
	w := getJSON(t, apiRouter(), "/api/stats/platform", &body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body.TotalUsers)
	assert.EqualValues(t, 0, body.TotalPosts)
	assert.NotNil(t, body.HubBreakdown)
}

func TestAPIGrowthStats(t *testing.T) {
	resetTables(t)

	seedAccount(t, "alice")

	var body struct {
		Users []struct {
			Date  string `json:"date"`
			Count int64  `json:"count"`
		} `json:"users"`
		Posts []struct {
			Date  string `json:"date"`
			Count int64  `json:"count"`
		} `json:"posts"`
	}
	w := getJSON(t, apiRouter(), "/api/stats/growth", &body)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Users, 1)
	assert.EqualValues(t, 1, body.Users[0].Count)
	assert.Empty(t, body.Posts)
}

func TestAPISkillsDistribution(t *testing.T) {
	resetTables(t)

	alice := seedAccount(t, "alice")
	skill := models.Skill{Name: "Python"}
	require.NoError(t, db.DB.Create(&skill).Error)

	var profile models.Profile
	require.NoError(t, db.DB.Where("account_id = ?", alice.ID).First(&profile).Error)
	require.NoError(t, db.DB.Model(&profile).Association("Skills").Append(&skill))

	var body struct {
		Skills []struct {
			Skill string `json:"skill"`
			Count int64  `json:"count"`
		} `json:"skills"`
	}
	w := getJSON(t, apiRouter(), "/api/stats/skills", &body)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Skills, 1)
	assert.Equal(t, "Python", body.Skills[0].Skill)
	assert.EqualValues(t, 1, body.Skills[0].Count)
}
