package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"os"

	"astra/internal/db"
	"astra/internal/middleware"
	"astra/internal/models"
	"astra/internal/services"
	"astra/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// acceptedAnswerPolicy decides who may mark a comment as the accepted
// answer. "author" (default) allows the post author; "disabled" turns
// the operation off entirely.
func acceptedAnswerPolicy() string {
	policy := os.Getenv("ACCEPTED_ANSWER_POLICY")
	if policy == "" {
		policy = "author"
	}
	return policy
}

// Home shows the feed: posts from the hubs the user joined, falling
// back to everything when they joined none.
func (h *PostHandler) Home(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)

	var hubIDs []uint
	db.DB.Table("hub_members").Where("account_id = ?", user.ID).Pluck("hub_id", &hubIDs)

	query := db.DB.Preload("Author").Preload("Author.Profile").Preload("Hub")
	if len(hubIDs) > 0 {
		query = query.Where("hub_id IN ?", hubIDs)
	}

	var posts []models.Post
	query.Order("created_at DESC").Limit(20).Find(&posts)
	services.FillCommentCounts(posts)

	hubs, _ := services.HubStats("member_count DESC")
	if len(hubs) > 6 {
		hubs = hubs[:6]
	}

	Render(c, http.StatusOK, "home.html", gin.H{
		"Title":  "Home",
		"Posts":  posts,
		"Hubs":   hubs,
		"Active": "home",
	})
}

func (h *PostHandler) About(c *gin.Context) {
	Render(c, http.StatusOK, "about.html", gin.H{"Title": "About"})
}

// Detail post page with comments. Public.
func (h *PostHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("Author").Preload("Author.Profile").Preload("Hub").
		First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	var comments []models.Comment
	db.DB.Preload("Author").Preload("Author.Profile").
		Where("post_id = ?", post.ID).
		Order("is_accepted_answer DESC, helpful_count DESC, created_at DESC").
		Find(&comments)

	user := middleware.CurrentAccount(c)
	userVoted := false
	votedComments := make(map[uint]bool)
	if user != nil {
		userVoted = services.HasVoted(user.ID, services.VoteTargetPost, post.ID)

		var ids []uint
		db.DB.Model(&models.HelpfulVote{}).
			Where("account_id = ? AND comment_id IS NOT NULL", user.ID).
			Pluck("comment_id", &ids)
		for _, cid := range ids {
			votedComments[cid] = true
		}
	}

	type renderedComment struct {
		models.Comment
		ContentHTML template.HTML
		Voted       bool
		Display     string
	}
	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		display := com.Author.DisplayName()
		rendered[i] = renderedComment{
			Comment:     com,
			ContentHTML: utils.RenderMarkdown(com.Content),
			Voted:       votedComments[com.ID],
			Display:     display,
		}
	}

	canAccept := acceptedAnswerPolicy() == "author" && user != nil && user.ID == post.AuthorID

	Render(c, http.StatusOK, "post/detail.html", gin.H{
		"Title":       post.Title,
		"Post":        &post,
		"PostContent": utils.RenderMarkdown(post.Content),
		"Comments":    rendered,
		"UserVoted":   userVoted,
		"CanAccept":   canAccept,
	})
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	var hubs []models.Hub
	db.DB.Order("name ASC").Find(&hubs)

	Render(c, http.StatusOK, "post/form.html", gin.H{
		"Title":     "Create Post",
		"Hubs":      hubs,
		"PostTypes": models.PostTypeChoices,
	})
}

func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)

	title := c.PostForm("title")
	content := c.PostForm("content")
	postType := c.PostForm("post_type")
	videoURL := c.PostForm("video_url")
	hubID := utils.StringToUint(c.PostForm("hub_id"))
	isAnonymous := c.PostForm("is_anonymous") == "on"

	if title == "" || content == "" || hubID == 0 {
		var hubs []models.Hub
		db.DB.Order("name ASC").Find(&hubs)
		Render(c, http.StatusBadRequest, "post/form.html", gin.H{
			"Title":     "Create Post",
			"Error":     "Title, content and hub are required.",
			"Hubs":      hubs,
			"PostTypes": models.PostTypeChoices,
		})
		return
	}
	if postType == "" {
		postType = models.PostTypeQuestion
	}

	post := models.Post{
		AuthorID:    user.ID,
		HubID:       hubID,
		Title:       title,
		Content:     content,
		PostType:    postType,
		VideoURL:    videoURL,
		IsAnonymous: isAnonymous,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		var hubs []models.Hub
		db.DB.Order("name ASC").Find(&hubs)
		Render(c, http.StatusInternalServerError, "post/form.html", gin.H{
			"Title":     "Create Post",
			"Error":     "Could not create post.",
			"Hubs":      hubs,
			"PostTypes": models.PostTypeChoices,
		})
		return
	}

	c.Redirect(http.StatusFound, "/p/"+itoa(post.ID))
}

func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)

	post, ok := h.ownPost(c, user)
	if !ok {
		return
	}

	var hubs []models.Hub
	db.DB.Order("name ASC").Find(&hubs)

	Render(c, http.StatusOK, "post/form.html", gin.H{
		"Title":     "Edit Post",
		"Post":      post,
		"Hubs":      hubs,
		"PostTypes": models.PostTypeChoices,
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)

	post, ok := h.ownPost(c, user)
	if !ok {
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")
	if title == "" || content == "" {
		var hubs []models.Hub
		db.DB.Order("name ASC").Find(&hubs)
		Render(c, http.StatusBadRequest, "post/form.html", gin.H{
			"Title":     "Edit Post",
			"Error":     "Title and content are required.",
			"Post":      post,
			"Hubs":      hubs,
			"PostTypes": models.PostTypeChoices,
		})
		return
	}

	post.Title = title
	post.Content = content
	if postType := c.PostForm("post_type"); postType != "" {
		post.PostType = postType
	}
	if hubID := utils.StringToUint(c.PostForm("hub_id")); hubID != 0 {
		post.HubID = hubID
	}
	post.VideoURL = c.PostForm("video_url")
	post.IsAnonymous = c.PostForm("is_anonymous") == "on"

	if err := db.DB.Save(post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save post.")
		return
	}

	c.Redirect(http.StatusFound, "/p/"+itoa(post.ID))
}

func (h *PostHandler) ShowDelete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)

	post, ok := h.ownPost(c, user)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "post/confirm_delete.html", gin.H{
		"Title": "Delete Post",
		"Post":  post,
	})
}

// Delete removes the post permanently. Comments and helpful votes go
// with it via the FK cascades.
func (h *PostHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)

	post, ok := h.ownPost(c, user)
	if !ok {
		return
	}

	if err := db.DB.Delete(post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete post.")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	content := c.PostForm("content")
	if content == "" {
		c.Redirect(http.StatusFound, "/p/"+itoa(post.ID))
		return
	}

	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: user.ID,
		Content:  content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not add comment.")
		return
	}

	c.Redirect(http.StatusFound, "/p/"+itoa(post.ID))
}

// AcceptAnswer toggles a comment's accepted-answer flag, keeping at
// most one accepted answer per post.
func (h *PostHandler) AcceptAnswer(c *gin.Context) {
	if acceptedAnswerPolicy() == "disabled" {
		RenderError(c, http.StatusForbidden, "Accepting answers is disabled.")
		return
	}

	user := c.MustGet(middleware.CheckUserKey).(*models.Account)
	postID := utils.StringToUint(c.Param("id"))
	commentID := utils.StringToUint(c.Param("cid"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return
	}
	if post.AuthorID != user.ID {
		RenderError(c, http.StatusForbidden, "Only the post author can accept an answer.")
		return
	}

	if _, err := services.ToggleAcceptedAnswer(post.ID, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RenderError(c, http.StatusNotFound, "Comment not found.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not update answer.")
		return
	}

	c.Redirect(http.StatusFound, "/p/"+itoa(post.ID))
}

// ownPost loads the post from :id and verifies the acting account is
// its author. Renders the error page and returns ok=false otherwise.
func (h *PostHandler) ownPost(c *gin.Context, user *models.Account) (*models.Post, bool) {
	id := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found.")
		return nil, false
	}
	if post.AuthorID != user.ID {
		RenderError(c, http.StatusForbidden, "You can only change your own posts.")
		return nil, false
	}
	return &post, true
}
