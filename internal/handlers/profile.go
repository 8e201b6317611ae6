package handlers

import (
	"net/http"

	"astra/internal/db"
	"astra/internal/middleware"
	"astra/internal/models"
	"astra/internal/services"
	"astra/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct{}

func formIDs(raw []string) []uint {
	ids := make([]uint, 0, len(raw))
	for _, r := range raw {
		if id := utils.StringToUint(r); id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// View shows a member's public profile card and their recent posts.
func (h *ProfileHandler) View(c *gin.Context) {
	username := c.Param("username")

	var account models.Account
	if err := db.DB.Preload("Profile").Preload("Profile.Skills").Preload("Profile.Badges").
		Where("username = ?", username).First(&account).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Member not found.")
		return
	}

	var posts []models.Post
	db.DB.Preload("Hub").
		Where("author_id = ? AND is_anonymous = ?", account.ID, false).
		Order("created_at DESC").Limit(10).Find(&posts)
	services.FillCommentCounts(posts)

	viewer := middleware.CurrentAccount(c)
	isOwner := viewer != nil && viewer.ID == account.ID
	canExport := isOwner || (viewer != nil && viewer.IsStaff)

	Render(c, http.StatusOK, "profile/view.html", gin.H{
		"Title":     account.Username,
		"Account":   &account,
		"Posts":     posts,
		"IsOwner":   isOwner,
		"CanExport": canExport,
	})
}

func (h *ProfileHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)

	var profile models.Profile
	if err := db.DB.Preload("Skills").Preload("Badges").
		Where("account_id = ?", user.ID).First(&profile).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Profile not found.")
		return
	}

	var skills []models.Skill
	db.DB.Order("category ASC, name ASC").Find(&skills)
	var badges []models.Badge
	db.DB.Order("name ASC").Find(&badges)

	selectedSkills := make(map[uint]bool)
	for _, s := range profile.Skills {
		selectedSkills[s.ID] = true
	}
	selectedBadges := make(map[uint]bool)
	for _, b := range profile.Badges {
		selectedBadges[b.ID] = true
	}

	Render(c, http.StatusOK, "profile/edit.html", gin.H{
		"Title":          "Edit Profile",
		"Profile":        &profile,
		"AllSkills":      skills,
		"AllBadges":      badges,
		"SelectedSkills": selectedSkills,
		"SelectedBadges": selectedBadges,
	})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)

	var profile models.Profile
	if err := db.DB.Where("account_id = ?", user.ID).First(&profile).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Profile not found.")
		return
	}

	profile.Bio = c.PostForm("bio")
	profile.Location = c.PostForm("location")
	profile.IsMentor = c.PostForm("is_mentor") == "on"

	switch mode := c.PostForm("visibility_mode"); mode {
	case models.VisibilityPublic, models.VisibilityPseudonymous, models.VisibilityTrusted:
		profile.VisibilityMode = mode
	}

	if err := db.DB.Save(&profile).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save profile.")
		return
	}

	var skills []models.Skill
	if ids := formIDs(c.PostFormArray("skills")); len(ids) > 0 {
		db.DB.Where("id IN ?", ids).Find(&skills)
	}
	if err := db.DB.Model(&profile).Association("Skills").Replace(skills); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save skills.")
		return
	}

	var badges []models.Badge
	if ids := formIDs(c.PostFormArray("badges")); len(ids) > 0 {
		db.DB.Where("id IN ?", ids).Find(&badges)
	}
	if err := db.DB.Model(&profile).Association("Badges").Replace(badges); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save badges.")
		return
	}

	c.Redirect(http.StatusFound, "/u/"+user.Username)
}

// Export streams the member's posts as a CSV portfolio. Owner or
// staff only.
func (h *ProfileHandler) Export(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.Account)
	username := c.Param("username")

	var account models.Account
	if err := db.DB.Where("username = ?", username).First(&account).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Member not found.")
		return
	}
	if account.ID != user.ID && !user.IsStaff {
		RenderError(c, http.StatusForbidden, "You can only export your own portfolio.")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+account.Username+`_portfolio.csv"`)
	if err := services.WritePortfolio(c.Writer, account.ID); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not export portfolio.")
		return
	}
}
