package router

import (
	"astra/internal/handlers"
	"astra/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	hubHandler := handlers.NewHubHandler()
	voteHandler := handlers.NewVoteHandler()
	profileHandler := handlers.NewProfileHandler()
	mentorshipHandler := handlers.NewMentorshipHandler()
	apiHandler := handlers.NewAPIHandler()
	analyticsHandler := handlers.NewAnalyticsHandler()

	// Public routes
	r.GET("/p/:id", postHandler.Detail)          // post detail page
	r.GET("/u/:username", profileHandler.View)   // member profile
	r.GET("/mentors", mentorshipHandler.Mentors) // mentor directory

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/", postHandler.Home) // personal feed
		authorized.GET("/about", postHandler.About)

		authorized.GET("/hubs", hubHandler.List)      // all hubs
		authorized.GET("/h/:slug", hubHandler.Detail) // posts in a hub

		authorized.GET("/submit", postHandler.ShowCreate)
		authorized.POST("/submit", postHandler.Create)
		authorized.GET("/p/:id/edit", postHandler.ShowEdit)
		authorized.POST("/p/:id/edit", postHandler.Update)
		authorized.GET("/p/:id/delete", postHandler.ShowDelete)
		authorized.POST("/p/:id/delete", postHandler.Delete)

		authorized.POST("/p/:id/comment", postHandler.CreateComment)
		authorized.POST("/p/:id/accept/:cid", postHandler.AcceptAnswer)
		authorized.POST("/vote/:type/:id", voteHandler.Toggle)

		authorized.POST("/h/:slug/join", hubHandler.ToggleMembership)

		authorized.GET("/profile/edit", profileHandler.ShowEdit)
		authorized.POST("/profile/edit", profileHandler.Update)
		authorized.GET("/u/:username/export", profileHandler.Export)

		authorized.GET("/mentorship", mentorshipHandler.Dashboard)
		authorized.GET("/mentors/:id/request", mentorshipHandler.ShowRequest)
		authorized.POST("/mentors/:id/request", mentorshipHandler.Create)
		authorized.POST("/mentorship/:id/status", mentorshipHandler.UpdateStatus)
		authorized.POST("/mentorship/:id/complete", mentorshipHandler.Complete)
	}

	// Staff routes
	staff := r.Group("/analytics")
	staff.Use(middleware.AuthRequired(), middleware.StaffRequired())
	{
		staff.GET("", analyticsHandler.Dashboard)
	}

	// Read-only JSON API
	api := r.Group("/api")
	api.Use(cors.Default())
	{
		api.GET("/hubs", apiHandler.Hubs)
		api.GET("/posts/:slug", apiHandler.HubPosts)
		api.GET("/stats/platform", apiHandler.PlatformStats)
		api.GET("/stats/growth", apiHandler.GrowthStats)
		api.GET("/stats/skills", apiHandler.SkillsDistribution)
	}
}
