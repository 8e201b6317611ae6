package db

import (
	"log"
	"os"

	"astra/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=astra port=5432 sslmode=disable TimeZone=UTC"
	}

	var err error
	// TranslateError so unique violations surface as gorm.ErrDuplicatedKey
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedCatalogue()
}

// Migrate runs auto-migration for all entities.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.Account{},
		&models.Profile{},
		&models.Skill{},
		&models.Badge{},
		&models.Hub{},
		&models.Post{},
		&models.Comment{},
		&models.HelpfulVote{},
		&models.MentorshipRequest{},
	)
}

// seedCatalogue creates the initial skills, badges and hubs on first boot.
// Demo accounts and content come from the seed utility, not from here.
func seedCatalogue() {
	var count int64
	DB.Model(&models.Skill{}).Count(&count)
	if count == 0 {
		skills := []models.Skill{
			{Name: "Python", Category: models.SkillCategoryTechnical},
			{Name: "JavaScript", Category: models.SkillCategoryTechnical},
			{Name: "Data Science", Category: models.SkillCategoryTechnical},
			{Name: "Public Speaking", Category: models.SkillCategoryLeadership},
			{Name: "Project Management", Category: models.SkillCategoryLeadership},
			{Name: "Mentorship", Category: models.SkillCategoryLeadership},
			{Name: "Graphic Design", Category: models.SkillCategoryCreative},
			{Name: "Writing", Category: models.SkillCategoryCreative},
			{Name: "Video Editing", Category: models.SkillCategoryCreative},
			{Name: "Marketing", Category: models.SkillCategoryBusiness},
			{Name: "Fundraising", Category: models.SkillCategoryBusiness},
			{Name: "Legal Research", Category: models.SkillCategoryAdvocacy},
			{Name: "Community Organizing", Category: models.SkillCategoryAdvocacy},
		}
		if err := DB.Create(&skills).Error; err != nil {
			log.Printf("Failed to seed skills: %v", err)
		}
	}

	DB.Model(&models.Badge{}).Count(&count)
	if count == 0 {
		badges := []models.Badge{
			{Name: "Caregiver", Description: "Recognized for balancing caregiving responsibilities", Icon: "👶"},
			{Name: "Community Organizer", Description: "Active in community advocacy and organizing", Icon: "🤝"},
			{Name: "Mentor", Description: "Dedicated to helping others grow", Icon: "🌟"},
			{Name: "First-Gen Professional", Description: "Breaking barriers in their field", Icon: "🚀"},
			{Name: "Career Changer", Description: "Successfully pivoted careers", Icon: "🔄"},
		}
		if err := DB.Create(&badges).Error; err != nil {
			log.Printf("Failed to seed badges: %v", err)
		}
	}

	DB.Model(&models.Hub{}).Count(&count)
	if count == 0 {
		hubs := []models.Hub{
			{Name: "STEM Careers", Description: "Science, tech, engineering and math careers", Icon: "🔬"},
			{Name: "Entrepreneurship", Description: "Starting and growing your own venture", Icon: "💼"},
			{Name: "Health & Wellness", Description: "Wellbeing at work and beyond", Icon: "🌿"},
			{Name: "Creative Arts", Description: "Design, writing and the creative industries", Icon: "🎨"},
		}
		for i := range hubs {
			if err := DB.Create(&hubs[i]).Error; err != nil {
				log.Printf("Failed to seed hub %s: %v", hubs[i].Name, err)
			}
		}
	}
}
