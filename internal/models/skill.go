package models

// Skill categories
const (
	SkillCategoryTechnical  = "technical"
	SkillCategoryCreative   = "creative"
	SkillCategoryLeadership = "leadership"
	SkillCategoryBusiness   = "business"
	SkillCategoryAdvocacy   = "advocacy"
)

type Skill struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Category string `gorm:"size:20;default:'technical';not null" json:"category"`
}
