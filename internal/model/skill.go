package model

import "time"

// SkillCategory groups skills on the public skills page.
type SkillCategory string

const (
	SkillCategoryFrontend SkillCategory = "FRONTEND"
	SkillCategoryBackend  SkillCategory = "BACKEND"
	SkillCategoryDatabase SkillCategory = "DATABASE"
	SkillCategoryTools    SkillCategory = "TOOLS"
	SkillCategoryDesign   SkillCategory = "DESIGN"
	SkillCategoryOther    SkillCategory = "OTHER"
)

// Skill is a single proficiency entry with a 0-100 level.
type Skill struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Category  SkillCategory `json:"category" gorm:"size:20;not null;index"`
	Level     int           `json:"level" gorm:"not null"`
	Icon      string        `json:"icon,omitempty" gorm:"size:255"`
	Color     string        `json:"color,omitempty" gorm:"size:50"`
	Order     int           `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
