package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectStatus represents the delivery state of a project.
type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusPlanned    ProjectStatus = "PLANNED"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusInProgress, ProjectStatusPlanned:
		return true
	}
	return false
}

// Project is a showcased piece of work.
type Project struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Title        string                      `json:"title" gorm:"size:255;not null"`
	Slug         string                      `json:"slug" gorm:"uniqueIndex;size:300;not null"`
	Description  string                      `json:"description" gorm:"type:text;not null"`
	Thumbnail    string                      `json:"thumbnail" gorm:"size:512"`
	Images       datatypes.JSONSlice[string] `json:"images"`
	LiveURL      string                      `json:"liveUrl,omitempty" gorm:"size:512"`
	GithubURL    string                      `json:"githubUrl,omitempty" gorm:"size:512"`
	Technologies datatypes.JSONSlice[string] `json:"technologies"`
	Category     string                      `json:"category" gorm:"size:100;not null;index"`
	IsFeatured   bool                        `json:"isFeatured" gorm:"default:false;index"`
	Status       ProjectStatus               `json:"status" gorm:"size:20;not null;default:'COMPLETED';index"`
	StartDate    *time.Time                  `json:"startDate,omitempty"`
	EndDate      *time.Time                  `json:"endDate,omitempty"`
	Features     datatypes.JSONSlice[string] `json:"features"`
	Challenges   string                      `json:"challenges,omitempty" gorm:"type:text"`
	Learnings    string                      `json:"learnings,omitempty" gorm:"type:text"`
	Order        int                         `json:"order" gorm:"column:display_order;default:0;index"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}
