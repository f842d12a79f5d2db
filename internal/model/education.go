package model

import (
	"time"

	"gorm.io/datatypes"
)

// Education is a study period entry on the about page.
type Education struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Institution  string                      `json:"institution" gorm:"size:255;not null"`
	Degree       string                      `json:"degree" gorm:"size:255;not null"`
	Field        string                      `json:"field" gorm:"size:255;not null"`
	StartDate    time.Time                   `json:"startDate" gorm:"not null"`
	EndDate      *time.Time                  `json:"endDate,omitempty"`
	IsCurrent    bool                        `json:"isCurrent" gorm:"default:false"`
	Description  string                      `json:"description,omitempty" gorm:"type:text"`
	Achievements datatypes.JSONSlice[string] `json:"achievements"`
	Grade        string                      `json:"grade,omitempty" gorm:"size:100"`
	Order        int                         `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}
