package model

import (
	"time"

	"gorm.io/datatypes"
)

// Experience is a work history entry.
type Experience struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Company      string                      `json:"company" gorm:"size:255;not null"`
	Position     string                      `json:"position" gorm:"size:255;not null"`
	Location     string                      `json:"location,omitempty" gorm:"size:255"`
	StartDate    time.Time                   `json:"startDate" gorm:"not null"`
	EndDate      *time.Time                  `json:"endDate,omitempty"`
	IsCurrent    bool                        `json:"isCurrent" gorm:"default:false"`
	Description  string                      `json:"description" gorm:"type:text;not null"`
	Achievements datatypes.JSONSlice[string] `json:"achievements"`
	Technologies datatypes.JSONSlice[string] `json:"technologies"`
	Order        int                         `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}
