package model

import (
	"time"

	"gorm.io/datatypes"
)

// Blog is a single post. Slug is derived from the title and unique across
// all posts.
type Blog struct {
	ID          uint                         `json:"id" gorm:"primaryKey"`
	Title       string                       `json:"title" gorm:"size:255;not null"`
	Slug        string                       `json:"slug" gorm:"uniqueIndex;size:300;not null"`
	Content     string                       `json:"content" gorm:"type:longtext;not null"`
	Excerpt     string                       `json:"excerpt,omitempty" gorm:"size:500"`
	Thumbnail   string                       `json:"thumbnail,omitempty" gorm:"size:512"`
	Category    string                       `json:"category" gorm:"size:100;not null;index"`
	Tags        datatypes.JSONSlice[string]  `json:"tags"`
	IsPublished bool                         `json:"isPublished" gorm:"default:false;index"`
	IsFeatured  bool                         `json:"isFeatured" gorm:"default:false;index"`
	Views       int                          `json:"views" gorm:"default:0"`
	ReadTime    int                          `json:"readTime" gorm:"default:1"`
	AuthorID    uint                         `json:"authorId" gorm:"not null;index"`
	Author      *Owner                       `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt   time.Time                    `json:"createdAt"`
	UpdatedAt   time.Time                    `json:"updatedAt"`
}
