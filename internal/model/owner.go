package model

import "time"

// Role is the closed set of privileged principals. Anything else is denied
// mutation access.
type Role string

const (
	RoleOwner Role = "OWNER"
	RoleAdmin Role = "ADMIN"
)

// IsPrivileged reports whether the role may mutate resources.
func (r Role) IsPrivileged() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Owner is the single Owner/Admin principal. It is created by the seed step
// and never deleted through the API.
type Owner struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Bio          string    `json:"bio,omitempty" gorm:"type:text"`
	Phone        string    `json:"phone,omitempty" gorm:"size:50"`
	Picture      string    `json:"picture,omitempty" gorm:"size:512"`
	Role         Role      `json:"role,omitempty" gorm:"size:20;not null;default:'OWNER'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
