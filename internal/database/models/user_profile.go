package models

import "github.com/google/uuid"

// UserProfile links an authenticated user to a team. Super admins have no
// team scoping and see every team's data.
type UserProfile struct {
	BaseModel
	Email        string     `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email,max=255"`
	FullName     string     `json:"full_name" gorm:"size:200"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	TeamID       *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	IsSuperAdmin bool       `json:"is_super_admin" gorm:"default:false"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}
