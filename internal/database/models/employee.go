package models

import "github.com/google/uuid"

// Employee represents a scheduled worker
type Employee struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName string    `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName  string    `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Team            Team             `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	TrainingRecords []TrainingRecord `json:"training_records,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
