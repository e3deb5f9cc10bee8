package models

import "github.com/google/uuid"

// PreferredAssignment is an advisory hint that an employee should be placed
// on a job function when possible. There is no automatic solver; hints only
// influence manual scheduling order.
type PreferredAssignment struct {
	BaseModel
	EmployeeID    uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_preferred_assignments_pair" validate:"required"`
	JobFunctionID uuid.UUID `json:"job_function_id" gorm:"type:uuid;not null;uniqueIndex:idx_preferred_assignments_pair" validate:"required"`
	IsRequired    bool      `json:"is_required" gorm:"default:false"`
	Priority      int       `json:"priority" gorm:"default:0"`
	Notes         string    `json:"notes" gorm:"type:text"`

	// Relationships
	Employee    Employee    `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	JobFunction JobFunction `json:"job_function,omitempty" gorm:"foreignKey:JobFunctionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PreferredAssignment
func (PreferredAssignment) TableName() string {
	return "preferred_assignments"
}
