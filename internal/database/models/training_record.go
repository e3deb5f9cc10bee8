package models

import "github.com/google/uuid"

// TrainingRecord marks an employee as qualified for one job function
type TrainingRecord struct {
	BaseModel
	EmployeeID    uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_employee_training_pair" validate:"required"`
	JobFunctionID uuid.UUID `json:"job_function_id" gorm:"type:uuid;not null;uniqueIndex:idx_employee_training_pair" validate:"required"`

	// Relationships
	Employee    Employee    `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	JobFunction JobFunction `json:"job_function,omitempty" gorm:"foreignKey:JobFunctionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TrainingRecord
func (TrainingRecord) TableName() string {
	return "employee_training"
}
