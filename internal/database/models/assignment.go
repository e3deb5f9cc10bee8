package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleAssignment places an employee on a job function for a time span on
// one calendar date. Start and end are wall-clock strings aligned to the
// 15-minute grid in practice (alignment is not enforced here).
type ScheduleAssignment struct {
	BaseModel
	EmployeeID      uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	JobFunctionID   uuid.UUID `json:"job_function_id" gorm:"type:uuid;not null;index" validate:"required"`
	ShiftID         uuid.UUID `json:"shift_id" gorm:"type:uuid;not null;index" validate:"required"`
	ScheduleDate    time.Time `json:"schedule_date" gorm:"type:date;not null;index" validate:"required"`
	AssignmentOrder int       `json:"assignment_order" gorm:"default:0"`
	StartTime       string    `json:"start_time" gorm:"size:8;not null" validate:"required"`
	EndTime         string    `json:"end_time" gorm:"size:8;not null" validate:"required"`

	// Relationships
	Employee    Employee    `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	JobFunction JobFunction `json:"job_function,omitempty" gorm:"foreignKey:JobFunctionID;constraint:OnDelete:CASCADE"`
	Shift       Shift       `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScheduleAssignment
func (ScheduleAssignment) TableName() string {
	return "schedule_assignments"
}

// DateKey returns the calendar date in wire format, used for same-day
// comparisons.
func (a *ScheduleAssignment) DateKey() string {
	return a.ScheduleDate.Format(DateFormat)
}
