package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyTarget is the unit count a job function should produce on one date.
// Combined with the job function's productivity rate it yields required
// staffing hours.
type DailyTarget struct {
	BaseModel
	JobFunctionID uuid.UUID `json:"job_function_id" gorm:"type:uuid;not null;uniqueIndex:idx_daily_targets_jf_date" validate:"required"`
	ScheduleDate  time.Time `json:"schedule_date" gorm:"type:date;not null;uniqueIndex:idx_daily_targets_jf_date;index" validate:"required"`
	TargetUnits   float64   `json:"target_units" gorm:"not null;default:0" validate:"min=0"`

	// Relationships
	JobFunction JobFunction `json:"job_function,omitempty" gorm:"foreignKey:JobFunctionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DailyTarget
func (DailyTarget) TableName() string {
	return "daily_targets"
}
