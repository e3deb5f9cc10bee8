package models

import (
	"time"

	"github.com/google/uuid"
)

// PTODay records paid time off for one employee on one date. Start and end
// times are only set for partial-day PTO.
type PTODay struct {
	BaseModel
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID     uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	PTODate    time.Time `json:"pto_date" gorm:"type:date;not null;index" validate:"required"`
	StartTime  *string   `json:"start_time,omitempty" gorm:"size:8"`
	EndTime    *string   `json:"end_time,omitempty" gorm:"size:8"`
	PTOType    PTOType   `json:"pto_type" gorm:"type:varchar(50);default:'full_day'"`
	Notes      string    `json:"notes" gorm:"type:text"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Team     Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PTODay
func (PTODay) TableName() string {
	return "pto_days"
}
