package models

// Shift represents a working shift with up to three optional break windows.
// Break bounds are wall-clock strings (HH:MM or HH:MM:SS); a window only
// exists when both its start and end are set.
type Shift struct {
	BaseModel
	Name      string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	StartTime string `json:"start_time" gorm:"size:8;not null" validate:"required"`
	EndTime   string `json:"end_time" gorm:"size:8;not null" validate:"required"`

	Break1Start *string `json:"break_1_start,omitempty" gorm:"size:8"`
	Break1End   *string `json:"break_1_end,omitempty" gorm:"size:8"`
	Break2Start *string `json:"break_2_start,omitempty" gorm:"size:8"`
	Break2End   *string `json:"break_2_end,omitempty" gorm:"size:8"`
	LunchStart  *string `json:"lunch_start,omitempty" gorm:"size:8"`
	LunchEnd    *string `json:"lunch_end,omitempty" gorm:"size:8"`

	IsActive bool `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}
