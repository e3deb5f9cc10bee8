package models

// BusinessRule defines minimum/maximum staffing for a job function over a
// time window. Rules are matched by job function name so they survive
// re-creation of the function record.
type BusinessRule struct {
	BaseModel
	JobFunctionName  string  `json:"job_function_name" gorm:"size:100;not null;index" validate:"required,max=100"`
	TimeSlotStart    string  `json:"time_slot_start" gorm:"size:8;not null" validate:"required"`
	TimeSlotEnd      string  `json:"time_slot_end" gorm:"size:8;not null" validate:"required"`
	MinStaff         int     `json:"min_staff" gorm:"not null" validate:"min=0"`
	MaxStaff         *int    `json:"max_staff,omitempty"`
	BlockSizeMinutes int     `json:"block_size_minutes" gorm:"not null;default:15"`
	Priority         int     `json:"priority" gorm:"default:0"`
	IsActive         bool    `json:"is_active" gorm:"default:true"`
	Notes            string  `json:"notes" gorm:"type:text"`
	FanOutEnabled    bool    `json:"fan_out_enabled" gorm:"default:false"`
	FanOutPrefix     *string `json:"fan_out_prefix,omitempty" gorm:"size:50"`
}

// TableName returns the table name for BusinessRule
func (BusinessRule) TableName() string {
	return "business_rules"
}
