package models

// JobFunction represents a task or station an employee can be scheduled to.
// Functions named "Meter <N>" are interchangeable meter stations; training on
// any one of them counts as training on all of them.
type JobFunction struct {
	BaseModel
	Name             string   `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	ColorCode        string   `json:"color_code" gorm:"size:20"`
	ProductivityRate *float64 `json:"productivity_rate,omitempty"` // units per labor-hour; nil means no rate defined
	UnitOfMeasure    string   `json:"unit_of_measure" gorm:"size:50"`
	IsActive         bool     `json:"is_active" gorm:"default:true"`
	SortOrder        int      `json:"sort_order" gorm:"default:0"`
}

// TableName returns the table name for JobFunction
func (JobFunction) TableName() string {
	return "job_functions"
}
