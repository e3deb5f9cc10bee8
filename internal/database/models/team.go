package models

// Team represents a tenant: a warehouse crew whose schedule data is isolated
// from every other team's
type Team struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
