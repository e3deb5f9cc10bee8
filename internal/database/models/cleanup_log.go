package models

import "time"

// CleanupLog records each retention sweep over old schedule assignments
type CleanupLog struct {
	BaseModel
	CleanupDate       time.Time `json:"cleanup_date" gorm:"not null;index"`
	CutoffDate        time.Time `json:"cutoff_date" gorm:"type:date;not null"`
	AssignmentsFound  int       `json:"assignments_found" gorm:"not null;default:0"`
	AssignmentsPurged int       `json:"assignments_purged" gorm:"not null;default:0"`
	Notes             string    `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for CleanupLog
func (CleanupLog) TableName() string {
	return "cleanup_log"
}
