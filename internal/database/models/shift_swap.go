package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftSwap swaps one employee from their usual shift to another for a single
// date. At most one swap per employee per date.
type ShiftSwap struct {
	BaseModel
	EmployeeID      uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_shift_swaps_employee_date" validate:"required"`
	SwapDate        time.Time `json:"swap_date" gorm:"type:date;not null;uniqueIndex:idx_shift_swaps_employee_date;index" validate:"required"`
	OriginalShiftID uuid.UUID `json:"original_shift_id" gorm:"type:uuid;not null" validate:"required"`
	SwappedShiftID  uuid.UUID `json:"swapped_shift_id" gorm:"type:uuid;not null" validate:"required"`
	Notes           string    `json:"notes" gorm:"type:text"`

	// Relationships
	Employee      Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	OriginalShift Shift    `json:"original_shift,omitempty" gorm:"foreignKey:OriginalShiftID;constraint:OnDelete:CASCADE"`
	SwappedShift  Shift    `json:"swapped_shift,omitempty" gorm:"foreignKey:SwappedShiftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftSwap
func (ShiftSwap) TableName() string {
	return "shift_swaps"
}
