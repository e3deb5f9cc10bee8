package repository

import (
	"time"

	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftSwapRepository handles database operations for shift swaps
type ShiftSwapRepository struct {
	db *gorm.DB
}

// NewShiftSwapRepository creates a new shift swap repository
func NewShiftSwapRepository(db *gorm.DB) *ShiftSwapRepository {
	return &ShiftSwapRepository{db: db}
}

// Upsert creates a swap, or replaces the existing one for the same employee
// and date. An employee has at most one swap per date.
func (r *ShiftSwapRepository) Upsert(swap *models.ShiftSwap) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employee_id"}, {Name: "swap_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"original_shift_id", "swapped_shift_id", "notes", "updated_at",
		}),
	}).Create(swap).Error
}

// GetByTeamAndDate retrieves all shift swaps for a team on one date
func (r *ShiftSwapRepository) GetByTeamAndDate(teamID uuid.UUID, date time.Time) ([]models.ShiftSwap, error) {
	var swaps []models.ShiftSwap
	query := r.db.Where("swap_date = ?", date.Format(models.DateFormat))
	if teamID != uuid.Nil {
		query = query.Where(
			"employee_id IN (SELECT id FROM employees WHERE team_id = ?)", teamID)
	}
	err := query.Preload("Employee").Preload("OriginalShift").Preload("SwappedShift").
		Find(&swaps).Error
	return swaps, err
}

// GetByEmployeeAndDate retrieves one employee's swap for one date, if any
func (r *ShiftSwapRepository) GetByEmployeeAndDate(employeeID uuid.UUID, date time.Time) (*models.ShiftSwap, error) {
	var swap models.ShiftSwap
	err := r.db.First(&swap, "employee_id = ? AND swap_date = ?",
		employeeID, date.Format(models.DateFormat)).Error
	if err != nil {
		return nil, err
	}
	return &swap, nil
}

// Delete deletes a shift swap
func (r *ShiftSwapRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftSwap{}, "id = ?", id).Error
}
