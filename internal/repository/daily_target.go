package repository

import (
	"time"

	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyTargetRepository handles database operations for daily targets
type DailyTargetRepository struct {
	db *gorm.DB
}

// NewDailyTargetRepository creates a new daily target repository
func NewDailyTargetRepository(db *gorm.DB) *DailyTargetRepository {
	return &DailyTargetRepository{db: db}
}

// Upsert creates a target, or replaces the existing one for the same job
// function and date
func (r *DailyTargetRepository) Upsert(target *models.DailyTarget) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_function_id"}, {Name: "schedule_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_units", "updated_at"}),
	}).Create(target).Error
}

// GetByDate retrieves all daily targets for one date
func (r *DailyTargetRepository) GetByDate(date time.Time) ([]models.DailyTarget, error) {
	var targets []models.DailyTarget
	err := r.db.Where("schedule_date = ?", date.Format(models.DateFormat)).
		Preload("JobFunction").
		Find(&targets).Error
	return targets, err
}

// GetByJobFunctionAndDate retrieves the target for one job function on one date
func (r *DailyTargetRepository) GetByJobFunctionAndDate(jobFunctionID uuid.UUID, date time.Time) (*models.DailyTarget, error) {
	var target models.DailyTarget
	err := r.db.First(&target, "job_function_id = ? AND schedule_date = ?",
		jobFunctionID, date.Format(models.DateFormat)).Error
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// Delete deletes a daily target
func (r *DailyTargetRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DailyTarget{}, "id = ?", id).Error
}
