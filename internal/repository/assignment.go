package repository

import (
	"time"

	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for schedule assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new schedule assignment
func (r *AssignmentRepository) Create(assignment *models.ScheduleAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.ScheduleAssignment, error) {
	var assignment models.ScheduleAssignment
	err := r.db.Preload("Employee").Preload("JobFunction").Preload("Shift").
		First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// teamScope restricts an assignment query to one team's employees. A nil
// team ID leaves the query unscoped for super admin access.
func teamScope(teamID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if teamID == uuid.Nil {
			return db
		}
		return db.Joins("JOIN employees ON employees.id = schedule_assignments.employee_id").
			Where("employees.team_id = ?", teamID)
	}
}

// GetByDate retrieves all assignments for a team on one calendar date
func (r *AssignmentRepository) GetByDate(teamID uuid.UUID, date time.Time) ([]models.ScheduleAssignment, error) {
	var assignments []models.ScheduleAssignment
	err := r.db.Scopes(teamScope(teamID)).
		Where("schedule_date = ?", date.Format(models.DateFormat)).
		Preload("Employee").Preload("JobFunction").Preload("Shift").
		Order("start_time, assignment_order").
		Find(&assignments).Error
	return assignments, err
}

// GetByEmployeeAndDate retrieves one employee's assignments on one date
func (r *AssignmentRepository) GetByEmployeeAndDate(employeeID uuid.UUID, date time.Time) ([]models.ScheduleAssignment, error) {
	var assignments []models.ScheduleAssignment
	err := r.db.Where("employee_id = ? AND schedule_date = ?", employeeID, date.Format(models.DateFormat)).
		Order("start_time").
		Find(&assignments).Error
	return assignments, err
}

// Update updates an assignment
func (r *AssignmentRepository) Update(assignment *models.ScheduleAssignment) error {
	return r.db.Save(assignment).Error
}

// Delete deletes an assignment
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ScheduleAssignment{}, "id = ?", id).Error
}

// DeleteByDate removes every assignment for a team on one date and returns
// the number of rows deleted
func (r *AssignmentRepository) DeleteByDate(teamID uuid.UUID, date time.Time) (int64, error) {
	query := r.db.Where("schedule_date = ?", date.Format(models.DateFormat))
	if teamID != uuid.Nil {
		query = query.Where(
			"employee_id IN (SELECT id FROM employees WHERE team_id = ?)", teamID)
	}
	result := query.Delete(&models.ScheduleAssignment{})
	return result.RowsAffected, result.Error
}

// CopyToDate replicates a team's assignments from the source date onto the
// target date, replacing whatever the target date already held. Rows missing
// a start or end time are not copied. The whole copy runs in one
// transaction. Returns the number of assignments copied.
func (r *AssignmentRepository) CopyToDate(teamID uuid.UUID, source, target time.Time) (int, error) {
	var copied int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var sourceAssignments []models.ScheduleAssignment
		query := tx.Where("schedule_date = ?", source.Format(models.DateFormat))
		if teamID != uuid.Nil {
			query = query.Where(
				"employee_id IN (SELECT id FROM employees WHERE team_id = ?)", teamID)
		}
		if err := query.Find(&sourceAssignments).Error; err != nil {
			return err
		}

		deleteQuery := tx.Where("schedule_date = ?", target.Format(models.DateFormat))
		if teamID != uuid.Nil {
			deleteQuery = deleteQuery.Where(
				"employee_id IN (SELECT id FROM employees WHERE team_id = ?)", teamID)
		}
		if err := deleteQuery.Delete(&models.ScheduleAssignment{}).Error; err != nil {
			return err
		}

		for i := range sourceAssignments {
			if sourceAssignments[i].StartTime == "" || sourceAssignments[i].EndTime == "" {
				continue
			}
			clone := models.ScheduleAssignment{
				EmployeeID:      sourceAssignments[i].EmployeeID,
				JobFunctionID:   sourceAssignments[i].JobFunctionID,
				ShiftID:         sourceAssignments[i].ShiftID,
				ScheduleDate:    target,
				AssignmentOrder: sourceAssignments[i].AssignmentOrder,
				StartTime:       sourceAssignments[i].StartTime,
				EndTime:         sourceAssignments[i].EndTime,
			}
			if err := tx.Create(&clone).Error; err != nil {
				return err
			}
			copied++
		}
		return nil
	})
	return copied, err
}

// GetOlderThan retrieves every assignment dated strictly before the cutoff,
// for export before a retention sweep
func (r *AssignmentRepository) GetOlderThan(cutoff time.Time) ([]models.ScheduleAssignment, error) {
	var assignments []models.ScheduleAssignment
	err := r.db.Where("schedule_date < ?", cutoff.Format(models.DateFormat)).
		Preload("Employee").Preload("JobFunction").
		Order("schedule_date").
		Find(&assignments).Error
	return assignments, err
}

// DeleteOlderThan removes every assignment dated strictly before the cutoff
// and returns the number of rows deleted
func (r *AssignmentRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("schedule_date < ?", cutoff.Format(models.DateFormat)).
		Delete(&models.ScheduleAssignment{})
	return result.RowsAffected, result.Error
}
