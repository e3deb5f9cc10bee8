package repository

import (
	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// trainingBatchSize bounds the IN clause when loading training for many
// employees at once.
const trainingBatchSize = 1000

// TrainingRecordRepository handles database operations for training records
type TrainingRecordRepository struct {
	db *gorm.DB
}

// NewTrainingRecordRepository creates a new training record repository
func NewTrainingRecordRepository(db *gorm.DB) *TrainingRecordRepository {
	return &TrainingRecordRepository{db: db}
}

// GetJobFunctionIDs retrieves the job function IDs one employee is trained on
func (r *TrainingRecordRepository) GetJobFunctionIDs(employeeID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.TrainingRecord{}).
		Where("employee_id = ?", employeeID).
		Pluck("job_function_id", &ids).Error
	return ids, err
}

// GetAllByEmployeeIDs retrieves training for many employees in batches and
// returns a map from employee ID to trained job function IDs. Employees with
// no training are absent from the map.
func (r *TrainingRecordRepository) GetAllByEmployeeIDs(employeeIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	result := make(map[uuid.UUID][]uuid.UUID, len(employeeIDs))

	for start := 0; start < len(employeeIDs); start += trainingBatchSize {
		end := start + trainingBatchSize
		if end > len(employeeIDs) {
			end = len(employeeIDs)
		}

		var records []models.TrainingRecord
		err := r.db.Where("employee_id IN ?", employeeIDs[start:end]).Find(&records).Error
		if err != nil {
			return nil, err
		}

		for i := range records {
			result[records[i].EmployeeID] = append(result[records[i].EmployeeID], records[i].JobFunctionID)
		}
	}

	return result, nil
}

// Replace swaps an employee's entire training set for the given job function
// IDs in one transaction, so a failed write never leaves the employee with a
// partially updated set
func (r *TrainingRecordRepository) Replace(employeeID uuid.UUID, jobFunctionIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).
			Delete(&models.TrainingRecord{}).Error; err != nil {
			return err
		}

		for _, jfID := range jobFunctionIDs {
			record := models.TrainingRecord{
				EmployeeID:    employeeID,
				JobFunctionID: jfID,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
