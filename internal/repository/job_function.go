package repository

import (
	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobFunctionRepository handles database operations for job functions
type JobFunctionRepository struct {
	db *gorm.DB
}

// NewJobFunctionRepository creates a new job function repository
func NewJobFunctionRepository(db *gorm.DB) *JobFunctionRepository {
	return &JobFunctionRepository{db: db}
}

// Create creates a new job function
func (r *JobFunctionRepository) Create(jf *models.JobFunction) error {
	return r.db.Create(jf).Error
}

// GetByID retrieves a job function by ID
func (r *JobFunctionRepository) GetByID(id uuid.UUID) (*models.JobFunction, error) {
	var jf models.JobFunction
	err := r.db.First(&jf, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &jf, nil
}

// GetByName retrieves a job function by its unique name
func (r *JobFunctionRepository) GetByName(name string) (*models.JobFunction, error) {
	var jf models.JobFunction
	err := r.db.First(&jf, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &jf, nil
}

// GetAll retrieves all job functions with pagination
func (r *JobFunctionRepository) GetAll(limit, offset int) ([]models.JobFunction, int64, error) {
	var jfs []models.JobFunction
	var total int64

	if err := r.db.Model(&models.JobFunction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("sort_order, name").Limit(limit).Offset(offset).Find(&jfs).Error
	if err != nil {
		return nil, 0, err
	}

	return jfs, total, nil
}

// GetActive retrieves all active job functions in display order
func (r *JobFunctionRepository) GetActive() ([]models.JobFunction, error) {
	var jfs []models.JobFunction
	err := r.db.Where("is_active = ?", true).Order("sort_order, name").Find(&jfs).Error
	return jfs, err
}

// Update updates a job function
func (r *JobFunctionRepository) Update(jf *models.JobFunction) error {
	return r.db.Save(jf).Error
}

// Delete deletes a job function
func (r *JobFunctionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.JobFunction{}, "id = ?", id).Error
}
