package repository

import (
	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreferredAssignmentRepository handles database operations for preferred assignments
type PreferredAssignmentRepository struct {
	db *gorm.DB
}

// NewPreferredAssignmentRepository creates a new preferred assignment repository
func NewPreferredAssignmentRepository(db *gorm.DB) *PreferredAssignmentRepository {
	return &PreferredAssignmentRepository{db: db}
}

// Create creates a new preferred assignment
func (r *PreferredAssignmentRepository) Create(pref *models.PreferredAssignment) error {
	return r.db.Create(pref).Error
}

// GetByID retrieves a preferred assignment by ID
func (r *PreferredAssignmentRepository) GetByID(id uuid.UUID) (*models.PreferredAssignment, error) {
	var pref models.PreferredAssignment
	err := r.db.Preload("Employee").Preload("JobFunction").
		First(&pref, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// GetAll retrieves all preferred assignments with pagination
func (r *PreferredAssignmentRepository) GetAll(limit, offset int) ([]models.PreferredAssignment, int64, error) {
	var prefs []models.PreferredAssignment
	var total int64

	if err := r.db.Model(&models.PreferredAssignment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Employee").Preload("JobFunction").
		Order("priority DESC").
		Limit(limit).Offset(offset).
		Find(&prefs).Error
	if err != nil {
		return nil, 0, err
	}

	return prefs, total, nil
}

// GetByEmployee retrieves one employee's preferred assignments
func (r *PreferredAssignmentRepository) GetByEmployee(employeeID uuid.UUID) ([]models.PreferredAssignment, error) {
	var prefs []models.PreferredAssignment
	err := r.db.Where("employee_id = ?", employeeID).
		Preload("JobFunction").
		Order("priority DESC").
		Find(&prefs).Error
	return prefs, err
}

// Update updates a preferred assignment
func (r *PreferredAssignmentRepository) Update(pref *models.PreferredAssignment) error {
	return r.db.Save(pref).Error
}

// Delete deletes a preferred assignment
func (r *PreferredAssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PreferredAssignment{}, "id = ?", id).Error
}
