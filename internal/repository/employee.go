package repository

import (
	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByTeamID retrieves all employees for a team with pagination
func (r *EmployeeRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	if err := r.db.Model(&models.Employee{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).
		Order("last_name, first_name").
		Limit(limit).Offset(offset).
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// GetActiveByTeamID retrieves all active employees for a team
func (r *EmployeeRepository) GetActiveByTeamID(teamID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("team_id = ? AND is_active = ?", teamID, true).
		Order("last_name, first_name").
		Find(&employees).Error
	return employees, err
}

// GetWithTrainingRecords retrieves an employee with their training records
func (r *EmployeeRepository) GetWithTrainingRecords(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Preload("TrainingRecords").First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete deletes an employee
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}
