package repository

import (
	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessRuleRepository handles database operations for business rules
type BusinessRuleRepository struct {
	db *gorm.DB
}

// NewBusinessRuleRepository creates a new business rule repository
func NewBusinessRuleRepository(db *gorm.DB) *BusinessRuleRepository {
	return &BusinessRuleRepository{db: db}
}

// Create creates a new business rule
func (r *BusinessRuleRepository) Create(rule *models.BusinessRule) error {
	return r.db.Create(rule).Error
}

// GetByID retrieves a business rule by ID
func (r *BusinessRuleRepository) GetByID(id uuid.UUID) (*models.BusinessRule, error) {
	var rule models.BusinessRule
	err := r.db.First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetAll retrieves all business rules with pagination
func (r *BusinessRuleRepository) GetAll(limit, offset int) ([]models.BusinessRule, int64, error) {
	var rules []models.BusinessRule
	var total int64

	if err := r.db.Model(&models.BusinessRule{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("job_function_name, time_slot_start").
		Limit(limit).Offset(offset).
		Find(&rules).Error
	if err != nil {
		return nil, 0, err
	}

	return rules, total, nil
}

// GetActive retrieves all active business rules ordered by priority
func (r *BusinessRuleRepository) GetActive() ([]models.BusinessRule, error) {
	var rules []models.BusinessRule
	err := r.db.Where("is_active = ?", true).
		Order("priority DESC, job_function_name").
		Find(&rules).Error
	return rules, err
}

// GetByJobFunctionName retrieves all rules targeting one job function name
func (r *BusinessRuleRepository) GetByJobFunctionName(name string) ([]models.BusinessRule, error) {
	var rules []models.BusinessRule
	err := r.db.Where("job_function_name = ?", name).
		Order("time_slot_start").
		Find(&rules).Error
	return rules, err
}

// Update updates a business rule
func (r *BusinessRuleRepository) Update(rule *models.BusinessRule) error {
	return r.db.Save(rule).Error
}

// Delete deletes a business rule
func (r *BusinessRuleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BusinessRule{}, "id = ?", id).Error
}
