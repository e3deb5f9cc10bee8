package repository

import (
	"time"

	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PTODayRepository handles database operations for PTO days
type PTODayRepository struct {
	db *gorm.DB
}

// NewPTODayRepository creates a new PTO day repository
func NewPTODayRepository(db *gorm.DB) *PTODayRepository {
	return &PTODayRepository{db: db}
}

// Create creates a new PTO day
func (r *PTODayRepository) Create(pto *models.PTODay) error {
	return r.db.Create(pto).Error
}

// GetByID retrieves a PTO day by ID
func (r *PTODayRepository) GetByID(id uuid.UUID) (*models.PTODay, error) {
	var pto models.PTODay
	err := r.db.Preload("Employee").First(&pto, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pto, nil
}

// GetByTeamAndDate retrieves all PTO days for a team on one date
func (r *PTODayRepository) GetByTeamAndDate(teamID uuid.UUID, date time.Time) ([]models.PTODay, error) {
	var ptos []models.PTODay
	query := r.db.Where("pto_date = ?", date.Format(models.DateFormat))
	if teamID != uuid.Nil {
		query = query.Where("team_id = ?", teamID)
	}
	err := query.Preload("Employee").Find(&ptos).Error
	return ptos, err
}

// GetByEmployee retrieves one employee's PTO days with pagination, most
// recent first
func (r *PTODayRepository) GetByEmployee(employeeID uuid.UUID, limit, offset int) ([]models.PTODay, int64, error) {
	var ptos []models.PTODay
	var total int64

	if err := r.db.Model(&models.PTODay{}).Where("employee_id = ?", employeeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("employee_id = ?", employeeID).
		Order("pto_date DESC").
		Limit(limit).Offset(offset).
		Find(&ptos).Error
	if err != nil {
		return nil, 0, err
	}

	return ptos, total, nil
}

// Update updates a PTO day
func (r *PTODayRepository) Update(pto *models.PTODay) error {
	return r.db.Save(pto).Error
}

// Delete deletes a PTO day
func (r *PTODayRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PTODay{}, "id = ?", id).Error
}
