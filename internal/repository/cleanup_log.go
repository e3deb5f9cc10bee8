package repository

import (
	"shiftboard-backend/internal/database/models"

	"gorm.io/gorm"
)

// CleanupLogRepository handles database operations for cleanup logs
type CleanupLogRepository struct {
	db *gorm.DB
}

// NewCleanupLogRepository creates a new cleanup log repository
func NewCleanupLogRepository(db *gorm.DB) *CleanupLogRepository {
	return &CleanupLogRepository{db: db}
}

// Create records a retention sweep
func (r *CleanupLogRepository) Create(log *models.CleanupLog) error {
	return r.db.Create(log).Error
}

// GetRecent retrieves the most recent cleanup log entries
func (r *CleanupLogRepository) GetRecent(limit int) ([]models.CleanupLog, error) {
	var logs []models.CleanupLog
	err := r.db.Order("cleanup_date DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
