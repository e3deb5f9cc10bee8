package repository

import (
	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileRepository handles database operations for user profiles
type UserProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new user profile repository
func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

// Create creates a new user profile
func (r *UserProfileRepository) Create(profile *models.UserProfile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a user profile by ID
func (r *UserProfileRepository) GetByID(id uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Preload("Team").First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a user profile by email
func (r *UserProfileRepository) GetByEmail(email string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Preload("Team").First(&profile, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByTeamID retrieves all user profiles for a team with pagination
func (r *UserProfileRepository) GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.UserProfile, int64, error) {
	var profiles []models.UserProfile
	var total int64

	if err := r.db.Model(&models.UserProfile{}).Where("team_id = ?", teamID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("team_id = ?", teamID).Order("email").Limit(limit).Offset(offset).Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// Update updates a user profile
func (r *UserProfileRepository) Update(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}

// Delete deletes a user profile
func (r *UserProfileRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.UserProfile{}, "id = ?", id).Error
}
