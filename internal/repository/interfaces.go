package repository

import (
	"time"

	"shiftboard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	GetWithEmployees(id uuid.UUID) (*models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// UserProfileRepositoryInterface defines the interface for user profile repository operations
type UserProfileRepositoryInterface interface {
	Create(profile *models.UserProfile) error
	GetByID(id uuid.UUID) (*models.UserProfile, error)
	GetByEmail(email string) (*models.UserProfile, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.UserProfile, int64, error)
	Update(profile *models.UserProfile) error
	Delete(id uuid.UUID) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByTeamID(teamID uuid.UUID, limit, offset int) ([]models.Employee, int64, error)
	GetActiveByTeamID(teamID uuid.UUID) ([]models.Employee, error)
	GetWithTrainingRecords(id uuid.UUID) (*models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// JobFunctionRepositoryInterface defines the interface for job function repository operations
type JobFunctionRepositoryInterface interface {
	Create(jf *models.JobFunction) error
	GetByID(id uuid.UUID) (*models.JobFunction, error)
	GetByName(name string) (*models.JobFunction, error)
	GetAll(limit, offset int) ([]models.JobFunction, int64, error)
	GetActive() ([]models.JobFunction, error)
	Update(jf *models.JobFunction) error
	Delete(id uuid.UUID) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetAll(limit, offset int) ([]models.Shift, int64, error)
	GetActive() ([]models.Shift, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for schedule assignment repository operations.
// Team-scoped queries accept uuid.Nil as "all teams" for super admin access.
type AssignmentRepositoryInterface interface {
	Create(assignment *models.ScheduleAssignment) error
	GetByID(id uuid.UUID) (*models.ScheduleAssignment, error)
	GetByDate(teamID uuid.UUID, date time.Time) ([]models.ScheduleAssignment, error)
	GetByEmployeeAndDate(employeeID uuid.UUID, date time.Time) ([]models.ScheduleAssignment, error)
	Update(assignment *models.ScheduleAssignment) error
	Delete(id uuid.UUID) error
	DeleteByDate(teamID uuid.UUID, date time.Time) (int64, error)
	CopyToDate(teamID uuid.UUID, source, target time.Time) (int, error)
	GetOlderThan(cutoff time.Time) ([]models.ScheduleAssignment, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

// TrainingRecordRepositoryInterface defines the interface for training record repository operations
type TrainingRecordRepositoryInterface interface {
	GetJobFunctionIDs(employeeID uuid.UUID) ([]uuid.UUID, error)
	GetAllByEmployeeIDs(employeeIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
	Replace(employeeID uuid.UUID, jobFunctionIDs []uuid.UUID) error
}

// PTODayRepositoryInterface defines the interface for PTO repository operations
type PTODayRepositoryInterface interface {
	Create(pto *models.PTODay) error
	GetByID(id uuid.UUID) (*models.PTODay, error)
	GetByTeamAndDate(teamID uuid.UUID, date time.Time) ([]models.PTODay, error)
	GetByEmployee(employeeID uuid.UUID, limit, offset int) ([]models.PTODay, int64, error)
	Update(pto *models.PTODay) error
	Delete(id uuid.UUID) error
}

// ShiftSwapRepositoryInterface defines the interface for shift swap repository operations
type ShiftSwapRepositoryInterface interface {
	Upsert(swap *models.ShiftSwap) error
	GetByTeamAndDate(teamID uuid.UUID, date time.Time) ([]models.ShiftSwap, error)
	GetByEmployeeAndDate(employeeID uuid.UUID, date time.Time) (*models.ShiftSwap, error)
	Delete(id uuid.UUID) error
}

// DailyTargetRepositoryInterface defines the interface for daily target repository operations
type DailyTargetRepositoryInterface interface {
	Upsert(target *models.DailyTarget) error
	GetByDate(date time.Time) ([]models.DailyTarget, error)
	GetByJobFunctionAndDate(jobFunctionID uuid.UUID, date time.Time) (*models.DailyTarget, error)
	Delete(id uuid.UUID) error
}

// PreferredAssignmentRepositoryInterface defines the interface for preferred assignment repository operations
type PreferredAssignmentRepositoryInterface interface {
	Create(pref *models.PreferredAssignment) error
	GetByID(id uuid.UUID) (*models.PreferredAssignment, error)
	GetAll(limit, offset int) ([]models.PreferredAssignment, int64, error)
	GetByEmployee(employeeID uuid.UUID) ([]models.PreferredAssignment, error)
	Update(pref *models.PreferredAssignment) error
	Delete(id uuid.UUID) error
}

// BusinessRuleRepositoryInterface defines the interface for business rule repository operations
type BusinessRuleRepositoryInterface interface {
	Create(rule *models.BusinessRule) error
	GetByID(id uuid.UUID) (*models.BusinessRule, error)
	GetAll(limit, offset int) ([]models.BusinessRule, int64, error)
	GetActive() ([]models.BusinessRule, error)
	GetByJobFunctionName(name string) ([]models.BusinessRule, error)
	Update(rule *models.BusinessRule) error
	Delete(id uuid.UUID) error
}

// CleanupLogRepositoryInterface defines the interface for cleanup log repository operations
type CleanupLogRepositoryInterface interface {
	Create(log *models.CleanupLog) error
	GetRecent(limit int) ([]models.CleanupLog, error)
}
