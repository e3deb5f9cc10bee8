package service

import (
	"shiftboard-backend/internal/scheduling"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetAll(page, pageSize int) (*TeamListResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeResponse, error)
	GetByTeam(teamID uuid.UUID, page, pageSize int) (*EmployeeListResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
	GetTraining(employeeID uuid.UUID) (*TrainingResponse, error)
	UpdateTraining(employeeID uuid.UUID, req *UpdateTrainingRequest) (*TrainingResponse, error)
}

// JobFunctionServiceInterface defines the interface for job function service
type JobFunctionServiceInterface interface {
	Create(req *CreateJobFunctionRequest) (*JobFunctionResponse, error)
	GetByID(id uuid.UUID) (*JobFunctionResponse, error)
	GetAll(page, pageSize int) (*JobFunctionListResponse, error)
	GetGroupedCatalog() ([]GroupedJobFunctionResponse, error)
	Update(id uuid.UUID, req *UpdateJobFunctionRequest) (*JobFunctionResponse, error)
	Delete(id uuid.UUID) error
}

// ShiftServiceInterface defines the interface for shift service
type ShiftServiceInterface interface {
	Create(req *CreateShiftRequest) (*ShiftResponse, error)
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	GetAll(page, pageSize int) (*ShiftListResponse, error)
	Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error)
	Delete(id uuid.UUID) error
}

// ScheduleServiceInterface defines the interface for schedule service
type ScheduleServiceInterface interface {
	Validate(req *ValidateAssignmentRequest) (*scheduling.ValidationResult, error)
	CreateAssignment(req *CreateAssignmentRequest) (*AssignmentResponse, *scheduling.ValidationResult, error)
	UpdateAssignment(id uuid.UUID, req *UpdateAssignmentRequest) (*AssignmentResponse, *scheduling.ValidationResult, error)
	DeleteAssignment(id uuid.UUID) error
	GetDay(teamID uuid.UUID, dateStr string) (*DayScheduleResponse, error)
	GetTimeSlots() ([]scheduling.TimeSlot, error)
	CopyDay(teamID uuid.UUID, sourceStr, targetStr string) (*CopyDayResponse, error)
	ClearDay(teamID uuid.UUID, dateStr string) (int64, error)
}

// StaffingServiceInterface defines the interface for staffing service
type StaffingServiceInterface interface {
	UpsertTarget(req *UpsertTargetRequest) (*DailyTargetResponse, error)
	GetTargets(dateStr string) ([]DailyTargetResponse, error)
	GetSummary(teamID uuid.UUID, dateStr string) (*StaffingSummaryResponse, error)
}

// PTOServiceInterface defines the interface for PTO service
type PTOServiceInterface interface {
	Create(req *CreatePTORequest) (*PTOResponse, error)
	GetByID(id uuid.UUID) (*PTOResponse, error)
	GetByTeamAndDate(teamID uuid.UUID, dateStr string) ([]PTOResponse, error)
	GetByEmployee(employeeID uuid.UUID, page, pageSize int) (*PTOListResponse, error)
	Update(id uuid.UUID, req *UpdatePTORequest) (*PTOResponse, error)
	Delete(id uuid.UUID) error
}

// ShiftSwapServiceInterface defines the interface for shift swap service
type ShiftSwapServiceInterface interface {
	Upsert(req *UpsertSwapRequest) (*ShiftSwapResponse, error)
	GetByTeamAndDate(teamID uuid.UUID, dateStr string) ([]ShiftSwapResponse, error)
	Delete(id uuid.UUID) error
}

// BusinessRuleServiceInterface defines the interface for business rule service
type BusinessRuleServiceInterface interface {
	Create(req *CreateBusinessRuleRequest) (*BusinessRuleResponse, error)
	GetByID(id uuid.UUID) (*BusinessRuleResponse, error)
	GetAll(page, pageSize int) (*BusinessRuleListResponse, error)
	GetByJobFunctionName(name string) ([]BusinessRuleResponse, error)
	Update(id uuid.UUID, req *UpdateBusinessRuleRequest) (*BusinessRuleResponse, error)
	Delete(id uuid.UUID) error
}

// PreferredAssignmentServiceInterface defines the interface for preferred assignment service
type PreferredAssignmentServiceInterface interface {
	Create(req *CreatePreferredAssignmentRequest) (*PreferredAssignmentResponse, error)
	GetAll(page, pageSize int) (*PreferredAssignmentListResponse, error)
	GetByEmployee(employeeID uuid.UUID) ([]PreferredAssignmentResponse, error)
	Update(id uuid.UUID, req *UpdatePreferredAssignmentRequest) (*PreferredAssignmentResponse, error)
	Delete(id uuid.UUID) error
}

// CleanupServiceInterface defines the interface for cleanup service
type CleanupServiceInterface interface {
	Run() (*CleanupResult, error)
	GetRecentLogs(limit int) ([]CleanupLogResponse, error)
}
