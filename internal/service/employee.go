package service

import (
	"errors"
	"fmt"
	"time"

	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/repository"
	"shiftboard-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Training writes are verified by reading the persisted set back. A mismatch
// is retried with linear backoff before giving up.
const (
	trainingVerifyRetries = 3
	trainingVerifyBackoff = 200 * time.Millisecond
)

// EmployeeService handles business logic for employees and their training
type EmployeeService struct {
	repo         repository.EmployeeRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	trainingRepo repository.TrainingRecordRepositoryInterface
	validator    *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, teamRepo repository.TeamRepositoryInterface, trainingRepo repository.TrainingRecordRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		repo:         repo,
		teamRepo:     teamRepo,
		trainingRepo: trainingRepo,
		validator:    validator,
	}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	TeamID    uuid.UUID `json:"team_id" validate:"required"`
	FirstName string    `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string    `json:"last_name" validate:"required,min=1,max=100"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// UpdateTrainingRequest replaces an employee's full training set. IDs may
// include legacy placeholders which are filtered out before persisting.
type UpdateTrainingRequest struct {
	JobFunctionIDs []string `json:"job_function_ids"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// TrainingResponse lists the job functions an employee is trained on
type TrainingResponse struct {
	EmployeeID     uuid.UUID   `json:"employee_id"`
	JobFunctionIDs []uuid.UUID `json:"job_function_ids"`
}

// Create creates a new employee
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	employee := &models.Employee{
		TeamID:    req.TeamID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}
	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.toResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return s.toResponse(employee), nil
}

// GetByTeam retrieves a team's employees with pagination
func (s *EmployeeService) GetByTeam(teamID uuid.UUID, page, pageSize int) (*EmployeeListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	employees, total, err := s.repo.GetByTeamID(teamID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *s.toResponse(&employees[i])
	}

	return &EmployeeListResponse{
		Employees: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates an employee
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.toResponse(employee), nil
}

// Delete deletes an employee
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// GetTraining retrieves the job function IDs an employee is trained on
func (s *EmployeeService) GetTraining(employeeID uuid.UUID) (*TrainingResponse, error) {
	if _, err := s.repo.GetByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	ids, err := s.trainingRepo.GetJobFunctionIDs(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get training records: %w", err)
	}

	return &TrainingResponse{EmployeeID: employeeID, JobFunctionIDs: ids}, nil
}

// UpdateTraining replaces an employee's training set. The incoming IDs are
// sanitized first (legacy placeholders and malformed entries dropped), then
// the persisted set is read back and compared; on mismatch the write is
// retried with growing backoff until the attempts are exhausted.
func (s *EmployeeService) UpdateTraining(employeeID uuid.UUID, req *UpdateTrainingRequest) (*TrainingResponse, error) {
	if _, err := s.repo.GetByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	wanted := scheduling.SanitizeTrainingIDs(req.JobFunctionIDs)

	var lastErr error
	for attempt := 1; attempt <= trainingVerifyRetries; attempt++ {
		if err := s.trainingRepo.Replace(employeeID, wanted); err != nil {
			lastErr = fmt.Errorf("failed to replace training records: %w", err)
		} else {
			persisted, err := s.trainingRepo.GetJobFunctionIDs(employeeID)
			if err != nil {
				lastErr = fmt.Errorf("failed to verify training records: %w", err)
			} else if sameIDSet(wanted, persisted) {
				return &TrainingResponse{EmployeeID: employeeID, JobFunctionIDs: persisted}, nil
			} else {
				lastErr = apperrors.ErrTrainingVerifyFailed
			}
		}

		if attempt < trainingVerifyRetries {
			time.Sleep(time.Duration(attempt) * trainingVerifyBackoff)
		}
	}

	return nil, lastErr
}

// sameIDSet compares two ID slices as sets
func sameIDSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}

func (s *EmployeeService) toResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        employee.ID,
		TeamID:    employee.TeamID,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		IsActive:  employee.IsActive,
	}
}
