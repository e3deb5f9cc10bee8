package service

import (
	"errors"
	"fmt"

	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreferredAssignmentService handles business logic for placement hints
type PreferredAssignmentService struct {
	repo         repository.PreferredAssignmentRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	jobFuncRepo  repository.JobFunctionRepositoryInterface
	validator    *validator.Validate
}

// NewPreferredAssignmentService creates a new preferred assignment service
func NewPreferredAssignmentService(repo repository.PreferredAssignmentRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, jobFuncRepo repository.JobFunctionRepositoryInterface, validator *validator.Validate) *PreferredAssignmentService {
	return &PreferredAssignmentService{
		repo:         repo,
		employeeRepo: employeeRepo,
		jobFuncRepo:  jobFuncRepo,
		validator:    validator,
	}
}

// CreatePreferredAssignmentRequest represents the request to create a
// placement hint
type CreatePreferredAssignmentRequest struct {
	EmployeeID    uuid.UUID `json:"employee_id" validate:"required"`
	JobFunctionID uuid.UUID `json:"job_function_id" validate:"required"`
	IsRequired    bool      `json:"is_required"`
	Priority      int       `json:"priority"`
	Notes         string    `json:"notes"`
}

// UpdatePreferredAssignmentRequest represents the request to update a
// placement hint
type UpdatePreferredAssignmentRequest struct {
	IsRequired *bool   `json:"is_required,omitempty"`
	Priority   *int    `json:"priority,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// PreferredAssignmentResponse represents the response for placement hint
// operations
type PreferredAssignmentResponse struct {
	ID            uuid.UUID `json:"id"`
	EmployeeID    uuid.UUID `json:"employee_id"`
	JobFunctionID uuid.UUID `json:"job_function_id"`
	IsRequired    bool      `json:"is_required"`
	Priority      int       `json:"priority"`
	Notes         string    `json:"notes"`
}

// PreferredAssignmentListResponse represents a paginated list of placement
// hints
type PreferredAssignmentListResponse struct {
	Preferences []PreferredAssignmentResponse `json:"preferences"`
	Total       int64                         `json:"total"`
	Page        int                           `json:"page"`
	PageSize    int                           `json:"page_size"`
}

// Create creates a new placement hint. The employee-function pair is unique;
// a duplicate surfaces as an already-exists error.
func (s *PreferredAssignmentService) Create(req *CreatePreferredAssignmentRequest) (*PreferredAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.employeeRepo.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if _, err := s.jobFuncRepo.GetByID(req.JobFunctionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobFunctionNotFound
		}
		return nil, fmt.Errorf("failed to get job function: %w", err)
	}

	existing, err := s.repo.GetByEmployee(req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing preferences: %w", err)
	}
	for i := range existing {
		if existing[i].JobFunctionID == req.JobFunctionID {
			return nil, apperrors.ErrPreferredAssignmentExists
		}
	}

	pref := &models.PreferredAssignment{
		EmployeeID:    req.EmployeeID,
		JobFunctionID: req.JobFunctionID,
		IsRequired:    req.IsRequired,
		Priority:      req.Priority,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(pref); err != nil {
		return nil, fmt.Errorf("failed to create preferred assignment: %w", err)
	}

	return s.toResponse(pref), nil
}

// GetAll retrieves all placement hints with pagination
func (s *PreferredAssignmentService) GetAll(page, pageSize int) (*PreferredAssignmentListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	prefs, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferred assignments: %w", err)
	}

	responses := make([]PreferredAssignmentResponse, len(prefs))
	for i := range prefs {
		responses[i] = *s.toResponse(&prefs[i])
	}

	return &PreferredAssignmentListResponse{
		Preferences: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// GetByEmployee retrieves one employee's placement hints
func (s *PreferredAssignmentService) GetByEmployee(employeeID uuid.UUID) ([]PreferredAssignmentResponse, error) {
	prefs, err := s.repo.GetByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferred assignments: %w", err)
	}

	responses := make([]PreferredAssignmentResponse, len(prefs))
	for i := range prefs {
		responses[i] = *s.toResponse(&prefs[i])
	}
	return responses, nil
}

// Update updates a placement hint
func (s *PreferredAssignmentService) Update(id uuid.UUID, req *UpdatePreferredAssignmentRequest) (*PreferredAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pref, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPreferredAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get preferred assignment: %w", err)
	}

	if req.IsRequired != nil {
		pref.IsRequired = *req.IsRequired
	}
	if req.Priority != nil {
		pref.Priority = *req.Priority
	}
	if req.Notes != nil {
		pref.Notes = *req.Notes
	}

	// Clear preloads so Save only writes the preference row
	pref.Employee = models.Employee{}
	pref.JobFunction = models.JobFunction{}
	if err := s.repo.Update(pref); err != nil {
		return nil, fmt.Errorf("failed to update preferred assignment: %w", err)
	}

	return s.toResponse(pref), nil
}

// Delete deletes a placement hint
func (s *PreferredAssignmentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPreferredAssignmentNotFound
		}
		return fmt.Errorf("failed to get preferred assignment: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete preferred assignment: %w", err)
	}
	return nil
}

func (s *PreferredAssignmentService) toResponse(pref *models.PreferredAssignment) *PreferredAssignmentResponse {
	return &PreferredAssignmentResponse{
		ID:            pref.ID,
		EmployeeID:    pref.EmployeeID,
		JobFunctionID: pref.JobFunctionID,
		IsRequired:    pref.IsRequired,
		Priority:      pref.Priority,
		Notes:         pref.Notes,
	}
}
