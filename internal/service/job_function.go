package service

import (
	"errors"
	"fmt"

	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/repository"
	"shiftboard-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobFunctionService handles business logic for job functions
type JobFunctionService struct {
	repo      repository.JobFunctionRepositoryInterface
	validator *validator.Validate
}

// NewJobFunctionService creates a new job function service
func NewJobFunctionService(repo repository.JobFunctionRepositoryInterface, validator *validator.Validate) *JobFunctionService {
	return &JobFunctionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateJobFunctionRequest represents the request to create a job function
type CreateJobFunctionRequest struct {
	Name             string   `json:"name" validate:"required,min=1,max=100"`
	ColorCode        string   `json:"color_code" validate:"omitempty,max=20"`
	ProductivityRate *float64 `json:"productivity_rate,omitempty" validate:"omitempty,min=0"`
	UnitOfMeasure    string   `json:"unit_of_measure" validate:"omitempty,max=50"`
	SortOrder        int      `json:"sort_order"`
}

// UpdateJobFunctionRequest represents the request to update a job function
type UpdateJobFunctionRequest struct {
	Name             *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ColorCode        *string  `json:"color_code,omitempty" validate:"omitempty,max=20"`
	ProductivityRate *float64 `json:"productivity_rate,omitempty" validate:"omitempty,min=0"`
	UnitOfMeasure    *string  `json:"unit_of_measure,omitempty" validate:"omitempty,max=50"`
	SortOrder        *int     `json:"sort_order,omitempty"`
	IsActive         *bool    `json:"is_active,omitempty"`
}

// JobFunctionResponse represents the response for job function operations
type JobFunctionResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	ColorCode        string    `json:"color_code"`
	ProductivityRate *float64  `json:"productivity_rate,omitempty"`
	UnitOfMeasure    string    `json:"unit_of_measure"`
	IsActive         bool      `json:"is_active"`
	SortOrder        int       `json:"sort_order"`
}

// JobFunctionListResponse represents a paginated list of job functions
type JobFunctionListResponse struct {
	JobFunctions []JobFunctionResponse `json:"job_functions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// GroupedJobFunctionResponse is a catalog entry where interchangeable meter
// stations collapse into one group
type GroupedJobFunctionResponse struct {
	JobFunctionResponse
	IsGroup          bool                  `json:"is_group"`
	IndividualMeters []JobFunctionResponse `json:"individual_meters,omitempty"`
}

// Create creates a new job function
func (s *JobFunctionService) Create(req *CreateJobFunctionRequest) (*JobFunctionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing job function by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrJobFunctionExists
	}

	jf := &models.JobFunction{
		Name:             req.Name,
		ColorCode:        req.ColorCode,
		ProductivityRate: req.ProductivityRate,
		UnitOfMeasure:    req.UnitOfMeasure,
		IsActive:         true,
		SortOrder:        req.SortOrder,
	}
	if err := s.repo.Create(jf); err != nil {
		return nil, fmt.Errorf("failed to create job function: %w", err)
	}

	return s.toResponse(jf), nil
}

// GetByID retrieves a job function by ID
func (s *JobFunctionService) GetByID(id uuid.UUID) (*JobFunctionResponse, error) {
	jf, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobFunctionNotFound
		}
		return nil, fmt.Errorf("failed to get job function: %w", err)
	}

	return s.toResponse(jf), nil
}

// GetAll retrieves all job functions with pagination
func (s *JobFunctionService) GetAll(page, pageSize int) (*JobFunctionListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	jfs, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list job functions: %w", err)
	}

	responses := make([]JobFunctionResponse, len(jfs))
	for i := range jfs {
		responses[i] = *s.toResponse(&jfs[i])
	}

	return &JobFunctionListResponse{
		JobFunctions: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// GetGroupedCatalog retrieves the active catalog with meter variants
// collapsed into a single group entry
func (s *JobFunctionService) GetGroupedCatalog() ([]GroupedJobFunctionResponse, error) {
	active, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active job functions: %w", err)
	}

	grouped := scheduling.GroupCatalog(active)
	responses := make([]GroupedJobFunctionResponse, len(grouped))
	for i := range grouped {
		responses[i] = GroupedJobFunctionResponse{
			JobFunctionResponse: *s.toResponse(&grouped[i].JobFunction),
			IsGroup:             grouped[i].IsGroup,
		}
		for j := range grouped[i].IndividualMeters {
			responses[i].IndividualMeters = append(responses[i].IndividualMeters,
				*s.toResponse(&grouped[i].IndividualMeters[j]))
		}
	}
	return responses, nil
}

// Update updates a job function
func (s *JobFunctionService) Update(id uuid.UUID, req *UpdateJobFunctionRequest) (*JobFunctionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	jf, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobFunctionNotFound
		}
		return nil, fmt.Errorf("failed to get job function: %w", err)
	}

	if req.Name != nil {
		jf.Name = *req.Name
	}
	if req.ColorCode != nil {
		jf.ColorCode = *req.ColorCode
	}
	if req.ProductivityRate != nil {
		jf.ProductivityRate = req.ProductivityRate
	}
	if req.UnitOfMeasure != nil {
		jf.UnitOfMeasure = *req.UnitOfMeasure
	}
	if req.SortOrder != nil {
		jf.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		jf.IsActive = *req.IsActive
	}

	if err := s.repo.Update(jf); err != nil {
		return nil, fmt.Errorf("failed to update job function: %w", err)
	}

	return s.toResponse(jf), nil
}

// Delete deletes a job function
func (s *JobFunctionService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobFunctionNotFound
		}
		return fmt.Errorf("failed to get job function: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete job function: %w", err)
	}
	return nil
}

func (s *JobFunctionService) toResponse(jf *models.JobFunction) *JobFunctionResponse {
	return &JobFunctionResponse{
		ID:               jf.ID,
		Name:             jf.Name,
		ColorCode:        jf.ColorCode,
		ProductivityRate: jf.ProductivityRate,
		UnitOfMeasure:    jf.UnitOfMeasure,
		IsActive:         jf.IsActive,
		SortOrder:        jf.SortOrder,
	}
}
