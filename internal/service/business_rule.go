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

// BusinessRuleService handles business logic for staffing window rules
type BusinessRuleService struct {
	repo      repository.BusinessRuleRepositoryInterface
	validator *validator.Validate
}

// NewBusinessRuleService creates a new business rule service
func NewBusinessRuleService(repo repository.BusinessRuleRepositoryInterface, validator *validator.Validate) *BusinessRuleService {
	return &BusinessRuleService{
		repo:      repo,
		validator: validator,
	}
}

// CreateBusinessRuleRequest represents the request to create a business rule
type CreateBusinessRuleRequest struct {
	JobFunctionName  string  `json:"job_function_name" validate:"required,max=100"`
	TimeSlotStart    string  `json:"time_slot_start" validate:"required"`
	TimeSlotEnd      string  `json:"time_slot_end" validate:"required"`
	MinStaff         int     `json:"min_staff" validate:"min=0"`
	MaxStaff         *int    `json:"max_staff,omitempty" validate:"omitempty,min=0"`
	BlockSizeMinutes int     `json:"block_size_minutes" validate:"omitempty,min=1"`
	Priority         int     `json:"priority"`
	Notes            string  `json:"notes"`
	FanOutEnabled    bool    `json:"fan_out_enabled"`
	FanOutPrefix     *string `json:"fan_out_prefix,omitempty" validate:"omitempty,max=50"`
}

// UpdateBusinessRuleRequest represents the request to update a business rule
type UpdateBusinessRuleRequest struct {
	JobFunctionName  *string `json:"job_function_name,omitempty" validate:"omitempty,max=100"`
	TimeSlotStart    *string `json:"time_slot_start,omitempty"`
	TimeSlotEnd      *string `json:"time_slot_end,omitempty"`
	MinStaff         *int    `json:"min_staff,omitempty" validate:"omitempty,min=0"`
	MaxStaff         *int    `json:"max_staff,omitempty" validate:"omitempty,min=0"`
	BlockSizeMinutes *int    `json:"block_size_minutes,omitempty" validate:"omitempty,min=1"`
	Priority         *int    `json:"priority,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	FanOutEnabled    *bool   `json:"fan_out_enabled,omitempty"`
	FanOutPrefix     *string `json:"fan_out_prefix,omitempty" validate:"omitempty,max=50"`
}

// BusinessRuleResponse represents the response for business rule operations
type BusinessRuleResponse struct {
	ID               uuid.UUID `json:"id"`
	JobFunctionName  string    `json:"job_function_name"`
	TimeSlotStart    string    `json:"time_slot_start"`
	TimeSlotEnd      string    `json:"time_slot_end"`
	MinStaff         int       `json:"min_staff"`
	MaxStaff         *int      `json:"max_staff,omitempty"`
	BlockSizeMinutes int       `json:"block_size_minutes"`
	Priority         int       `json:"priority"`
	IsActive         bool      `json:"is_active"`
	Notes            string    `json:"notes"`
	FanOutEnabled    bool      `json:"fan_out_enabled"`
	FanOutPrefix     *string   `json:"fan_out_prefix,omitempty"`
}

// BusinessRuleListResponse represents a paginated list of business rules
type BusinessRuleListResponse struct {
	Rules    []BusinessRuleResponse `json:"rules"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// Create creates a new business rule
func (s *BusinessRuleService) Create(req *CreateBusinessRuleRequest) (*BusinessRuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateRuleWindow(req.TimeSlotStart, req.TimeSlotEnd); err != nil {
		return nil, err
	}

	rule := &models.BusinessRule{
		JobFunctionName:  req.JobFunctionName,
		TimeSlotStart:    req.TimeSlotStart,
		TimeSlotEnd:      req.TimeSlotEnd,
		MinStaff:         req.MinStaff,
		MaxStaff:         req.MaxStaff,
		BlockSizeMinutes: req.BlockSizeMinutes,
		Priority:         req.Priority,
		IsActive:         true,
		Notes:            req.Notes,
		FanOutEnabled:    req.FanOutEnabled,
		FanOutPrefix:     req.FanOutPrefix,
	}
	if rule.BlockSizeMinutes == 0 {
		rule.BlockSizeMinutes = 15
	}
	if err := s.repo.Create(rule); err != nil {
		return nil, fmt.Errorf("failed to create business rule: %w", err)
	}

	return s.toResponse(rule), nil
}

// GetByID retrieves a business rule by ID
func (s *BusinessRuleService) GetByID(id uuid.UUID) (*BusinessRuleResponse, error) {
	rule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessRuleNotFound
		}
		return nil, fmt.Errorf("failed to get business rule: %w", err)
	}

	return s.toResponse(rule), nil
}

// GetAll retrieves all business rules with pagination
func (s *BusinessRuleService) GetAll(page, pageSize int) (*BusinessRuleListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	rules, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list business rules: %w", err)
	}

	responses := make([]BusinessRuleResponse, len(rules))
	for i := range rules {
		responses[i] = *s.toResponse(&rules[i])
	}

	return &BusinessRuleListResponse{
		Rules:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByJobFunctionName retrieves the rules matching one job function name
func (s *BusinessRuleService) GetByJobFunctionName(name string) ([]BusinessRuleResponse, error) {
	rules, err := s.repo.GetByJobFunctionName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get business rules: %w", err)
	}

	responses := make([]BusinessRuleResponse, len(rules))
	for i := range rules {
		responses[i] = *s.toResponse(&rules[i])
	}
	return responses, nil
}

// Update updates a business rule
func (s *BusinessRuleService) Update(id uuid.UUID, req *UpdateBusinessRuleRequest) (*BusinessRuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusinessRuleNotFound
		}
		return nil, fmt.Errorf("failed to get business rule: %w", err)
	}

	if req.JobFunctionName != nil {
		rule.JobFunctionName = *req.JobFunctionName
	}
	if req.TimeSlotStart != nil {
		rule.TimeSlotStart = *req.TimeSlotStart
	}
	if req.TimeSlotEnd != nil {
		rule.TimeSlotEnd = *req.TimeSlotEnd
	}
	if err := validateRuleWindow(rule.TimeSlotStart, rule.TimeSlotEnd); err != nil {
		return nil, err
	}

	if req.MinStaff != nil {
		rule.MinStaff = *req.MinStaff
	}
	if req.MaxStaff != nil {
		rule.MaxStaff = req.MaxStaff
	}
	if req.BlockSizeMinutes != nil {
		rule.BlockSizeMinutes = *req.BlockSizeMinutes
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		rule.Notes = *req.Notes
	}
	if req.FanOutEnabled != nil {
		rule.FanOutEnabled = *req.FanOutEnabled
	}
	if req.FanOutPrefix != nil {
		rule.FanOutPrefix = req.FanOutPrefix
	}

	if err := s.repo.Update(rule); err != nil {
		return nil, fmt.Errorf("failed to update business rule: %w", err)
	}

	return s.toResponse(rule), nil
}

// Delete deletes a business rule
func (s *BusinessRuleService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBusinessRuleNotFound
		}
		return fmt.Errorf("failed to get business rule: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete business rule: %w", err)
	}
	return nil
}

// validateRuleWindow rejects unparseable or inverted rule windows
func validateRuleWindow(start, end string) error {
	minutes, err := scheduling.DurationMinutes(start, end)
	if err != nil {
		return apperrors.NewValidationError("time_slot_start", err.Error())
	}
	if minutes <= 0 {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

func (s *BusinessRuleService) toResponse(rule *models.BusinessRule) *BusinessRuleResponse {
	return &BusinessRuleResponse{
		ID:               rule.ID,
		JobFunctionName:  rule.JobFunctionName,
		TimeSlotStart:    rule.TimeSlotStart,
		TimeSlotEnd:      rule.TimeSlotEnd,
		MinStaff:         rule.MinStaff,
		MaxStaff:         rule.MaxStaff,
		BlockSizeMinutes: rule.BlockSizeMinutes,
		Priority:         rule.Priority,
		IsActive:         rule.IsActive,
		Notes:            rule.Notes,
		FanOutEnabled:    rule.FanOutEnabled,
		FanOutPrefix:     rule.FanOutPrefix,
	}
}
