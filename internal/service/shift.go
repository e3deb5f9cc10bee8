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

// ShiftService handles business logic for shifts
type ShiftService struct {
	repo      repository.ShiftRepositoryInterface
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftRepositoryInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repo:      repo,
		validator: validator,
	}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`

	Break1Start *string `json:"break_1_start,omitempty"`
	Break1End   *string `json:"break_1_end,omitempty"`
	Break2Start *string `json:"break_2_start,omitempty"`
	Break2End   *string `json:"break_2_end,omitempty"`
	LunchStart  *string `json:"lunch_start,omitempty"`
	LunchEnd    *string `json:"lunch_end,omitempty"`
}

// UpdateShiftRequest represents the request to update a shift
type UpdateShiftRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`

	Break1Start *string `json:"break_1_start,omitempty"`
	Break1End   *string `json:"break_1_end,omitempty"`
	Break2Start *string `json:"break_2_start,omitempty"`
	Break2End   *string `json:"break_2_end,omitempty"`
	LunchStart  *string `json:"lunch_start,omitempty"`
	LunchEnd    *string `json:"lunch_end,omitempty"`

	IsActive *bool `json:"is_active,omitempty"`
}

// ShiftResponse represents the response for shift operations
type ShiftResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`

	Break1Start *string `json:"break_1_start,omitempty"`
	Break1End   *string `json:"break_1_end,omitempty"`
	Break2Start *string `json:"break_2_start,omitempty"`
	Break2End   *string `json:"break_2_end,omitempty"`
	LunchStart  *string `json:"lunch_start,omitempty"`
	LunchEnd    *string `json:"lunch_end,omitempty"`

	IsActive bool `json:"is_active"`
}

// ShiftListResponse represents a paginated list of shifts
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// validateShiftTimes rejects unparseable or inverted shift bounds. Break
// windows may be half-specified; the classifier simply ignores those.
func validateShiftTimes(start, end string) error {
	minutes, err := scheduling.DurationMinutes(start, end)
	if err != nil {
		return apperrors.NewValidationError("start_time", err.Error())
	}
	if minutes <= 0 {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

// Create creates a new shift
func (s *ShiftService) Create(req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateShiftTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	shift := &models.Shift{
		Name:        req.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Break1Start: req.Break1Start,
		Break1End:   req.Break1End,
		Break2Start: req.Break2Start,
		Break2End:   req.Break2End,
		LunchStart:  req.LunchStart,
		LunchEnd:    req.LunchEnd,
		IsActive:    true,
	}
	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// GetByID retrieves a shift by ID
func (s *ShiftService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// GetAll retrieves all shifts with pagination
func (s *ShiftService) GetAll(page, pageSize int) (*ShiftListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	shifts, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *s.toResponse(&shifts[i])
	}

	return &ShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a shift
func (s *ShiftService) Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if err := validateShiftTimes(shift.StartTime, shift.EndTime); err != nil {
		return nil, err
	}

	if req.Break1Start != nil {
		shift.Break1Start = req.Break1Start
	}
	if req.Break1End != nil {
		shift.Break1End = req.Break1End
	}
	if req.Break2Start != nil {
		shift.Break2Start = req.Break2Start
	}
	if req.Break2End != nil {
		shift.Break2End = req.Break2End
	}
	if req.LunchStart != nil {
		shift.LunchStart = req.LunchStart
	}
	if req.LunchEnd != nil {
		shift.LunchEnd = req.LunchEnd
	}
	if req.IsActive != nil {
		shift.IsActive = *req.IsActive
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// Delete deletes a shift
func (s *ShiftService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func (s *ShiftService) toResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:          shift.ID,
		Name:        shift.Name,
		StartTime:   shift.StartTime,
		EndTime:     shift.EndTime,
		Break1Start: shift.Break1Start,
		Break1End:   shift.Break1End,
		Break2Start: shift.Break2Start,
		Break2End:   shift.Break2End,
		LunchStart:  shift.LunchStart,
		LunchEnd:    shift.LunchEnd,
		IsActive:    shift.IsActive,
	}
}
