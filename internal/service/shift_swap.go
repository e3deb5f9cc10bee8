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

// ShiftSwapService handles business logic for single-day shift swaps
type ShiftSwapService struct {
	repo         repository.ShiftSwapRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	shiftRepo    repository.ShiftRepositoryInterface
	validator    *validator.Validate
}

// NewShiftSwapService creates a new shift swap service
func NewShiftSwapService(repo repository.ShiftSwapRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, shiftRepo repository.ShiftRepositoryInterface, validator *validator.Validate) *ShiftSwapService {
	return &ShiftSwapService{
		repo:         repo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		validator:    validator,
	}
}

// UpsertSwapRequest moves an employee onto another shift for one date.
// Repeating the call for the same employee and date overwrites the earlier
// swap.
type UpsertSwapRequest struct {
	EmployeeID      uuid.UUID `json:"employee_id" validate:"required"`
	SwapDate        string    `json:"swap_date" validate:"required"`
	OriginalShiftID uuid.UUID `json:"original_shift_id" validate:"required"`
	SwappedShiftID  uuid.UUID `json:"swapped_shift_id" validate:"required"`
	Notes           string    `json:"notes"`
}

// ShiftSwapResponse represents the response for shift swap operations
type ShiftSwapResponse struct {
	ID              uuid.UUID `json:"id"`
	EmployeeID      uuid.UUID `json:"employee_id"`
	SwapDate        string    `json:"swap_date"`
	OriginalShiftID uuid.UUID `json:"original_shift_id"`
	SwappedShiftID  uuid.UUID `json:"swapped_shift_id"`
	Notes           string    `json:"notes"`
}

// Upsert records or replaces an employee's shift swap for one date. A swap
// onto the same shift is meaningless and rejected.
func (s *ShiftSwapService) Upsert(req *UpsertSwapRequest) (*ShiftSwapResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.OriginalShiftID == req.SwappedShiftID {
		return nil, apperrors.NewValidationError("swapped_shift_id", "swapped shift must differ from the original shift")
	}

	date, err := parseDate(req.SwapDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	for _, shiftID := range []uuid.UUID{req.OriginalShiftID, req.SwappedShiftID} {
		if _, err := s.shiftRepo.GetByID(shiftID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrShiftNotFound
			}
			return nil, fmt.Errorf("failed to get shift: %w", err)
		}
	}

	swap := &models.ShiftSwap{
		EmployeeID:      req.EmployeeID,
		SwapDate:        date,
		OriginalShiftID: req.OriginalShiftID,
		SwappedShiftID:  req.SwappedShiftID,
		Notes:           req.Notes,
	}
	if err := s.repo.Upsert(swap); err != nil {
		return nil, fmt.Errorf("failed to upsert shift swap: %w", err)
	}

	return s.toResponse(swap), nil
}

// GetByTeamAndDate retrieves a team's shift swaps for one date
func (s *ShiftSwapService) GetByTeamAndDate(teamID uuid.UUID, dateStr string) ([]ShiftSwapResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	swaps, err := s.repo.GetByTeamAndDate(teamID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift swaps: %w", err)
	}

	responses := make([]ShiftSwapResponse, len(swaps))
	for i := range swaps {
		responses[i] = *s.toResponse(&swaps[i])
	}
	return responses, nil
}

// Delete deletes a shift swap, restoring the employee's usual shift.
// Deleting an already-removed swap is a no-op.
func (s *ShiftSwapService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift swap: %w", err)
	}
	return nil
}

func (s *ShiftSwapService) toResponse(swap *models.ShiftSwap) *ShiftSwapResponse {
	return &ShiftSwapResponse{
		ID:              swap.ID,
		EmployeeID:      swap.EmployeeID,
		SwapDate:        swap.SwapDate.Format(models.DateFormat),
		OriginalShiftID: swap.OriginalShiftID,
		SwappedShiftID:  swap.SwappedShiftID,
		Notes:           swap.Notes,
	}
}
