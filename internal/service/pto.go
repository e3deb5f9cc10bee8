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

// PTOService handles business logic for paid time off
type PTOService struct {
	repo         repository.PTODayRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	validator    *validator.Validate
}

// NewPTOService creates a new PTO service
func NewPTOService(repo repository.PTODayRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, validator *validator.Validate) *PTOService {
	return &PTOService{
		repo:         repo,
		employeeRepo: employeeRepo,
		validator:    validator,
	}
}

// CreatePTORequest represents the request to record PTO. Partial-day PTO
// carries start and end times; the other types must not.
type CreatePTORequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	PTODate    string    `json:"pto_date" validate:"required"`
	PTOType    string    `json:"pto_type" validate:"required"`
	StartTime  *string   `json:"start_time,omitempty"`
	EndTime    *string   `json:"end_time,omitempty"`
	Notes      string    `json:"notes"`
}

// UpdatePTORequest represents the request to update a PTO record
type UpdatePTORequest struct {
	PTOType   *string `json:"pto_type,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// PTOResponse represents the response for PTO operations
type PTOResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	TeamID     uuid.UUID `json:"team_id"`
	PTODate    string    `json:"pto_date"`
	PTOType    string    `json:"pto_type"`
	StartTime  *string   `json:"start_time,omitempty"`
	EndTime    *string   `json:"end_time,omitempty"`
	Notes      string    `json:"notes"`
}

// PTOListResponse represents a paginated list of PTO records
type PTOListResponse struct {
	PTODays  []PTOResponse `json:"pto_days"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// validatePTOWindow enforces the type/time pairing: partial PTO needs a
// positive time window, every other type forbids one.
func validatePTOWindow(ptoType models.PTOType, start, end *string) error {
	if !ptoType.IsValid() {
		return apperrors.NewValidationError("pto_type", fmt.Sprintf("unknown PTO type %q", ptoType))
	}

	if ptoType != models.PTOTypePartial {
		if start != nil || end != nil {
			return apperrors.NewValidationError("start_time", "times are only allowed for partial PTO")
		}
		return nil
	}

	if start == nil || end == nil {
		return apperrors.NewValidationError("start_time", "partial PTO requires start and end times")
	}
	minutes, err := scheduling.DurationMinutes(*start, *end)
	if err != nil {
		return apperrors.NewValidationError("start_time", err.Error())
	}
	if minutes <= 0 {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

// Create records PTO for an employee
func (s *PTOService) Create(req *CreatePTORequest) (*PTOResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := parseDate(req.PTODate)
	if err != nil {
		return nil, err
	}

	ptoType := models.PTOType(req.PTOType)
	if err := validatePTOWindow(ptoType, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	pto := &models.PTODay{
		EmployeeID: req.EmployeeID,
		TeamID:     employee.TeamID,
		PTODate:    date,
		PTOType:    ptoType,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	}
	if err := s.repo.Create(pto); err != nil {
		return nil, fmt.Errorf("failed to create PTO record: %w", err)
	}

	return s.toResponse(pto), nil
}

// GetByID retrieves a PTO record by ID
func (s *PTOService) GetByID(id uuid.UUID) (*PTOResponse, error) {
	pto, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPTODayNotFound
		}
		return nil, fmt.Errorf("failed to get PTO record: %w", err)
	}

	return s.toResponse(pto), nil
}

// GetByTeamAndDate retrieves a team's PTO records for one date
func (s *PTOService) GetByTeamAndDate(teamID uuid.UUID, dateStr string) ([]PTOResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	ptos, err := s.repo.GetByTeamAndDate(teamID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get PTO records: %w", err)
	}

	responses := make([]PTOResponse, len(ptos))
	for i := range ptos {
		responses[i] = *s.toResponse(&ptos[i])
	}
	return responses, nil
}

// GetByEmployee retrieves one employee's PTO history with pagination
func (s *PTOService) GetByEmployee(employeeID uuid.UUID, page, pageSize int) (*PTOListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	ptos, total, err := s.repo.GetByEmployee(employeeID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list PTO records: %w", err)
	}

	responses := make([]PTOResponse, len(ptos))
	for i := range ptos {
		responses[i] = *s.toResponse(&ptos[i])
	}

	return &PTOListResponse{
		PTODays:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a PTO record
func (s *PTOService) Update(id uuid.UUID, req *UpdatePTORequest) (*PTOResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pto, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPTODayNotFound
		}
		return nil, fmt.Errorf("failed to get PTO record: %w", err)
	}

	if req.PTOType != nil {
		pto.PTOType = models.PTOType(*req.PTOType)
		if pto.PTOType != models.PTOTypePartial {
			pto.StartTime = nil
			pto.EndTime = nil
		}
	}
	if req.StartTime != nil {
		pto.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		pto.EndTime = req.EndTime
	}
	if req.Notes != nil {
		pto.Notes = *req.Notes
	}

	if err := validatePTOWindow(pto.PTOType, pto.StartTime, pto.EndTime); err != nil {
		return nil, err
	}

	if err := s.repo.Update(pto); err != nil {
		return nil, fmt.Errorf("failed to update PTO record: %w", err)
	}

	return s.toResponse(pto), nil
}

// Delete deletes a PTO record
func (s *PTOService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPTODayNotFound
		}
		return fmt.Errorf("failed to get PTO record: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete PTO record: %w", err)
	}
	return nil
}

func (s *PTOService) toResponse(pto *models.PTODay) *PTOResponse {
	return &PTOResponse{
		ID:         pto.ID,
		EmployeeID: pto.EmployeeID,
		TeamID:     pto.TeamID,
		PTODate:    pto.PTODate.Format(models.DateFormat),
		PTOType:    string(pto.PTOType),
		StartTime:  pto.StartTime,
		EndTime:    pto.EndTime,
		Notes:      pto.Notes,
	}
}
