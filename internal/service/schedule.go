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

// ScheduleService handles assignment CRUD with rule validation, day copies
// and the time slot grid
type ScheduleService struct {
	assignmentRepo repository.AssignmentRepositoryInterface
	employeeRepo   repository.EmployeeRepositoryInterface
	jobFuncRepo    repository.JobFunctionRepositoryInterface
	shiftRepo      repository.ShiftRepositoryInterface
	trainingRepo   repository.TrainingRecordRepositoryInterface
	validator      *validator.Validate

	gridStartHour int
	gridEndHour   int
}

// NewScheduleService creates a new schedule service. The grid hours bound the
// display slot range.
func NewScheduleService(
	assignmentRepo repository.AssignmentRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	jobFuncRepo repository.JobFunctionRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	trainingRepo repository.TrainingRecordRepositoryInterface,
	validator *validator.Validate,
	gridStartHour, gridEndHour int,
) *ScheduleService {
	return &ScheduleService{
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		jobFuncRepo:    jobFuncRepo,
		shiftRepo:      shiftRepo,
		trainingRepo:   trainingRepo,
		validator:      validator,
		gridStartHour:  gridStartHour,
		gridEndHour:    gridEndHour,
	}
}

// CreateAssignmentRequest represents the request to create an assignment
type CreateAssignmentRequest struct {
	EmployeeID      uuid.UUID `json:"employee_id" validate:"required"`
	JobFunctionID   uuid.UUID `json:"job_function_id" validate:"required"`
	ShiftID         uuid.UUID `json:"shift_id" validate:"required"`
	ScheduleDate    string    `json:"schedule_date" validate:"required"`
	StartTime       string    `json:"start_time" validate:"required"`
	EndTime         string    `json:"end_time" validate:"required"`
	AssignmentOrder int       `json:"assignment_order"`
}

// UpdateAssignmentRequest represents the request to update an assignment
type UpdateAssignmentRequest struct {
	JobFunctionID   *uuid.UUID `json:"job_function_id,omitempty"`
	ShiftID         *uuid.UUID `json:"shift_id,omitempty"`
	StartTime       *string    `json:"start_time,omitempty"`
	EndTime         *string    `json:"end_time,omitempty"`
	AssignmentOrder *int       `json:"assignment_order,omitempty"`
}

// ValidateAssignmentRequest checks a candidate assignment without persisting
// anything. An ID may be supplied so an in-place edit skips itself in the
// overlap check.
type ValidateAssignmentRequest struct {
	ID            uuid.UUID `json:"id,omitempty"`
	EmployeeID    uuid.UUID `json:"employee_id" validate:"required"`
	JobFunctionID uuid.UUID `json:"job_function_id" validate:"required"`
	ScheduleDate  string    `json:"schedule_date" validate:"required"`
	StartTime     string    `json:"start_time" validate:"required"`
	EndTime       string    `json:"end_time" validate:"required"`
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID              uuid.UUID `json:"id"`
	EmployeeID      uuid.UUID `json:"employee_id"`
	EmployeeName    string    `json:"employee_name,omitempty"`
	JobFunctionID   uuid.UUID `json:"job_function_id"`
	JobFunctionName string    `json:"job_function_name,omitempty"`
	ShiftID         uuid.UUID `json:"shift_id"`
	ShiftName       string    `json:"shift_name,omitempty"`
	ScheduleDate    string    `json:"schedule_date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	AssignmentOrder int       `json:"assignment_order"`
}

// DayScheduleResponse is one calendar day's schedule plus the display grid
type DayScheduleResponse struct {
	Date        string                `json:"date"`
	Assignments []AssignmentResponse  `json:"assignments"`
	TimeSlots   []scheduling.TimeSlot `json:"time_slots"`
}

// CopyDayResponse reports the outcome of a schedule day copy
type CopyDayResponse struct {
	SourceDate string `json:"source_date"`
	TargetDate string `json:"target_date"`
	Copied     int    `json:"copied"`
}

// parseDate parses a wire-format calendar date
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(models.DateFormat, value)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDateFormat
	}
	return date, nil
}

// Validate runs the assignment rules against a candidate without writing
// anything. The result lists every violation, not just the first.
func (s *ScheduleService) Validate(req *ValidateAssignmentRequest) (*scheduling.ValidationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := parseDate(req.ScheduleDate)
	if err != nil {
		return nil, err
	}

	candidate := &models.ScheduleAssignment{
		EmployeeID:    req.EmployeeID,
		JobFunctionID: req.JobFunctionID,
		ScheduleDate:  date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}
	candidate.ID = req.ID

	result, err := s.runRules(candidate)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateAssignment validates and persists a new assignment. A rule violation
// is not an error: the result carries the violations and no row is written,
// so the caller can surface them to the operator.
func (s *ScheduleService) CreateAssignment(req *CreateAssignmentRequest) (*AssignmentResponse, *scheduling.ValidationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := parseDate(req.ScheduleDate)
	if err != nil {
		return nil, nil, err
	}

	employee, err := s.employeeRepo.GetByID(req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrEmployeeNotFound
		}
		return nil, nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if !employee.IsActive {
		return nil, nil, apperrors.ErrEmployeeInactive
	}

	jf, err := s.jobFuncRepo.GetByID(req.JobFunctionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrJobFunctionNotFound
		}
		return nil, nil, fmt.Errorf("failed to get job function: %w", err)
	}
	if !jf.IsActive {
		return nil, nil, apperrors.ErrJobFunctionInactive
	}

	if _, err := s.shiftRepo.GetByID(req.ShiftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrShiftNotFound
		}
		return nil, nil, fmt.Errorf("failed to get shift: %w", err)
	}

	assignment := &models.ScheduleAssignment{
		EmployeeID:      req.EmployeeID,
		JobFunctionID:   req.JobFunctionID,
		ShiftID:         req.ShiftID,
		ScheduleDate:    date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		AssignmentOrder: req.AssignmentOrder,
	}

	result, err := s.runRules(assignment)
	if err != nil {
		return nil, nil, err
	}
	if !result.Valid {
		return nil, result, nil
	}

	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.loadResponse(assignment.ID)
}

// UpdateAssignment validates and persists changes to an existing assignment.
// The assignment itself is excluded from the overlap check so shrinking or
// shifting its own span never self-conflicts.
func (s *ScheduleService) UpdateAssignment(id uuid.UUID, req *UpdateAssignmentRequest) (*AssignmentResponse, *scheduling.ValidationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, fmt.Errorf("validation failed: %w", err)
	}

	assignment, err := s.assignmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrAssignmentNotFound
		}
		return nil, nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	if req.JobFunctionID != nil {
		jf, err := s.jobFuncRepo.GetByID(*req.JobFunctionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperrors.ErrJobFunctionNotFound
			}
			return nil, nil, fmt.Errorf("failed to get job function: %w", err)
		}
		if !jf.IsActive {
			return nil, nil, apperrors.ErrJobFunctionInactive
		}
		assignment.JobFunctionID = *req.JobFunctionID
	}
	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(*req.ShiftID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperrors.ErrShiftNotFound
			}
			return nil, nil, fmt.Errorf("failed to get shift: %w", err)
		}
		assignment.ShiftID = *req.ShiftID
	}
	if req.StartTime != nil {
		assignment.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		assignment.EndTime = *req.EndTime
	}
	if req.AssignmentOrder != nil {
		assignment.AssignmentOrder = *req.AssignmentOrder
	}

	result, err := s.runRules(assignment)
	if err != nil {
		return nil, nil, err
	}
	if !result.Valid {
		return nil, result, nil
	}

	// Clear preloads so Save only writes the assignment row
	assignment.Employee = models.Employee{}
	assignment.JobFunction = models.JobFunction{}
	assignment.Shift = models.Shift{}
	if err := s.assignmentRepo.Update(assignment); err != nil {
		return nil, nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	return s.loadResponse(assignment.ID)
}

// DeleteAssignment deletes an assignment
func (s *ScheduleService) DeleteAssignment(id uuid.UUID) error {
	if _, err := s.assignmentRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := s.assignmentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// GetDay retrieves a team's schedule for one date together with the display
// slot grid built from the active shifts
func (s *ScheduleService) GetDay(teamID uuid.UUID, dateStr string) (*DayScheduleResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetByDate(teamID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	shifts, err := s.shiftRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active shifts: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *s.toResponse(&assignments[i])
	}

	return &DayScheduleResponse{
		Date:        dateStr,
		Assignments: responses,
		TimeSlots:   scheduling.GenerateTimeSlots(s.gridStartHour, s.gridEndHour, shifts),
	}, nil
}

// GetTimeSlots returns the display slot grid classified against the active
// shifts
func (s *ScheduleService) GetTimeSlots() ([]scheduling.TimeSlot, error) {
	shifts, err := s.shiftRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active shifts: %w", err)
	}
	return scheduling.GenerateTimeSlots(s.gridStartHour, s.gridEndHour, shifts), nil
}

// CopyDay replicates a team's schedule from one date onto another, replacing
// the target day's contents. An empty source day is rejected rather than
// silently wiping the target.
func (s *ScheduleService) CopyDay(teamID uuid.UUID, sourceStr, targetStr string) (*CopyDayResponse, error) {
	source, err := parseDate(sourceStr)
	if err != nil {
		return nil, err
	}
	target, err := parseDate(targetStr)
	if err != nil {
		return nil, err
	}
	if source.Equal(target) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	sourceAssignments, err := s.assignmentRepo.GetByDate(teamID, source)
	if err != nil {
		return nil, fmt.Errorf("failed to get source assignments: %w", err)
	}
	if len(sourceAssignments) == 0 {
		return nil, apperrors.ErrNothingToCopy
	}

	copied, err := s.assignmentRepo.CopyToDate(teamID, source, target)
	if err != nil {
		return nil, fmt.Errorf("failed to copy schedule: %w", err)
	}

	return &CopyDayResponse{
		SourceDate: sourceStr,
		TargetDate: targetStr,
		Copied:     copied,
	}, nil
}

// ClearDay removes a team's schedule for one date and returns the number of
// assignments removed
func (s *ScheduleService) ClearDay(teamID uuid.UUID, dateStr string) (int64, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return 0, err
	}

	deleted, err := s.assignmentRepo.DeleteByDate(teamID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to clear schedule: %w", err)
	}
	return deleted, nil
}

// runRules gathers the validation inputs and runs the assignment rules. The
// employee's other assignments on the date are re-read so the overlap check
// always sees the current schedule.
func (s *ScheduleService) runRules(candidate *models.ScheduleAssignment) (*scheduling.ValidationResult, error) {
	existing, err := s.assignmentRepo.GetByEmployeeAndDate(candidate.EmployeeID, candidate.ScheduleDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing assignments: %w", err)
	}

	trainedIDs, err := s.trainingRepo.GetJobFunctionIDs(candidate.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get training records: %w", err)
	}

	catalog, err := s.jobFuncRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get job function catalog: %w", err)
	}

	result := scheduling.ValidateAssignment(candidate, existing, trainedIDs, catalog)
	return &result, nil
}

// loadResponse re-reads an assignment so the response carries the related
// names
func (s *ScheduleService) loadResponse(id uuid.UUID) (*AssignmentResponse, *scheduling.ValidationResult, error) {
	assignment, err := s.assignmentRepo.GetByID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reload assignment: %w", err)
	}
	return s.toResponse(assignment), nil, nil
}

func (s *ScheduleService) toResponse(a *models.ScheduleAssignment) *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		JobFunctionID:   a.JobFunctionID,
		ShiftID:         a.ShiftID,
		ScheduleDate:    a.DateKey(),
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		AssignmentOrder: a.AssignmentOrder,
	}
	if a.Employee.ID != uuid.Nil {
		resp.EmployeeName = a.Employee.FirstName + " " + a.Employee.LastName
	}
	if a.JobFunction.ID != uuid.Nil {
		resp.JobFunctionName = a.JobFunction.Name
	}
	if a.Shift.ID != uuid.Nil {
		resp.ShiftName = a.Shift.Name
	}
	return resp
}
