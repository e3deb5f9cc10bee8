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

// StaffingService computes staffing adequacy per job function and manages
// the daily unit targets the computation feeds on
type StaffingService struct {
	assignmentRepo repository.AssignmentRepositoryInterface
	jobFuncRepo    repository.JobFunctionRepositoryInterface
	targetRepo     repository.DailyTargetRepositoryInterface
	validator      *validator.Validate
}

// NewStaffingService creates a new staffing service
func NewStaffingService(
	assignmentRepo repository.AssignmentRepositoryInterface,
	jobFuncRepo repository.JobFunctionRepositoryInterface,
	targetRepo repository.DailyTargetRepositoryInterface,
	validator *validator.Validate,
) *StaffingService {
	return &StaffingService{
		assignmentRepo: assignmentRepo,
		jobFuncRepo:    jobFuncRepo,
		targetRepo:     targetRepo,
		validator:      validator,
	}
}

// UpsertTargetRequest sets the unit target for one job function on one date.
// Repeating the call overwrites the previous target.
type UpsertTargetRequest struct {
	JobFunctionID uuid.UUID `json:"job_function_id" validate:"required"`
	ScheduleDate  string    `json:"schedule_date" validate:"required"`
	TargetUnits   float64   `json:"target_units" validate:"min=0"`
}

// DailyTargetResponse represents the response for daily target operations
type DailyTargetResponse struct {
	ID            uuid.UUID `json:"id"`
	JobFunctionID uuid.UUID `json:"job_function_id"`
	ScheduleDate  string    `json:"schedule_date"`
	TargetUnits   float64   `json:"target_units"`
}

// JobFunctionStaffingResponse is one job function's computed adequacy for a
// date. Meter variants appear as a single entry under the grouped name with
// their hours pooled.
type JobFunctionStaffingResponse struct {
	JobFunctionID   uuid.UUID                `json:"job_function_id"`
	JobFunctionName string                   `json:"job_function_name"`
	IsGroup         bool                     `json:"is_group,omitempty"`
	TargetUnits     float64                  `json:"target_units"`
	RequiredHours   float64                  `json:"required_hours"`
	ScheduledHours  float64                  `json:"scheduled_hours"`
	Status          scheduling.StaffingLevel `json:"status"`
	StatusText      string                   `json:"status_text"`
	Percentage      int                      `json:"percentage"`
	Difference      float64                  `json:"difference"`
}

// StaffingSummaryResponse is the adequacy picture for one team and date
type StaffingSummaryResponse struct {
	Date         string                        `json:"date"`
	JobFunctions []JobFunctionStaffingResponse `json:"job_functions"`
}

// UpsertTarget creates or overwrites the unit target for a job function and
// date
func (s *StaffingService) UpsertTarget(req *UpsertTargetRequest) (*DailyTargetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := parseDate(req.ScheduleDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.jobFuncRepo.GetByID(req.JobFunctionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobFunctionNotFound
		}
		return nil, fmt.Errorf("failed to get job function: %w", err)
	}

	target := &models.DailyTarget{
		JobFunctionID: req.JobFunctionID,
		ScheduleDate:  date,
		TargetUnits:   req.TargetUnits,
	}
	if err := s.targetRepo.Upsert(target); err != nil {
		return nil, fmt.Errorf("failed to upsert daily target: %w", err)
	}

	return &DailyTargetResponse{
		ID:            target.ID,
		JobFunctionID: target.JobFunctionID,
		ScheduleDate:  target.ScheduleDate.Format(models.DateFormat),
		TargetUnits:   target.TargetUnits,
	}, nil
}

// GetTargets retrieves every daily target for one date
func (s *StaffingService) GetTargets(dateStr string) ([]DailyTargetResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	targets, err := s.targetRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily targets: %w", err)
	}

	responses := make([]DailyTargetResponse, len(targets))
	for i := range targets {
		responses[i] = DailyTargetResponse{
			ID:            targets[i].ID,
			JobFunctionID: targets[i].JobFunctionID,
			ScheduleDate:  targets[i].ScheduleDate.Format(models.DateFormat),
			TargetUnits:   targets[i].TargetUnits,
		}
	}
	return responses, nil
}

// GetSummary computes the staffing adequacy of every active job function for
// a team and date. Meter variants pool their scheduled hours, targets and
// rate under the grouped entry so the adequacy of "any meter" is judged as
// one pot. The summary is computed fresh from the current schedule and
// targets; nothing is persisted.
func (s *StaffingService) GetSummary(teamID uuid.UUID, dateStr string) (*StaffingSummaryResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	catalog, err := s.jobFuncRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get job function catalog: %w", err)
	}

	assignments, err := s.assignmentRepo.GetByDate(teamID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	targets, err := s.targetRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily targets: %w", err)
	}
	targetByJF := make(map[uuid.UUID]float64, len(targets))
	for i := range targets {
		targetByJF[targets[i].JobFunctionID] = targets[i].TargetUnits
	}

	grouped := scheduling.GroupCatalog(catalog)
	responses := make([]JobFunctionStaffingResponse, 0, len(grouped))
	for i := range grouped {
		entry := &grouped[i]

		members := []models.JobFunction{entry.JobFunction}
		if entry.IsGroup {
			members = entry.IndividualMeters
		}

		var scheduled, targetUnits float64
		for j := range members {
			hours, err := scheduling.ScheduledHours(assignments, members[j].ID)
			if err != nil {
				return nil, fmt.Errorf("failed to sum scheduled hours for %s: %w", members[j].Name, err)
			}
			scheduled += hours
			targetUnits += targetByJF[members[j].ID]
		}

		var rate float64
		if entry.ProductivityRate != nil {
			rate = *entry.ProductivityRate
		}
		required := scheduling.RequiredHours(targetUnits, rate)
		status := scheduling.CalculateStaffingStatus(scheduled, required)

		responses = append(responses, JobFunctionStaffingResponse{
			JobFunctionID:   entry.ID,
			JobFunctionName: entry.Name,
			IsGroup:         entry.IsGroup,
			TargetUnits:     targetUnits,
			RequiredHours:   required,
			ScheduledHours:  scheduled,
			Status:          status.Status,
			StatusText:      status.Status.DisplayText(),
			Percentage:      status.Percentage,
			Difference:      status.Difference,
		})
	}

	return &StaffingSummaryResponse{
		Date:         dateStr,
		JobFunctions: responses,
	}, nil
}
