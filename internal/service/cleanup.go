package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"
	"shiftboard-backend/internal/logger"
	"shiftboard-backend/internal/repository"

	"gopkg.in/yaml.v3"
)

// CleanupService sweeps schedule assignments older than the retention window.
// Purged rows can be exported to a YAML archive before deletion.
type CleanupService struct {
	assignmentRepo repository.AssignmentRepositoryInterface
	logRepo        repository.CleanupLogRepositoryInterface

	retentionDays    int
	retentionMinDays int
	exportOnCleanup  bool
	exportDir        string
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(assignmentRepo repository.AssignmentRepositoryInterface, logRepo repository.CleanupLogRepositoryInterface, retentionDays, retentionMinDays int, exportOnCleanup bool, exportDir string) *CleanupService {
	return &CleanupService{
		assignmentRepo:   assignmentRepo,
		logRepo:          logRepo,
		retentionDays:    retentionDays,
		retentionMinDays: retentionMinDays,
		exportOnCleanup:  exportOnCleanup,
		exportDir:        exportDir,
	}
}

// CleanupResult reports the outcome of one retention sweep
type CleanupResult struct {
	CutoffDate string `json:"cutoff_date"`
	Found      int    `json:"found"`
	Purged     int    `json:"purged"`
	ExportFile string `json:"export_file,omitempty"`
}

// CleanupLogResponse is one recorded sweep
type CleanupLogResponse struct {
	ID         string `json:"id"`
	CleanupAt  string `json:"cleanup_at"`
	CutoffDate string `json:"cutoff_date"`
	Found      int    `json:"found"`
	Purged     int    `json:"purged"`
	Notes      string `json:"notes"`
}

// archivedAssignment is the YAML export shape for one purged assignment
type archivedAssignment struct {
	ScheduleDate string `yaml:"schedule_date"`
	EmployeeName string `yaml:"employee_name"`
	JobFunction  string `yaml:"job_function"`
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
}

// Run performs one retention sweep. Assignments dated strictly before the
// cutoff are exported (when enabled) and deleted, and the sweep is recorded
// in the cleanup log. The sweep also runs with nothing to purge so the log
// shows it happened.
func (s *CleanupService) Run() (*CleanupResult, error) {
	if s.retentionDays < s.retentionMinDays {
		return nil, apperrors.ErrRetentionTooShort
	}

	now := time.Now()
	cutoff := now.AddDate(0, 0, -s.retentionDays)
	log := logger.New().WithField("cutoff", cutoff.Format(models.DateFormat))

	old, err := s.assignmentRepo.GetOlderThan(cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to collect old assignments: %w", err)
	}

	result := &CleanupResult{
		CutoffDate: cutoff.Format(models.DateFormat),
		Found:      len(old),
	}

	var notes string
	if len(old) > 0 {
		if s.exportOnCleanup {
			file, err := s.export(old, now)
			if err != nil {
				return nil, fmt.Errorf("failed to export old assignments: %w", err)
			}
			result.ExportFile = file
			notes = "exported to " + file
		}

		purged, err := s.assignmentRepo.DeleteOlderThan(cutoff)
		if err != nil {
			return nil, fmt.Errorf("failed to purge old assignments: %w", err)
		}
		result.Purged = int(purged)
	}

	entry := &models.CleanupLog{
		CleanupDate:       now,
		CutoffDate:        cutoff,
		AssignmentsFound:  result.Found,
		AssignmentsPurged: result.Purged,
		Notes:             notes,
	}
	if err := s.logRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to record cleanup: %w", err)
	}

	log.WithField("purged", result.Purged).Info("retention sweep completed")
	return result, nil
}

// GetRecentLogs retrieves the most recent sweep records
func (s *CleanupService) GetRecentLogs(limit int) ([]CleanupLogResponse, error) {
	if limit < 1 {
		limit = 20
	}

	logs, err := s.logRepo.GetRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get cleanup logs: %w", err)
	}

	responses := make([]CleanupLogResponse, len(logs))
	for i := range logs {
		responses[i] = CleanupLogResponse{
			ID:         logs[i].ID.String(),
			CleanupAt:  logs[i].CleanupDate.Format(time.RFC3339),
			CutoffDate: logs[i].CutoffDate.Format(models.DateFormat),
			Found:      logs[i].AssignmentsFound,
			Purged:     logs[i].AssignmentsPurged,
			Notes:      logs[i].Notes,
		}
	}
	return responses, nil
}

// export writes the purged assignments to a timestamped YAML archive
func (s *CleanupService) export(assignments []models.ScheduleAssignment, now time.Time) (string, error) {
	archived := make([]archivedAssignment, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		archived[i] = archivedAssignment{
			ScheduleDate: a.DateKey(),
			EmployeeName: a.Employee.FirstName + " " + a.Employee.LastName,
			JobFunction:  a.JobFunction.Name,
			StartTime:    a.StartTime,
			EndTime:      a.EndTime,
		}
	}

	data, err := yaml.Marshal(archived)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", err
	}
	file := filepath.Join(s.exportDir, fmt.Sprintf("schedule-archive-%s.yaml", now.Format("20060102-150405")))
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return "", err
	}
	return file, nil
}
