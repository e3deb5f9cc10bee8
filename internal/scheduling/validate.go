package scheduling

import (
	"github.com/google/uuid"

	"shiftboard-backend/internal/database/models"
)

// Validation rule messages, surfaced verbatim to the caller.
const (
	ErrNotTrained        = "Employee is not trained in this job function"
	ErrNotTrainedOnMeter = "Employee is not trained on any meter"
	ErrTooShort          = "Assignment duration must be at least 30 minutes"
	ErrDoubleBooked      = "Employee is already assigned to another job during this time"
	ErrMalformedTime     = "Assignment start or end time is malformed"
)

// MinAssignmentMinutes is the shortest legal assignment span.
const MinAssignmentMinutes = 30

// ValidationResult reports every rule violation of a candidate assignment.
// Validation never aborts on the first failure: all applicable rules run and
// all violations are collected, so a single pass tells the caller everything
// that is wrong.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateAssignment checks a candidate assignment against three independent
// rules: training eligibility (with meter-group equivalence when the catalog
// is supplied), minimum duration, and no same-employee same-date overlap.
//
// The catalog may be nil, in which case meter variants cannot be recognized
// and training falls back to exact id matching. Existing assignments for
// other employees or other dates never conflict. An existing assignment with
// the candidate's own id is skipped so an in-place edit can re-validate.
func ValidateAssignment(candidate *models.ScheduleAssignment, existing []models.ScheduleAssignment, trainedIDs []uuid.UUID, catalog []models.JobFunction) ValidationResult {
	var errs []string

	if msg := checkTraining(candidate, trainedIDs, catalog); msg != "" {
		errs = append(errs, msg)
	}

	startMin, startErr := TimeToMinutes(candidate.StartTime)
	endMin, endErr := TimeToMinutes(candidate.EndTime)
	if startErr != nil || endErr != nil {
		errs = append(errs, ErrMalformedTime)
	} else {
		if endMin-startMin < MinAssignmentMinutes {
			errs = append(errs, ErrTooShort)
		}
		if hasTimeConflict(candidate, existing, startMin, endMin) {
			errs = append(errs, ErrDoubleBooked)
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// checkTraining implements the training eligibility rule. Returns the error
// message for a violation, or "" when the rule passes.
func checkTraining(candidate *models.ScheduleAssignment, trainedIDs []uuid.UUID, catalog []models.JobFunction) string {
	trained := make(map[uuid.UUID]struct{}, len(trainedIDs))
	for _, id := range trainedIDs {
		trained[id] = struct{}{}
	}

	if len(catalog) > 0 {
		byID := make(map[uuid.UUID]*models.JobFunction, len(catalog))
		for i := range catalog {
			byID[catalog[i].ID] = &catalog[i]
		}

		if jf, ok := byID[candidate.JobFunctionID]; ok && (IsMeterFunction(jf.Name) || jf.Name == MeterGroupName) {
			// Trained on any meter variant counts as trained on all of them.
			for _, meterID := range MeterVariantIDs(catalog) {
				if _, ok := trained[meterID]; ok {
					return ""
				}
			}
			return ErrNotTrainedOnMeter
		}
	}

	if _, ok := trained[candidate.JobFunctionID]; !ok {
		return ErrNotTrained
	}
	return ""
}

// hasTimeConflict reports whether the candidate's [start, end) span overlaps
// any existing assignment for the same employee on the same calendar date.
// Touching boundaries (end == start) are not an overlap.
func hasTimeConflict(candidate *models.ScheduleAssignment, existing []models.ScheduleAssignment, startMin, endMin int) bool {
	for i := range existing {
		other := &existing[i]
		if other.ID != uuid.Nil && other.ID == candidate.ID {
			continue // editing in place
		}
		if other.EmployeeID != candidate.EmployeeID {
			continue
		}
		if other.DateKey() != candidate.DateKey() {
			continue
		}

		otherStart, err := TimeToMinutes(other.StartTime)
		if err != nil {
			continue
		}
		otherEnd, err := TimeToMinutes(other.EndTime)
		if err != nil {
			continue
		}

		// Covers partial overlap from either side and full containment in
		// either direction.
		if (startMin >= otherStart && startMin < otherEnd) ||
			(endMin > otherStart && endMin <= otherEnd) ||
			(startMin <= otherStart && endMin >= otherEnd) {
			return true
		}
	}
	return false
}
