package scheduling

import (
	"math"

	"github.com/google/uuid"

	"shiftboard-backend/internal/database/models"
)

// StaffingLevel is one of the four staffing adequacy tiers
type StaffingLevel string

const (
	StaffingCritical     StaffingLevel = "understaffed-critical"
	StaffingUnderstaffed StaffingLevel = "understaffed"
	StaffingAdequate     StaffingLevel = "adequate"
	StaffingOverstaffed  StaffingLevel = "overstaffed"
)

// DisplayText returns the operator-facing label for a staffing level.
func (s StaffingLevel) DisplayText() string {
	switch s {
	case StaffingCritical:
		return "Critical - Need more staff"
	case StaffingUnderstaffed:
		return "Understaffed"
	case StaffingAdequate:
		return "Adequately Staffed"
	case StaffingOverstaffed:
		return "Overstaffed"
	}
	return "Unknown"
}

// StaffingStatus is the computed adequacy of a job function's staffing for
// one date. It is derived fresh on every query and never persisted.
type StaffingStatus struct {
	Status     StaffingLevel `json:"status"`
	Percentage int           `json:"percentage"` // rounded for reporting
	Difference float64       `json:"difference"` // scheduled - required, one decimal
}

// RequiredHours converts a target unit count and a productivity rate into
// labor hours. A zero or undefined rate means "no requirement", not an
// infinite one: the result is exactly 0, never a division by zero.
func RequiredHours(targetUnits, productivityRate float64) float64 {
	if productivityRate == 0 {
		return 0
	}
	return targetUnits / productivityRate
}

// ScheduledHours sums the duration, in hours, of every assignment on the
// given job function. Malformed assignment times surface as an error.
func ScheduledHours(assignments []models.ScheduleAssignment, jobFunctionID uuid.UUID) (float64, error) {
	var total float64
	for i := range assignments {
		a := &assignments[i]
		if a.JobFunctionID != jobFunctionID {
			continue
		}
		minutes, err := DurationMinutes(a.StartTime, a.EndTime)
		if err != nil {
			return 0, err
		}
		total += float64(minutes) / 60
	}
	return total, nil
}

// CalculateStaffingStatus classifies scheduled against required hours.
//
// Tier boundaries apply to the unrounded percentage: below 80 is critical,
// [80, 95) understaffed, [95, 105] adequate, above 105 overstaffed. The
// adequate band is closed on both ends, so exactly 105% is still adequate.
// Zero required hours is always adequate: no demand means any staffing
// suffices.
func CalculateStaffingStatus(scheduledHours, requiredHours float64) StaffingStatus {
	if requiredHours == 0 {
		return StaffingStatus{
			Status:     StaffingAdequate,
			Percentage: 100,
			Difference: 0,
		}
	}

	percentage := scheduledHours / requiredHours * 100
	difference := scheduledHours - requiredHours

	var status StaffingLevel
	switch {
	case percentage < 80:
		status = StaffingCritical
	case percentage < 95:
		status = StaffingUnderstaffed
	case percentage <= 105:
		status = StaffingAdequate
	default:
		status = StaffingOverstaffed
	}

	return StaffingStatus{
		Status:     status,
		Percentage: int(math.Round(percentage)),
		Difference: math.Round(difference*10) / 10,
	}
}
