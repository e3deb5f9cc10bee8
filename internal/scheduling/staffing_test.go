package scheduling_test

import (
	"testing"

	"shiftboard-backend/internal/database/models"
	"shiftboard-backend/internal/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredHours(t *testing.T) {
	assert.InDelta(t, 10.0, scheduling.RequiredHours(500, 50), 1e-9)
	assert.InDelta(t, 2.5, scheduling.RequiredHours(100, 40), 1e-9)

	// No productivity rate means no requirement, not infinity.
	assert.Equal(t, 0.0, scheduling.RequiredHours(500, 0))
	assert.Equal(t, 0.0, scheduling.RequiredHours(0, 0))
}

func TestScheduledHours(t *testing.T) {
	jf := uuid.New()
	other := uuid.New()

	assignments := []models.ScheduleAssignment{
		{JobFunctionID: jf, StartTime: "06:00", EndTime: "10:00"},    // 4h
		{JobFunctionID: jf, StartTime: "10:30", EndTime: "14:15"},    // 3.75h
		{JobFunctionID: other, StartTime: "06:00", EndTime: "14:00"}, // filtered out
	}

	total, err := scheduling.ScheduledHours(assignments, jf)
	require.NoError(t, err)
	assert.InDelta(t, 7.75, total, 1e-9)
}

func TestScheduledHoursEmpty(t *testing.T) {
	total, err := scheduling.ScheduledHours(nil, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestScheduledHoursMalformedTime(t *testing.T) {
	jf := uuid.New()
	_, err := scheduling.ScheduledHours([]models.ScheduleAssignment{
		{JobFunctionID: jf, StartTime: "oops", EndTime: "10:00"},
	}, jf)
	assert.Error(t, err)
}

func TestCalculateStaffingStatus(t *testing.T) {
	testCases := []struct {
		name       string
		scheduled  float64
		required   float64
		status     scheduling.StaffingLevel
		percentage int
		difference float64
	}{
		{
			name:      "well below target is critical",
			scheduled: 5, required: 10,
			status: scheduling.StaffingCritical, percentage: 50, difference: -5,
		},
		{
			name:      "just under 80 is critical",
			scheduled: 7.9, required: 10,
			status: scheduling.StaffingCritical, percentage: 79, difference: -2.1,
		},
		{
			name:      "exactly 80 is understaffed, not critical",
			scheduled: 8, required: 10,
			status: scheduling.StaffingUnderstaffed, percentage: 80, difference: -2,
		},
		{
			name:      "just under 95 is understaffed",
			scheduled: 9.49, required: 10,
			status: scheduling.StaffingUnderstaffed, percentage: 95, difference: -0.5,
		},
		{
			name:      "exactly 95 is adequate",
			scheduled: 9.5, required: 10,
			status: scheduling.StaffingAdequate, percentage: 95, difference: -0.5,
		},
		{
			name:      "exactly on target",
			scheduled: 10, required: 10,
			status: scheduling.StaffingAdequate, percentage: 100, difference: 0,
		},
		{
			name:      "exactly 105 is still adequate",
			scheduled: 10.5, required: 10,
			status: scheduling.StaffingAdequate, percentage: 105, difference: 0.5,
		},
		{
			name:      "just over 105 is overstaffed",
			scheduled: 10.6, required: 10,
			status: scheduling.StaffingOverstaffed, percentage: 106, difference: 0.6,
		},
		{
			name:      "zero required is always adequate",
			scheduled: 40, required: 0,
			status: scheduling.StaffingAdequate, percentage: 100, difference: 0,
		},
		{
			name:      "zero scheduled against zero required",
			scheduled: 0, required: 0,
			status: scheduling.StaffingAdequate, percentage: 100, difference: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := scheduling.CalculateStaffingStatus(tc.scheduled, tc.required)
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.percentage, got.Percentage)
			assert.InDelta(t, tc.difference, got.Difference, 1e-9)
		})
	}
}

func TestStaffingLevelDisplayText(t *testing.T) {
	assert.Equal(t, "Critical - Need more staff", scheduling.StaffingCritical.DisplayText())
	assert.Equal(t, "Understaffed", scheduling.StaffingUnderstaffed.DisplayText())
	assert.Equal(t, "Adequately Staffed", scheduling.StaffingAdequate.DisplayText())
	assert.Equal(t, "Overstaffed", scheduling.StaffingOverstaffed.DisplayText())
}
