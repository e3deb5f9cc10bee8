package scheduling_test

import (
	"testing"
	"time"

	"shiftboard-backend/internal/database/models"
	"shiftboard-backend/internal/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scheduleDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func candidate(employeeID, jobFunctionID uuid.UUID, start, end string) *models.ScheduleAssignment {
	return &models.ScheduleAssignment{
		EmployeeID:    employeeID,
		JobFunctionID: jobFunctionID,
		ShiftID:       uuid.New(),
		ScheduleDate:  scheduleDate,
		StartTime:     start,
		EndTime:       end,
	}
}

func existing(id, employeeID uuid.UUID, date time.Time, start, end string) models.ScheduleAssignment {
	return models.ScheduleAssignment{
		BaseModel:     models.BaseModel{ID: id},
		EmployeeID:    employeeID,
		JobFunctionID: uuid.New(),
		ShiftID:       uuid.New(),
		ScheduleDate:  date,
		StartTime:     start,
		EndTime:       end,
	}
}

func TestValidateAssignmentAllRulesPass(t *testing.T) {
	emp := uuid.New()
	jf := jobFunction("Receiving", 1)

	result := scheduling.ValidateAssignment(
		candidate(emp, jf.ID, "09:00", "10:00"),
		nil,
		[]uuid.UUID{jf.ID},
		[]models.JobFunction{jf},
	)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateAssignmentTrainingRule(t *testing.T) {
	emp := uuid.New()
	receiving := jobFunction("Receiving", 1)
	packing := jobFunction("Packing", 2)
	catalog := []models.JobFunction{receiving, packing}

	t.Run("untrained fails", func(t *testing.T) {
		result := scheduling.ValidateAssignment(
			candidate(emp, receiving.ID, "09:00", "10:00"),
			nil,
			[]uuid.UUID{packing.ID},
			catalog,
		)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, scheduling.ErrNotTrained)
	})

	t.Run("no catalog falls back to exact match", func(t *testing.T) {
		result := scheduling.ValidateAssignment(
			candidate(emp, receiving.ID, "09:00", "10:00"),
			nil,
			[]uuid.UUID{receiving.ID},
			nil,
		)
		assert.True(t, result.Valid)
	})
}

func TestValidateAssignmentMeterEquivalence(t *testing.T) {
	emp := uuid.New()
	meter2 := jobFunction("Meter 2", 1)
	meter5 := jobFunction("Meter 5", 2)
	receiving := jobFunction("Receiving", 3)
	catalog := []models.JobFunction{meter2, meter5, receiving}

	t.Run("trained on one meter passes for any meter", func(t *testing.T) {
		result := scheduling.ValidateAssignment(
			candidate(emp, meter5.ID, "09:00", "10:00"),
			nil,
			[]uuid.UUID{meter2.ID},
			catalog,
		)
		assert.True(t, result.Valid)
	})

	t.Run("meter training does not cover non-meter functions", func(t *testing.T) {
		result := scheduling.ValidateAssignment(
			candidate(emp, receiving.ID, "09:00", "10:00"),
			nil,
			[]uuid.UUID{meter2.ID},
			catalog,
		)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, scheduling.ErrNotTrained)
	})

	t.Run("no meter training yields meter-specific message", func(t *testing.T) {
		result := scheduling.ValidateAssignment(
			candidate(emp, meter5.ID, "09:00", "10:00"),
			nil,
			[]uuid.UUID{receiving.ID},
			catalog,
		)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, scheduling.ErrNotTrainedOnMeter)
	})

	t.Run("without catalog meter equivalence is unavailable", func(t *testing.T) {
		result := scheduling.ValidateAssignment(
			candidate(emp, meter5.ID, "09:00", "10:00"),
			nil,
			[]uuid.UUID{meter2.ID},
			nil,
		)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, scheduling.ErrNotTrained)
	})
}

func TestValidateAssignmentDurationRule(t *testing.T) {
	emp := uuid.New()
	jf := jobFunction("Receiving", 1)
	catalog := []models.JobFunction{jf}
	trained := []uuid.UUID{jf.ID}

	testCases := []struct {
		name  string
		start string
		end   string
		valid bool
	}{
		{name: "29 minutes fails", start: "09:00", end: "09:29", valid: false},
		{name: "exactly 30 minutes passes", start: "09:00", end: "09:30", valid: true},
		{name: "zero duration fails", start: "09:00", end: "09:00", valid: false},
		{name: "negative duration fails", start: "10:00", end: "09:00", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := scheduling.ValidateAssignment(candidate(emp, jf.ID, tc.start, tc.end), nil, trained, catalog)
			assert.Equal(t, tc.valid, result.Valid)
			if !tc.valid {
				assert.Contains(t, result.Errors, scheduling.ErrTooShort)
			}
		})
	}
}

func TestValidateAssignmentOverlapRule(t *testing.T) {
	emp := uuid.New()
	jf := jobFunction("Receiving", 1)
	catalog := []models.JobFunction{jf}
	trained := []uuid.UUID{jf.ID}

	testCases := []struct {
		name     string
		start    string
		end      string
		existing []models.ScheduleAssignment
		conflict bool
	}{
		{
			name: "existing fully inside candidate",
			start: "09:00", end: "10:00",
			existing: []models.ScheduleAssignment{existing(uuid.New(), emp, scheduleDate, "09:30", "09:45")},
			conflict: true,
		},
		{
			name: "partial overlap",
			start: "09:00", end: "09:30",
			existing: []models.ScheduleAssignment{existing(uuid.New(), emp, scheduleDate, "09:15", "10:00")},
			conflict: true,
		},
		{
			name: "candidate fully inside existing",
			start: "09:15", end: "09:45",
			existing: []models.ScheduleAssignment{existing(uuid.New(), emp, scheduleDate, "09:00", "10:00")},
			conflict: true,
		},
		{
			name: "adjacent spans do not conflict",
			start: "09:00", end: "09:30",
			existing: []models.ScheduleAssignment{existing(uuid.New(), emp, scheduleDate, "09:30", "10:00")},
			conflict: false,
		},
		{
			name: "other employee ignored",
			start: "09:00", end: "10:00",
			existing: []models.ScheduleAssignment{existing(uuid.New(), uuid.New(), scheduleDate, "09:00", "10:00")},
			conflict: false,
		},
		{
			name: "other date ignored",
			start: "09:00", end: "10:00",
			existing: []models.ScheduleAssignment{existing(uuid.New(), emp, scheduleDate.AddDate(0, 0, 1), "09:00", "10:00")},
			conflict: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := scheduling.ValidateAssignment(candidate(emp, jf.ID, tc.start, tc.end), tc.existing, trained, catalog)
			if tc.conflict {
				assert.False(t, result.Valid)
				assert.Contains(t, result.Errors, scheduling.ErrDoubleBooked)
			} else {
				assert.True(t, result.Valid, "errors: %v", result.Errors)
			}
		})
	}
}

func TestValidateAssignmentSelfExcludedWhenEditing(t *testing.T) {
	emp := uuid.New()
	jf := jobFunction("Receiving", 1)
	assignmentID := uuid.New()

	cand := candidate(emp, jf.ID, "09:00", "10:00")
	cand.ID = assignmentID

	result := scheduling.ValidateAssignment(
		cand,
		[]models.ScheduleAssignment{existing(assignmentID, emp, scheduleDate, "09:00", "10:00")},
		[]uuid.UUID{jf.ID},
		[]models.JobFunction{jf},
	)

	assert.True(t, result.Valid)
}

// All three rules are independent: one candidate can violate training,
// duration and overlap at once and every violation is reported.
func TestValidateAssignmentCollectsAllViolations(t *testing.T) {
	emp := uuid.New()
	receiving := jobFunction("Receiving", 1)
	packing := jobFunction("Packing", 2)

	result := scheduling.ValidateAssignment(
		candidate(emp, receiving.ID, "09:00", "09:15"),
		[]models.ScheduleAssignment{existing(uuid.New(), emp, scheduleDate, "09:00", "10:00")},
		[]uuid.UUID{packing.ID},
		[]models.JobFunction{receiving, packing},
	)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 3)
	assert.ElementsMatch(t, []string{
		scheduling.ErrNotTrained,
		scheduling.ErrTooShort,
		scheduling.ErrDoubleBooked,
	}, result.Errors)
}

func TestValidateAssignmentMalformedTimes(t *testing.T) {
	emp := uuid.New()
	jf := jobFunction("Receiving", 1)

	result := scheduling.ValidateAssignment(
		candidate(emp, jf.ID, "garbage", "10:00"),
		nil,
		[]uuid.UUID{jf.ID},
		[]models.JobFunction{jf},
	)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, scheduling.ErrMalformedTime)
}
