package scheduling_test

import (
	"testing"

	"shiftboard-backend/internal/database/models"
	"shiftboard-backend/internal/scheduling"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func dayShift() *models.Shift {
	return &models.Shift{
		Name:        "6:00 AM - 2:30 PM",
		StartTime:   "06:00",
		EndTime:     "14:30",
		Break1Start: strPtr("07:45"),
		Break1End:   strPtr("08:15"),
		Break2Start: strPtr("09:45"),
		Break2End:   strPtr("10:15"),
		LunchStart:  strPtr("12:30"),
		LunchEnd:    strPtr("13:00"),
	}
}

func minutes(t *testing.T, s string) int {
	t.Helper()
	m, err := scheduling.TimeToMinutes(s)
	assert.NoError(t, err)
	return m
}

func TestClassifyBreak(t *testing.T) {
	shift := dayShift()

	testCases := []struct {
		name     string
		time     string
		isBreak  bool
		expected scheduling.BreakType
	}{
		{name: "before any break", time: "07:30", isBreak: false, expected: scheduling.BreakNone},
		{name: "break1 start inclusive", time: "07:45", isBreak: true, expected: scheduling.BreakFirst},
		{name: "inside break1", time: "08:00", isBreak: true, expected: scheduling.BreakFirst},
		{name: "break1 end exclusive", time: "08:15", isBreak: false, expected: scheduling.BreakNone},
		{name: "inside break2", time: "10:00", isBreak: true, expected: scheduling.BreakSecond},
		{name: "lunch start inclusive", time: "12:30", isBreak: true, expected: scheduling.BreakLunch},
		{name: "lunch end exclusive", time: "13:00", isBreak: false, expected: scheduling.BreakNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			isBreak, typ := scheduling.ClassifyBreak(minutes(t, tc.time), shift)
			assert.Equal(t, tc.isBreak, isBreak)
			assert.Equal(t, tc.expected, typ)
		})
	}
}

func TestClassifyBreakPartialWindow(t *testing.T) {
	// A window missing either bound is never matched.
	shift := &models.Shift{
		Name:        "partial",
		StartTime:   "06:00",
		EndTime:     "14:00",
		Break1Start: strPtr("07:45"), // no end
		LunchEnd:    strPtr("13:00"), // no start
	}

	isBreak, typ := scheduling.ClassifyBreak(minutes(t, "07:45"), shift)
	assert.False(t, isBreak)
	assert.Equal(t, scheduling.BreakNone, typ)

	isBreak, _ = scheduling.ClassifyBreak(minutes(t, "12:45"), shift)
	assert.False(t, isBreak)
}

func TestClassifyBreakNilShift(t *testing.T) {
	isBreak, typ := scheduling.ClassifyBreak(480, nil)
	assert.False(t, isBreak)
	assert.Equal(t, scheduling.BreakNone, typ)
}

func TestClassifyBreakAcross(t *testing.T) {
	early := dayShift()
	late := &models.Shift{
		Name:        "2:00 PM - 10:30 PM",
		StartTime:   "14:00",
		EndTime:     "22:30",
		Break1Start: strPtr("16:00"),
		Break1End:   strPtr("16:15"),
		LunchStart:  strPtr("18:00"),
		LunchEnd:    strPtr("18:30"),
	}
	shifts := []models.Shift{*early, *late}

	// A slot is a break slot when any shift has a window covering it.
	isBreak, typ := scheduling.ClassifyBreakAcross(minutes(t, "16:00"), shifts)
	assert.True(t, isBreak)
	assert.Equal(t, scheduling.BreakFirst, typ)

	isBreak, typ = scheduling.ClassifyBreakAcross(minutes(t, "18:15"), shifts)
	assert.True(t, isBreak)
	assert.Equal(t, scheduling.BreakLunch, typ)

	isBreak, _ = scheduling.ClassifyBreakAcross(minutes(t, "11:00"), shifts)
	assert.False(t, isBreak)

	isBreak, _ = scheduling.ClassifyBreakAcross(minutes(t, "08:00"), nil)
	assert.False(t, isBreak)
}
