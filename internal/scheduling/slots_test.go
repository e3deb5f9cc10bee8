package scheduling_test

import (
	"testing"

	"shiftboard-backend/internal/database/models"
	"shiftboard-backend/internal/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeSlots(t *testing.T) {
	slots := scheduling.GenerateTimeSlots(6, 20, nil)

	// Four slots per hour over [6, 20).
	require.Len(t, slots, (20-6)*4)

	assert.Equal(t, "06:00", slots[0].ID)
	assert.Equal(t, "6:00 AM", slots[0].DisplayTime)
	assert.Equal(t, "06:15", slots[1].ID)
	assert.Equal(t, "19:45", slots[len(slots)-1].ID)
	assert.Equal(t, "7:45 PM", slots[len(slots)-1].DisplayTime)

	// Strictly ascending 15-minute increments.
	for i := 1; i < len(slots); i++ {
		prev, err := scheduling.TimeToMinutes(slots[i-1].Time)
		require.NoError(t, err)
		cur, err := scheduling.TimeToMinutes(slots[i].Time)
		require.NoError(t, err)
		assert.Equal(t, 15, cur-prev)
	}
}

func TestGenerateTimeSlotsNoonAndMidnight(t *testing.T) {
	slots := scheduling.GenerateTimeSlots(0, 24, nil)
	require.Len(t, slots, 96)

	assert.Equal(t, "12:00 AM", slots[0].DisplayTime)
	assert.Equal(t, "12:00 PM", slots[48].DisplayTime)
	assert.Equal(t, "11:45 PM", slots[95].DisplayTime)
}

func TestGenerateTimeSlotsBreakAnnotation(t *testing.T) {
	shifts := []models.Shift{*dayShift()}
	slots := scheduling.GenerateTimeSlots(6, 14, shifts)

	byID := make(map[string]scheduling.TimeSlot, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}

	assert.False(t, byID["07:30"].IsBreakTime)
	assert.True(t, byID["07:45"].IsBreakTime)
	assert.Equal(t, scheduling.BreakFirst, byID["07:45"].BreakType)
	assert.True(t, byID["08:00"].IsBreakTime)
	// 08:15 is the window's end boundary, not part of the break.
	assert.False(t, byID["08:15"].IsBreakTime)
	assert.Equal(t, scheduling.BreakSecond, byID["10:00"].BreakType)
	assert.Equal(t, scheduling.BreakLunch, byID["12:45"].BreakType)
	assert.False(t, byID["13:00"].IsBreakTime)
}

func TestGenerateTimeSlotsDeterministic(t *testing.T) {
	shifts := []models.Shift{*dayShift()}
	assert.Equal(t,
		scheduling.GenerateTimeSlots(6, 20, shifts),
		scheduling.GenerateTimeSlots(6, 20, shifts))
}

func TestGenerateTimeSlotsEmptyRange(t *testing.T) {
	assert.Empty(t, scheduling.GenerateTimeSlots(10, 10, nil))
	assert.Empty(t, scheduling.GenerateTimeSlots(12, 10, nil))
}
