package scheduling

import (
	"fmt"

	"shiftboard-backend/internal/database/models"
)

// TimeSlot is one 15-minute scheduling granule of the display grid
type TimeSlot struct {
	ID          string    `json:"id"`           // 24-hour key, HH:MM
	Time        string    `json:"time"`         // same as ID
	DisplayTime string    `json:"display_time"` // 12-hour label, H:MM AM/PM
	IsBreakTime bool      `json:"is_break_time"`
	BreakType   BreakType `json:"break_type,omitempty"`
}

// GenerateTimeSlots produces the ordered slot sequence for hours in
// [startHour, endHour): four slots per hour, ascending, each classified
// against the full shift set. Output is a pure function of its inputs.
func GenerateTimeSlots(startHour, endHour int, shifts []models.Shift) []TimeSlot {
	var slots []TimeSlot
	for hour := startHour; hour < endHour; hour++ {
		for quarter := 0; quarter < 4; quarter++ {
			minutes := quarter * 15
			timeMinutes := hour*60 + minutes
			key := fmt.Sprintf("%02d:%02d", hour, minutes)

			isBreak, breakType := ClassifyBreakAcross(timeMinutes, shifts)

			slots = append(slots, TimeSlot{
				ID:          key,
				Time:        key,
				DisplayTime: formatMinutesDisplay(timeMinutes),
				IsBreakTime: isBreak,
				BreakType:   breakType,
			})
		}
	}
	return slots
}
