// Package scheduling contains the assignment validation and staffing
// adequacy engine: pure functions over wall-clock times, shifts, assignments
// and productivity targets. Nothing here touches the database or mutates its
// inputs, so every function is safe to call concurrently.
package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes parses a wall-clock string of form HH:MM or HH:MM:SS and
// returns minutes since midnight. Seconds are ignored. Malformed input is an
// explicit error rather than a garbage value.
func TimeToMinutes(t string) (int, error) {
	parts := strings.Split(strings.TrimSpace(t), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("malformed time %q", t)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q", t)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q", t)
	}
	return hours*60 + minutes, nil
}

// MinutesToTime renders minutes since midnight as zero-padded HH:MM:00.
// Values outside [0, 1440) are not wrapped: the hour component simply goes
// out of range. Callers that care must range-check first.
func MinutesToTime(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	return fmt.Sprintf("%02d:%02d:00", hours, mins)
}

// DurationMinutes returns end minus start in minutes. The result is negative
// when end precedes start; callers decide what that means.
func DurationMinutes(start, end string) (int, error) {
	startMin, err := TimeToMinutes(start)
	if err != nil {
		return 0, err
	}
	endMin, err := TimeToMinutes(end)
	if err != nil {
		return 0, err
	}
	return endMin - startMin, nil
}

// FormatTimeDisplay converts a 24-hour HH:MM[:SS] string to a 12-hour
// H:MM AM/PM label. Midnight is 12 AM, noon is 12 PM.
func FormatTimeDisplay(t string) (string, error) {
	minutes, err := TimeToMinutes(t)
	if err != nil {
		return "", err
	}
	return formatMinutesDisplay(minutes), nil
}

func formatMinutesDisplay(minutes int) string {
	hour := minutes / 60
	mins := minutes % 60
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	displayHour := hour
	switch {
	case hour == 0:
		displayHour = 12
	case hour > 12:
		displayHour = hour - 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, mins, ampm)
}
