package scheduling

import "shiftboard-backend/internal/database/models"

// BreakType identifies which break window a time falls into
type BreakType string

const (
	BreakNone   BreakType = ""
	BreakFirst  BreakType = "break1"
	BreakSecond BreakType = "break2"
	BreakLunch  BreakType = "lunch"
)

// ClassifyBreak tests a minutes-since-midnight value against a shift's break
// windows. Membership is half-open: start <= t < end, so a time equal to a
// window's end is not on break. Windows missing either bound are skipped.
// Priority order is break1, break2, lunch; first match wins.
func ClassifyBreak(timeMinutes int, shift *models.Shift) (bool, BreakType) {
	if shift == nil {
		return false, BreakNone
	}

	windows := []struct {
		start *string
		end   *string
		typ   BreakType
	}{
		{shift.Break1Start, shift.Break1End, BreakFirst},
		{shift.Break2Start, shift.Break2End, BreakSecond},
		{shift.LunchStart, shift.LunchEnd, BreakLunch},
	}

	for _, w := range windows {
		start, ok := parseOptionalTime(w.start)
		if !ok {
			continue
		}
		end, ok := parseOptionalTime(w.end)
		if !ok {
			continue
		}
		if timeMinutes >= start && timeMinutes < end {
			return true, w.typ
		}
	}
	return false, BreakNone
}

// ClassifyBreakAcross classifies a time against a set of shifts. A slot is a
// break slot if any shift has a break window covering it; the first matching
// shift in iteration order determines the reported type.
func ClassifyBreakAcross(timeMinutes int, shifts []models.Shift) (bool, BreakType) {
	for i := range shifts {
		if isBreak, typ := ClassifyBreak(timeMinutes, &shifts[i]); isBreak {
			return true, typ
		}
	}
	return false, BreakNone
}

// parseOptionalTime parses a nullable wall-clock string. Absent or
// unparseable bounds disable the window rather than failing the caller;
// break windows are display-path data owned by the shift store.
func parseOptionalTime(t *string) (int, bool) {
	if t == nil || *t == "" {
		return 0, false
	}
	minutes, err := TimeToMinutes(*t)
	if err != nil {
		return 0, false
	}
	return minutes, true
}
