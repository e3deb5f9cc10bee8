package scheduling_test

import (
	"testing"

	"shiftboard-backend/internal/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  int
		expectErr bool
	}{
		{name: "midnight", input: "00:00", expected: 0},
		{name: "morning", input: "09:30", expected: 570},
		{name: "with seconds ignored", input: "09:30:45", expected: 570},
		{name: "end of day", input: "23:45", expected: 1425},
		{name: "leading whitespace", input: " 06:00", expected: 360},
		{name: "empty", input: "", expectErr: true},
		{name: "no colon", input: "0930", expectErr: true},
		{name: "non-numeric hours", input: "ab:30", expectErr: true},
		{name: "non-numeric minutes", input: "09:xx", expectErr: true},
		{name: "too many parts", input: "09:30:00:00", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scheduling.TimeToMinutes(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00:00", scheduling.MinutesToTime(0))
	assert.Equal(t, "09:30:00", scheduling.MinutesToTime(570))
	assert.Equal(t, "23:45:00", scheduling.MinutesToTime(1425))

	// Out-of-range minutes are not wrapped mod 1440; the hour component
	// simply runs past 23.
	assert.Equal(t, "24:00:00", scheduling.MinutesToTime(1440))
	assert.Equal(t, "25:15:00", scheduling.MinutesToTime(1515))
}

// Round-trip property: every in-range minute value survives
// MinutesToTime -> TimeToMinutes unchanged.
func TestMinutesRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m++ {
		back, err := scheduling.TimeToMinutes(scheduling.MinutesToTime(m))
		require.NoError(t, err)
		require.Equal(t, m, back)
	}
}

func TestDurationMinutes(t *testing.T) {
	testCases := []struct {
		name      string
		start     string
		end       string
		expected  int
		expectErr bool
	}{
		{name: "one hour", start: "09:00", end: "10:00", expected: 60},
		{name: "quarter slot", start: "09:00", end: "09:15", expected: 15},
		{name: "zero", start: "09:00", end: "09:00", expected: 0},
		{name: "negative when end precedes start", start: "10:00", end: "09:00", expected: -60},
		{name: "seconds ignored", start: "09:00:00", end: "10:30:00", expected: 90},
		{name: "malformed start", start: "bogus", end: "10:00", expectErr: true},
		{name: "malformed end", start: "09:00", end: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scheduling.DurationMinutes(tc.start, tc.end)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatTimeDisplay(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "00:00", expected: "12:00 AM"},
		{input: "00:15", expected: "12:15 AM"},
		{input: "09:30", expected: "9:30 AM"},
		{input: "12:00", expected: "12:00 PM"},
		{input: "12:45", expected: "12:45 PM"},
		{input: "13:00", expected: "1:00 PM"},
		{input: "23:45", expected: "11:45 PM"},
	}

	for _, tc := range testCases {
		got, err := scheduling.FormatTimeDisplay(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got)
	}

	_, err := scheduling.FormatTimeDisplay("not-a-time")
	assert.Error(t, err)
}
