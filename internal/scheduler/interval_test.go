package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeIntervalOverlaps(t *testing.T) {
	base := TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}

	cases := []struct {
		name    string
		other   TimeInterval
		overlap bool
	}{
		{"identical", TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}, true},
		{"partial", TimeInterval{Day: "Monday", Start: 9*60 + 30, End: 11 * 60}, true},
		{"containing", TimeInterval{Day: "Monday", Start: 8 * 60, End: 12 * 60}, true},
		{"touching end", TimeInterval{Day: "Monday", Start: 10 * 60, End: 11 * 60}, false},
		{"touching start", TimeInterval{Day: "Monday", Start: 8 * 60, End: 9 * 60}, false},
		{"different day", TimeInterval{Day: "Tuesday", Start: 9 * 60, End: 10 * 60}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlap, tc.other.Overlaps(base))
		})
	}
}

func TestTimeIntervalGapMinutes(t *testing.T) {
	morning := TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}
	later := TimeInterval{Day: "Monday", Start: 11 * 60, End: 12 * 60}

	assert.Equal(t, 60, morning.GapMinutes(later))
	assert.Equal(t, 60, later.GapMinutes(morning))
	assert.Equal(t, 0, morning.GapMinutes(TimeInterval{Day: "Monday", Start: 10 * 60, End: 11 * 60}))
	assert.Equal(t, 0, morning.GapMinutes(TimeInterval{Day: "Monday", Start: 9*60 + 30, End: 11 * 60}))
	assert.Equal(t, 0, morning.GapMinutes(TimeInterval{Day: "Tuesday", Start: 11 * 60, End: 12 * 60}))
}

func TestTimeIntervalContains(t *testing.T) {
	window := TimeInterval{Day: "Monday", Start: 8 * 60, End: 12 * 60}

	assert.True(t, window.Contains(TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}))
	assert.True(t, window.Contains(window))
	assert.False(t, window.Contains(TimeInterval{Day: "Monday", Start: 11 * 60, End: 13 * 60}))
	assert.False(t, window.Contains(TimeInterval{Day: "Friday", Start: 9 * 60, End: 10 * 60}))
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		raw     string
		minutes int
		wantErr bool
	}{
		{"08:00", 480, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{" 9:30 ", 570, false},
		{"24:00", 1440, false},
		{"24:01", 0, true},
		{"9", 0, true},
		{"nine:thirty", 0, true},
		{"12:xx", 0, true},
		{"-1:00", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseClock(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.minutes, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:05", FormatClock(485))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "13:30", FormatClock(810))
}
