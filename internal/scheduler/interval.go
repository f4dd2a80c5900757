package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeInterval is a half-open [Start, End) range of minutes since midnight on
// a named school day. Invariant: Start < End.
type TimeInterval struct {
	Day   string
	Start int
	End   int
}

// Overlaps reports whether both intervals share any time on the same day.
func (t TimeInterval) Overlaps(other TimeInterval) bool {
	if t.Day != other.Day {
		return false
	}
	return t.Start < other.End && other.Start < t.End
}

// Contains reports whether other lies fully inside t.
func (t TimeInterval) Contains(other TimeInterval) bool {
	return t.Day == other.Day && t.Start <= other.Start && other.End <= t.End
}

// GapMinutes returns the free minutes between two same-day intervals, or 0
// when they touch, overlap or fall on different days.
func (t TimeInterval) GapMinutes(other TimeInterval) int {
	if t.Day != other.Day || t.Overlaps(other) {
		return 0
	}
	if t.End <= other.Start {
		return other.Start - t.End
	}
	return t.Start - other.End
}

// Duration returns the interval length in minutes.
func (t TimeInterval) Duration() int {
	return t.End - t.Start
}

func (t TimeInterval) String() string {
	return fmt.Sprintf("%s %s-%s", t.Day, FormatClock(t.Start), FormatClock(t.End))
}

// ParseClock converts an "HH:MM" value into minutes since midnight.
func ParseClock(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	parts := strings.SplitN(trimmed, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock value %q", raw)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock value %q", raw)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock value %q", raw)
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 || hours*60+minutes > 24*60 {
		return 0, fmt.Errorf("clock value %q out of range", raw)
	}
	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
