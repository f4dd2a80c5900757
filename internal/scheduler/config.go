package scheduler

import "fmt"

const (
	defaultLectureDuration = 60
	// Minutes left free between two consecutive generated slots on a day.
	interSlotBreak = 5
)

// DayWindow bounds the operating hours of one school day, in minutes since
// midnight.
type DayWindow struct {
	Start int
	End   int
}

// Config is the complete, read-only input for one generation run. Slice
// order is meaningful: halls, school days, departments, professors and
// courses are iterated in their declared order wherever the algorithm needs
// a deterministic sequence.
type Config struct {
	Halls       []string
	SchoolDays  []string
	Departments []string
	Professors  []string
	Courses     []string

	LevelCourses      map[string][]string
	DepartmentCourses map[string][]string

	ProfessorSpecialties      map[string][]string
	ProfessorPreferredCourses map[string][]string
	ProfessorPreferredTimes   map[string][]TimeInterval

	// CoursePreferredTimes maps a course to "early", "middle" or "late".
	CoursePreferredTimes map[string]string
	RestrictedTimes      []TimeInterval
	DayHours             map[string]DayWindow
	LectureDurations     map[string]int
	SectionCounts        map[string]int
}

func (c *Config) durationOf(course string) int {
	if d, ok := c.LectureDurations[course]; ok && d > 0 {
		return d
	}
	return defaultLectureDuration
}

func (c *Config) sectionsRequired(course string) int {
	if n, ok := c.SectionCounts[course]; ok && n > 0 {
		return n
	}
	return 1
}

// validate rejects self-inconsistent interval bounds before any scheduling
// work starts.
func (c *Config) validate() error {
	for day, window := range c.DayHours {
		if window.Start >= window.End {
			return fmt.Errorf("operating window for %s is empty or inverted", day)
		}
	}
	for _, restricted := range c.RestrictedTimes {
		if restricted.Start >= restricted.End {
			return fmt.Errorf("restricted interval %s is empty or inverted", restricted)
		}
	}
	for professor, windows := range c.ProfessorPreferredTimes {
		for _, window := range windows {
			if window.Start >= window.End {
				return fmt.Errorf("preferred window %s for professor %s is empty or inverted", window, professor)
			}
		}
	}
	return nil
}
