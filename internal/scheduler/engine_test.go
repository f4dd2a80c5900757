package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ampleConfig has enough halls, professors and hours that every requested
// section can be placed.
func ampleConfig() Config {
	return Config{
		Halls:       []string{"H1", "H2", "H3"},
		SchoolDays:  []string{"Monday", "Tuesday", "Wednesday"},
		Departments: []string{"Math", "Physics"},
		Professors:  []string{"P1", "P2", "P3"},
		Courses:     []string{"Calculus", "Algebra", "Mechanics"},
		LevelCourses: map[string][]string{
			"Freshman": {"Calculus", "Mechanics"},
		},
		DepartmentCourses: map[string][]string{
			"Math":    {"Calculus", "Algebra"},
			"Physics": {"Mechanics"},
		},
		ProfessorSpecialties: map[string][]string{
			"P1": {"Math"},
			"P2": {"Math", "Physics"},
			"P3": {"Physics"},
		},
		DayHours: map[string]DayWindow{
			"Monday":    {Start: 8 * 60, End: 18 * 60},
			"Tuesday":   {Start: 8 * 60, End: 18 * 60},
			"Wednesday": {Start: 8 * 60, End: 18 * 60},
		},
		SectionCounts: map[string]int{
			"Calculus":  2,
			"Algebra":   1,
			"Mechanics": 2,
		},
	}
}

func TestBuildSingleSectionScenario(t *testing.T) {
	cfg := Config{
		Halls:             []string{"H1"},
		SchoolDays:        []string{"Monday"},
		Departments:       []string{"Math"},
		Professors:        []string{"P1"},
		Courses:           []string{"Calculus"},
		DepartmentCourses: map[string][]string{"Math": {"Calculus"}},
		ProfessorSpecialties: map[string][]string{
			"P1": {"Math"},
		},
		DayHours:      map[string]DayWindow{"Monday": {Start: 8 * 60, End: 18 * 60}},
		SectionCounts: map[string]int{"Calculus": 1},
	}

	result, err := NewEngine(cfg, nil).Build()
	require.NoError(t, err)

	require.Len(t, result.Sections, 1)
	sec := result.Sections[0]
	assert.Equal(t, "Calculus", sec.Course)
	assert.Equal(t, 1, sec.Number)
	assert.Equal(t, "P1", sec.Professor)
	assert.Equal(t, "H1", sec.Hall)
	assert.Equal(t, "Monday", sec.Interval.Day)
	assert.Equal(t, 60, sec.Interval.Duration())
	assert.GreaterOrEqual(t, sec.Interval.Start, 8*60)
	assert.LessOrEqual(t, sec.Interval.End, 18*60)
	assert.Empty(t, result.Shortfalls)
}

func TestBuildScarcityLeavesLowerPriorityCourseUnderProvisioned(t *testing.T) {
	// One hall, one day with room for exactly one slot, both professors
	// eligible for both courses: identical priority weights, so declaration
	// order decides which course gets the only feasible triple.
	cfg := Config{
		Halls:             []string{"H1"},
		SchoolDays:        []string{"Monday"},
		Departments:       []string{"Math"},
		Professors:        []string{"P1", "P2"},
		Courses:           []string{"Calculus", "Algebra"},
		DepartmentCourses: map[string][]string{"Math": {"Calculus", "Algebra"}},
		ProfessorSpecialties: map[string][]string{
			"P1": {"Math"},
			"P2": {"Math"},
		},
		DayHours:      map[string]DayWindow{"Monday": {Start: 9 * 60, End: 10 * 60}},
		SectionCounts: map[string]int{"Calculus": 1, "Algebra": 1},
	}

	result, err := NewEngine(cfg, nil).Build()
	require.NoError(t, err)

	require.Len(t, result.Sections, 1)
	assert.Equal(t, "Calculus", result.Sections[0].Course)
	require.Len(t, result.Shortfalls, 1)
	assert.Equal(t, Shortfall{Course: "Algebra", Requested: 1, Scheduled: 0}, result.Shortfalls[0])
}

func TestBuildPriorityFavorsFewerEligibleProfessors(t *testing.T) {
	// Mechanics has a single qualified professor and therefore twice the
	// priority weight of Calculus, so it claims the only slot despite being
	// declared last.
	cfg := Config{
		Halls:       []string{"H1"},
		SchoolDays:  []string{"Monday"},
		Departments: []string{"Math", "Physics"},
		Professors:  []string{"P1", "P2"},
		Courses:     []string{"Calculus", "Mechanics"},
		DepartmentCourses: map[string][]string{
			"Math":    {"Calculus"},
			"Physics": {"Mechanics"},
		},
		ProfessorSpecialties: map[string][]string{
			"P1": {"Math", "Physics"},
			"P2": {"Math"},
		},
		DayHours:      map[string]DayWindow{"Monday": {Start: 9 * 60, End: 10 * 60}},
		SectionCounts: map[string]int{"Calculus": 1, "Mechanics": 1},
	}

	result, err := NewEngine(cfg, nil).Build()
	require.NoError(t, err)

	require.Len(t, result.Sections, 1)
	assert.Equal(t, "Mechanics", result.Sections[0].Course)
}

func TestBuildZeroEligibleFallsBackToFullProfessorSet(t *testing.T) {
	cfg := Config{
		Halls:         []string{"H1"},
		SchoolDays:    []string{"Monday"},
		Departments:   []string{"Math"},
		Professors:    []string{"P1"},
		Courses:       []string{"Pottery"},
		DayHours:      map[string]DayWindow{"Monday": {Start: 8 * 60, End: 12 * 60}},
		SectionCounts: map[string]int{"Pottery": 1},
	}

	result, err := NewEngine(cfg, nil).Build()
	require.NoError(t, err)

	require.Len(t, result.Sections, 1)
	assert.Equal(t, "P1", result.Sections[0].Professor)
}

func TestBuildRestrictedIntervalIsNeverUsed(t *testing.T) {
	restricted := TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}
	cfg := Config{
		Halls:           []string{"H1"},
		SchoolDays:      []string{"Monday"},
		Departments:     []string{"Math"},
		Professors:      []string{"P1"},
		Courses:         []string{"Calculus"},
		RestrictedTimes: []TimeInterval{restricted},
		DayHours:        map[string]DayWindow{"Monday": {Start: 9 * 60, End: 10 * 60}},
		SectionCounts:   map[string]int{"Calculus": 1},
	}

	result, err := NewEngine(cfg, nil).Build()
	require.NoError(t, err)

	// The restriction covers the only feasible slot.
	assert.Empty(t, result.Sections)
	require.Len(t, result.Shortfalls, 1)
	for _, sec := range result.Sections {
		assert.False(t, sec.Interval.Overlaps(restricted))
	}
}

func TestBuildFullProvisioningWithAmpleResources(t *testing.T) {
	cfg := ampleConfig()

	result, err := NewEngine(cfg, nil).Build()
	require.NoError(t, err)
	assert.Empty(t, result.Shortfalls)

	perCourse := map[string]int{}
	for _, sec := range result.Sections {
		perCourse[sec.Course]++
	}
	for course, requested := range cfg.SectionCounts {
		assert.Equal(t, requested, perCourse[course], course)
	}
}

func TestBuildHardConstraints(t *testing.T) {
	cfg := ampleConfig()
	cfg.RestrictedTimes = []TimeInterval{{Day: "Tuesday", Start: 12 * 60, End: 14 * 60}}

	result, err := NewEngine(cfg, nil).Build()
	require.NoError(t, err)
	require.NotEmpty(t, result.Sections)

	for i, a := range result.Sections {
		// Operating-hours containment and duration correctness.
		window := cfg.DayHours[a.Interval.Day]
		assert.GreaterOrEqual(t, a.Interval.Start, window.Start)
		assert.LessOrEqual(t, a.Interval.End, window.End)
		assert.Equal(t, 60, a.Interval.Duration())

		// Restricted-time exclusion.
		for _, blocked := range cfg.RestrictedTimes {
			assert.False(t, a.Interval.Overlaps(blocked))
		}

		// No double-booking of professors or halls.
		for _, b := range result.Sections[i+1:] {
			if a.Professor == b.Professor {
				assert.False(t, a.Interval.Overlaps(b.Interval),
					"professor %s double-booked: %s vs %s", a.Professor, a.Interval, b.Interval)
			}
			if a.Hall == b.Hall {
				assert.False(t, a.Interval.Overlaps(b.Interval),
					"hall %s double-booked: %s vs %s", a.Hall, a.Interval, b.Interval)
			}
		}
	}
}

func TestBuildSectionNumbersArePerCourseAndMonotone(t *testing.T) {
	result, err := NewEngine(ampleConfig(), nil).Build()
	require.NoError(t, err)

	next := map[string]int{}
	for _, sec := range result.Sections {
		next[sec.Course]++
		assert.Equal(t, next[sec.Course], sec.Number)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	first, err := NewEngine(ampleConfig(), nil).Build()
	require.NoError(t, err)
	second, err := NewEngine(ampleConfig(), nil).Build()
	require.NoError(t, err)

	assert.Equal(t, first.Sections, second.Sections)
	assert.Equal(t, first.Shortfalls, second.Shortfalls)
	assert.Equal(t, first.ConsolidationMoves, second.ConsolidationMoves)
}

func TestBuildRejectsInvertedWindows(t *testing.T) {
	cfg := ampleConfig()
	cfg.DayHours["Monday"] = DayWindow{Start: 18 * 60, End: 8 * 60}

	_, err := NewEngine(cfg, nil).Build()
	require.Error(t, err)
}

func TestBuildRejectsInvertedRestrictedInterval(t *testing.T) {
	cfg := ampleConfig()
	cfg.RestrictedTimes = []TimeInterval{{Day: "Monday", Start: 10 * 60, End: 9 * 60}}

	_, err := NewEngine(cfg, nil).Build()
	require.Error(t, err)
}

func TestBuildHonorsPreferredTimeBand(t *testing.T) {
	cfg := ampleConfig()
	cfg.CoursePreferredTimes = map[string]string{"Algebra": "late"}

	result, err := NewEngine(cfg, nil).Build()
	require.NoError(t, err)

	e := NewEngine(cfg, nil)
	for _, sec := range result.Sections {
		if sec.Course == "Algebra" {
			assert.Equal(t, "late", e.daySliceOf(sec.Interval))
		}
	}
}
