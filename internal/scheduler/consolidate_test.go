package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consolidateFixture(overrides func(*Config)) *Engine {
	cfg := Config{
		Halls:       []string{"H1", "H2"},
		SchoolDays:  []string{"Monday", "Tuesday"},
		Departments: []string{"Math"},
		Professors:  []string{"P1"},
		Courses:     []string{"C1", "C2", "C3"},
		DepartmentCourses: map[string][]string{
			"Math": {"C1", "C2", "C3"},
		},
		ProfessorSpecialties: map[string][]string{"P1": {"Math"}},
		DayHours: map[string]DayWindow{
			"Monday":  {Start: 9 * 60, End: 13 * 60},
			"Tuesday": {Start: 9 * 60, End: 13 * 60},
		},
		SectionCounts: map[string]int{"C1": 1, "C2": 1, "C3": 1},
	}
	if overrides != nil {
		overrides(&cfg)
	}
	return NewEngine(cfg, nil)
}

func TestConsolidateMovesLoneSectionOntoTaughtDay(t *testing.T) {
	e := consolidateFixture(nil)
	e.schedule.Add(Section{Course: "C1", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}})
	e.schedule.Add(Section{Course: "C2", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Tuesday", Start: 9 * 60, End: 10 * 60}})
	e.schedule.Add(Section{Course: "C3", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Tuesday", Start: 605, End: 665}})

	moves := e.consolidate()

	assert.Equal(t, 1, moves)
	sections := e.schedule.Sections()
	require.Len(t, sections, 3)
	// The lone Monday section moved to the first free Tuesday slot.
	assert.Equal(t, "C1", sections[0].Course)
	assert.Equal(t, "Tuesday", sections[0].Interval.Day)
	assert.Equal(t, "H1", sections[0].Hall)
	assert.Equal(t, 1, sections[0].Number)
	// Nothing overlaps after the move.
	for i, a := range sections {
		for _, b := range sections[i+1:] {
			assert.False(t, a.Interval.Overlaps(b.Interval))
		}
	}
}

func TestConsolidateLeavesSectionWhenNoFeasibleTargetSlot(t *testing.T) {
	e := consolidateFixture(func(cfg *Config) {
		// Each day fits exactly one lecture, and the professor holds both.
		cfg.DayHours["Monday"] = DayWindow{Start: 9 * 60, End: 10 * 60}
		cfg.DayHours["Tuesday"] = DayWindow{Start: 9 * 60, End: 10 * 60}
	})
	e.schedule.Add(Section{Course: "C1", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}})
	e.schedule.Add(Section{Course: "C2", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Tuesday", Start: 9 * 60, End: 10 * 60}})

	moves := e.consolidate()

	// Both days hold a single section; neither can host the other's lecture,
	// so the pass changes nothing.
	assert.Equal(t, 0, moves)
	sections := e.schedule.Sections()
	assert.Equal(t, "Monday", sections[0].Interval.Day)
	assert.Equal(t, "Tuesday", sections[1].Interval.Day)
}

func TestConsolidateStopsAfterOneMovePerProfessor(t *testing.T) {
	e := consolidateFixture(func(cfg *Config) {
		cfg.SchoolDays = []string{"Monday", "Tuesday", "Wednesday"}
		// Tuesday fits a single lecture, so the Monday section can only land
		// on Wednesday and Tuesday stays a lone day.
		cfg.DayHours["Tuesday"] = DayWindow{Start: 9 * 60, End: 10 * 60}
		cfg.DayHours["Wednesday"] = DayWindow{Start: 9 * 60, End: 13 * 60}
		cfg.Courses = append(cfg.Courses, "C4")
		cfg.DepartmentCourses["Math"] = append(cfg.DepartmentCourses["Math"], "C4")
		cfg.SectionCounts["C4"] = 1
	})
	e.schedule.Add(Section{Course: "C1", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}})
	e.schedule.Add(Section{Course: "C2", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Tuesday", Start: 9 * 60, End: 10 * 60}})
	e.schedule.Add(Section{Course: "C3", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Wednesday", Start: 9 * 60, End: 10 * 60}})
	e.schedule.Add(Section{Course: "C4", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Wednesday", Start: 605, End: 665}})

	moves := e.consolidate()

	// Monday's lone section relocates; the professor is not revisited, so
	// Tuesday's lone section stays where it was.
	assert.Equal(t, 1, moves)
	dayCount := map[string]int{}
	for _, sec := range e.schedule.Sections() {
		dayCount[sec.Interval.Day]++
	}
	assert.Equal(t, 1, dayCount["Tuesday"])
	assert.Equal(t, 0, dayCount["Monday"])
}

func TestConsolidateSkipsSingleSectionProfessors(t *testing.T) {
	e := consolidateFixture(nil)
	e.schedule.Add(Section{Course: "C1", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}})

	assert.Equal(t, 0, e.consolidate())
	assert.Equal(t, "Monday", e.schedule.Sections()[0].Interval.Day)
}

func TestDistributionFeasible(t *testing.T) {
	e := consolidateFixture(func(cfg *Config) {
		cfg.SectionCounts["C1"] = 2
	})
	e.schedule.Add(Section{Course: "C1", Number: 1, Professor: "P1", Hall: "H1",
		Interval: TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}})

	sameDay := TimeInterval{Day: "Monday", Start: 11 * 60, End: 12 * 60}
	freshDay := TimeInterval{Day: "Tuesday", Start: 11 * 60, End: 12 * 60}

	// Stacking a second section on Monday while Tuesday is unused is not
	// acceptable; a fresh day always is.
	assert.False(t, e.distributionFeasible("C1", sameDay, -1))
	assert.True(t, e.distributionFeasible("C1", freshDay, -1))
	// A course with no other sections may go anywhere.
	assert.True(t, e.distributionFeasible("C2", sameDay, -1))
}

func TestLevelFeasible(t *testing.T) {
	e := consolidateFixture(func(cfg *Config) {
		cfg.LevelCourses = map[string][]string{"Freshman": {"C1", "C2", "C3"}}
		cfg.SectionCounts = map[string]int{"C1": 2, "C2": 2, "C3": 2}
	})
	intervals := []TimeInterval{
		{Day: "Monday", Start: 9 * 60, End: 10 * 60},
		{Day: "Monday", Start: 605, End: 665},
		{Day: "Monday", Start: 11 * 60, End: 12 * 60},
	}
	for i, iv := range intervals {
		e.schedule.Add(Section{Course: "C1", Number: i + 1, Professor: "P1", Hall: "H1", Interval: iv})
	}

	// Monday already holds three level sections, Tuesday none: a fourth on
	// Monday would push the spread past two.
	assert.False(t, e.levelFeasible("C2", TimeInterval{Day: "Monday", Start: 12 * 60, End: 13 * 60}, -1))
	assert.True(t, e.levelFeasible("C2", TimeInterval{Day: "Tuesday", Start: 9 * 60, End: 10 * 60}, -1))
	// Courses outside any level are unconstrained.
	e2 := consolidateFixture(nil)
	assert.True(t, e2.levelFeasible("C1", TimeInterval{Day: "Monday", Start: 9 * 60, End: 10 * 60}, -1))
}
