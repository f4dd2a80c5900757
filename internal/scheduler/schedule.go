package scheduler

// Section is one scheduled meeting of a course, bound to a professor, a hall
// and a time interval. Identity is the (Course, Number) pair.
type Section struct {
	Course    string
	Number    int
	Professor string
	Hall      string
	Interval  TimeInterval
}

type resourceDay struct {
	id  string
	day string
}

// Schedule is the insertion-ordered collection of sections built during one
// generation run. The no-double-booking invariant is enforced by
// construction: callers only add sections for slots that passed the
// availability checks. Sections are indexed by (resource, day) so that
// availability queries stay cheap as the schedule grows; the indexes never
// change which candidate wins.
type Schedule struct {
	sections []Section

	profDays map[resourceDay][]int
	hallDays map[resourceDay][]int
	byCourse map[string][]int
	hallLoad map[string]int
	profLoad map[string]int
}

// NewSchedule returns an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{
		profDays: make(map[resourceDay][]int),
		hallDays: make(map[resourceDay][]int),
		byCourse: make(map[string][]int),
		hallLoad: make(map[string]int),
		profLoad: make(map[string]int),
	}
}

// Len returns the number of sections placed so far.
func (s *Schedule) Len() int {
	return len(s.sections)
}

// Sections returns a copy of the sections in insertion order.
func (s *Schedule) Sections() []Section {
	out := make([]Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Add appends a section and updates the resource indexes.
func (s *Schedule) Add(sec Section) {
	s.sections = append(s.sections, sec)
	s.indexSection(len(s.sections)-1, sec)
}

// Replace swaps the section at idx in place, keeping insertion order, and
// rebuilds the indexes.
func (s *Schedule) Replace(idx int, sec Section) {
	s.sections[idx] = sec
	s.reindex()
}

func (s *Schedule) reindex() {
	s.profDays = make(map[resourceDay][]int)
	s.hallDays = make(map[resourceDay][]int)
	s.byCourse = make(map[string][]int)
	s.hallLoad = make(map[string]int)
	s.profLoad = make(map[string]int)
	for idx, sec := range s.sections {
		s.indexSection(idx, sec)
	}
}

func (s *Schedule) indexSection(idx int, sec Section) {
	pk := resourceDay{id: sec.Professor, day: sec.Interval.Day}
	hk := resourceDay{id: sec.Hall, day: sec.Interval.Day}
	s.profDays[pk] = append(s.profDays[pk], idx)
	s.hallDays[hk] = append(s.hallDays[hk], idx)
	s.byCourse[sec.Course] = append(s.byCourse[sec.Course], idx)
	s.hallLoad[sec.Hall]++
	s.profLoad[sec.Professor]++
}

// ProfessorFree reports whether no existing section of the professor
// overlaps the slot.
func (s *Schedule) ProfessorFree(professor string, slot TimeInterval) bool {
	return s.professorFreeExcluding(professor, slot, -1)
}

// HallFree reports whether no existing section in the hall overlaps the slot.
func (s *Schedule) HallFree(hall string, slot TimeInterval) bool {
	return s.hallFreeExcluding(hall, slot, -1)
}

func (s *Schedule) professorFreeExcluding(professor string, slot TimeInterval, skip int) bool {
	for _, idx := range s.profDays[resourceDay{id: professor, day: slot.Day}] {
		if idx == skip {
			continue
		}
		if s.sections[idx].Interval.Overlaps(slot) {
			return false
		}
	}
	return true
}

func (s *Schedule) hallFreeExcluding(hall string, slot TimeInterval, skip int) bool {
	for _, idx := range s.hallDays[resourceDay{id: hall, day: slot.Day}] {
		if idx == skip {
			continue
		}
		if s.sections[idx].Interval.Overlaps(slot) {
			return false
		}
	}
	return true
}

// courseSections returns the indexes of sections belonging to the course,
// optionally skipping one index.
func (s *Schedule) courseSections(course string, skip int) []int {
	var out []int
	for _, idx := range s.byCourse[course] {
		if idx != skip {
			out = append(out, idx)
		}
	}
	return out
}

// professorDaySections returns the sections the professor teaches on the
// given day, in insertion order.
func (s *Schedule) professorDaySections(professor, day string) []Section {
	var out []Section
	for _, idx := range s.profDays[resourceDay{id: professor, day: day}] {
		out = append(out, s.sections[idx])
	}
	return out
}

// professorSectionIndexes returns the indexes of the professor's sections in
// insertion order.
func (s *Schedule) professorSectionIndexes(professor string) []int {
	var out []int
	for idx, sec := range s.sections {
		if sec.Professor == professor {
			out = append(out, idx)
		}
	}
	return out
}

func (s *Schedule) hallUsage(hall string) int {
	return s.hallLoad[hall]
}

func (s *Schedule) professorLoad(professor string) int {
	return s.profLoad[professor]
}
