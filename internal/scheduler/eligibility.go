package scheduler

// EligibilityIndex is the precomputed mapping between courses and the
// professors qualified to teach them, by department specialty or explicit
// preference. Both directions preserve declaration order so downstream
// tie-breaking stays deterministic.
type EligibilityIndex struct {
	byCourse    map[string][]string
	byProfessor map[string][]string
}

func buildEligibility(cfg *Config) *EligibilityIndex {
	idx := &EligibilityIndex{
		byCourse:    make(map[string][]string),
		byProfessor: make(map[string][]string),
	}
	for _, professor := range cfg.Professors {
		seen := make(map[string]bool)
		var courses []string
		for _, dept := range cfg.ProfessorSpecialties[professor] {
			for _, course := range cfg.DepartmentCourses[dept] {
				if seen[course] {
					continue
				}
				seen[course] = true
				courses = append(courses, course)
			}
		}
		for _, course := range cfg.ProfessorPreferredCourses[professor] {
			if seen[course] {
				continue
			}
			seen[course] = true
			courses = append(courses, course)
		}
		idx.byProfessor[professor] = courses
		for _, course := range courses {
			idx.byCourse[course] = append(idx.byCourse[course], professor)
		}
	}
	return idx
}

// EligibleProfessors returns the professors qualified for the course, in
// professor declaration order. An empty result means the assigner falls back
// to the full professor set.
func (i *EligibilityIndex) EligibleProfessors(course string) []string {
	return i.byCourse[course]
}

// CoursesFor returns the courses a professor may teach.
func (i *EligibilityIndex) CoursesFor(professor string) []string {
	return i.byProfessor[professor]
}
