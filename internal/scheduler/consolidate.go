package scheduler

// consolidate is the bounded local-search pass: for each professor commuting
// in for a single section on some day, try to move that section onto a day
// they already teach. Hard constraints and the coarse distribution/balance
// predicates must all hold at the target slot; candidates are not re-scored.
// One successful relocation per professor, single pass, no rollback.
func (e *Engine) consolidate() int {
	moves := 0
	for _, professor := range e.cfg.Professors {
		indexes := e.schedule.professorSectionIndexes(professor)
		if len(indexes) <= 1 {
			continue
		}

		var dayOrder []string
		byDay := make(map[string][]int)
		for _, idx := range indexes {
			day := e.schedule.sections[idx].Interval.Day
			if _, seen := byDay[day]; !seen {
				dayOrder = append(dayOrder, day)
			}
			byDay[day] = append(byDay[day], idx)
		}

		for _, day := range dayOrder {
			if len(byDay[day]) != 1 {
				continue
			}
			if e.relocate(byDay[day][0], day, dayOrder, byDay) {
				moves++
				break
			}
		}
	}
	return moves
}

// relocate tries the section's candidate slots on each target day in turn
// and commits the first one that stays feasible. The moved section keeps its
// identity, professor and hall; only the interval changes.
func (e *Engine) relocate(secIdx int, fromDay string, dayOrder []string, byDay map[string][]int) bool {
	sec := e.schedule.sections[secIdx]
	for _, target := range dayOrder {
		if target == fromDay || len(byDay[target]) == 0 {
			continue
		}
		for _, slot := range e.slotsFor(sec.Course) {
			if slot.Day != target {
				continue
			}
			if !e.schedule.hallFreeExcluding(sec.Hall, slot, secIdx) {
				continue
			}
			if !e.schedule.professorFreeExcluding(sec.Professor, slot, secIdx) {
				continue
			}
			if !e.distributionFeasible(sec.Course, slot, secIdx) {
				continue
			}
			if !e.levelFeasible(sec.Course, slot, secIdx) {
				continue
			}
			moved := sec
			moved.Interval = slot
			e.schedule.Replace(secIdx, moved)
			return true
		}
	}
	return false
}

// distributionFeasible rejects stacking another section of a course onto a
// day it already occupies while unused days remain.
func (e *Engine) distributionFeasible(course string, slot TimeInterval, skip int) bool {
	others := e.schedule.courseSections(course, skip)
	if len(others) == 0 {
		return true
	}
	sameDay := 0
	for _, idx := range others {
		if e.schedule.sections[idx].Interval.Day == slot.Day {
			sameDay++
		}
	}
	if sameDay > 0 && len(e.cfg.SchoolDays) > sameDay {
		return false
	}
	return true
}

// levelFeasible keeps per-day section counts across an academic level within
// a spread of two.
func (e *Engine) levelFeasible(course string, slot TimeInterval, skip int) bool {
	level, ok := e.levelOf(course)
	if !ok {
		return true
	}
	counts := make(map[string]int, len(e.cfg.SchoolDays))
	for _, day := range e.cfg.SchoolDays {
		counts[day] = 0
	}
	for _, sibling := range e.cfg.LevelCourses[level] {
		for _, idx := range e.schedule.byCourse[sibling] {
			if idx == skip {
				continue
			}
			counts[e.schedule.sections[idx].Interval.Day]++
		}
	}
	counts[slot.Day]++

	first := true
	var minCount, maxCount int
	for _, day := range e.cfg.SchoolDays {
		c := counts[day]
		if first {
			minCount, maxCount = c, c
			first = false
			continue
		}
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}
	return maxCount-minCount <= 2
}
