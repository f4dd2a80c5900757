package scheduler

// slotsFor enumerates every feasible candidate slot for a course: one pass
// per operating day in declared order, stepping from the opening time by
// lecture duration plus the inter-slot break, dropping anything that touches
// a globally restricted interval. The result depends only on the course
// duration and the institution config, never on the evolving schedule.
func (e *Engine) slotsFor(course string) []TimeInterval {
	duration := e.cfg.durationOf(course)
	var slots []TimeInterval
	for _, day := range e.cfg.SchoolDays {
		window, ok := e.cfg.DayHours[day]
		if !ok {
			continue
		}
		for cursor := window.Start; cursor+duration <= window.End; cursor += duration + interSlotBreak {
			slot := TimeInterval{Day: day, Start: cursor, End: cursor + duration}
			if e.restricted(slot) {
				continue
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

func (e *Engine) restricted(slot TimeInterval) bool {
	for _, blocked := range e.cfg.RestrictedTimes {
		if slot.Overlaps(blocked) {
			return true
		}
	}
	return false
}
