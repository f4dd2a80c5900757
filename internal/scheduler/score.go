package scheduler

import "math"

// Composite weights. They sum to 1 so the final score is a convex
// combination of the clamped sub-scores.
const (
	weightTimePreference  = 0.20
	weightDistribution    = 0.25
	weightLevelBalance    = 0.20
	weightProfessorFit    = 0.15
	weightHallUtilization = 0.10
	weightScheduleGaps    = 0.10
)

const (
	// Day-relative preference bands.
	bandEarly  = "early"
	bandMiddle = "middle"
	bandLate   = "late"

	// Same-day sections of one course closer than this are penalized.
	comfortableSpacing = 120
	// Professor back-to-back bookings tighter than this are penalized.
	comfortableGap = 60

	// Fallback operating window when a day has no declared hours.
	fallbackDayStart = 8 * 60
	fallbackDayEnd   = 18 * 60
)

// Absolute clock bands used for level balancing: morning, afternoon, evening.
const (
	morningEnd   = 12 * 60
	afternoonEnd = 17 * 60
)

// scoreCandidate combines the six sub-scores for a (slot, professor, hall)
// triple. Every sub-score is clamped to [0,1] before weighting; the
// normalization constants can stray outside that range on degenerate inputs
// such as a single school day.
func (e *Engine) scoreCandidate(course string, slot TimeInterval, professor, hall string) float64 {
	score := weightTimePreference * clamp01(e.timePreferenceScore(course, slot))
	score += weightDistribution * clamp01(e.distributionScore(course, slot))
	score += weightLevelBalance * clamp01(e.levelBalanceScore(course, slot))
	score += weightProfessorFit * clamp01(e.professorFitScore(course, slot, professor))
	score += weightHallUtilization * clamp01(e.hallUtilizationScore(hall))
	score += weightScheduleGaps * clamp01(e.scheduleGapScore(professor, slot))
	return score
}

// timePreferenceScore compares the slot's position within its day (split
// into three equal thirds) against the course's declared preference. A
// course without a preference scores neutral; the opposite extreme is
// penalized harder than a band adjacent to the middle.
func (e *Engine) timePreferenceScore(course string, slot TimeInterval) float64 {
	preference, ok := e.cfg.CoursePreferredTimes[course]
	if !ok || preference == "" {
		return 0.5
	}
	band := e.daySliceOf(slot)
	switch {
	case band == preference:
		return 1.0
	case band == bandMiddle || preference == bandMiddle:
		return 0.5
	default:
		return 0.2
	}
}

func (e *Engine) daySliceOf(slot TimeInterval) string {
	window, ok := e.cfg.DayHours[slot.Day]
	if !ok {
		window = DayWindow{Start: fallbackDayStart, End: fallbackDayEnd}
	}
	length := window.End - window.Start
	earlyEnd := float64(window.Start) + float64(length)/3
	middleEnd := float64(window.Start) + 2*float64(length)/3
	start := float64(slot.Start)
	switch {
	case start < earlyEnd:
		return bandEarly
	case start < middleEnd:
		return bandMiddle
	default:
		return bandLate
	}
}

// distributionScore rewards spreading a course's sections across days,
// blended with a same-day spacing sub-score. The first section of a course,
// or a course needing only one section, is always a perfect fit.
func (e *Engine) distributionScore(course string, slot TimeInterval) float64 {
	existing := e.schedule.courseSections(course, -1)
	if len(existing) == 0 || e.cfg.sectionsRequired(course) <= 1 {
		return 1.0
	}

	counts := make([]float64, len(e.cfg.SchoolDays))
	minSameDayGap := -1
	for _, idx := range existing {
		sec := e.schedule.sections[idx]
		if pos := e.dayPosition(sec.Interval.Day); pos >= 0 {
			counts[pos]++
		}
		if sec.Interval.Day == slot.Day {
			gap := slot.GapMinutes(sec.Interval)
			if minSameDayGap < 0 || gap < minSameDayGap {
				minSameDayGap = gap
			}
		}
	}
	if pos := e.dayPosition(slot.Day); pos >= 0 {
		counts[pos]++
	}

	dayScore := varianceBalance(counts)
	spacing := 1.0
	if minSameDayGap >= 0 {
		spacing = clamp01(float64(minSameDayGap) / comfortableSpacing)
	}
	return 0.75*dayScore + 0.25*spacing
}

// levelBalanceScore keeps the per-day and per-band load of an academic level
// even. Courses without a declared level score neutral.
func (e *Engine) levelBalanceScore(course string, slot TimeInterval) float64 {
	level, ok := e.levelOf(course)
	if !ok {
		return 0.5
	}

	dayCounts := make([]float64, len(e.cfg.SchoolDays))
	bandCounts := make([]float64, 3)
	for _, sibling := range e.cfg.LevelCourses[level] {
		for _, idx := range e.schedule.byCourse[sibling] {
			sec := e.schedule.sections[idx]
			if pos := e.dayPosition(sec.Interval.Day); pos >= 0 {
				dayCounts[pos]++
			}
			if sec.Interval.Day == slot.Day {
				bandCounts[clockBand(sec.Interval.Start)]++
			}
		}
	}
	if pos := e.dayPosition(slot.Day); pos >= 0 {
		dayCounts[pos]++
	}
	bandCounts[clockBand(slot.Start)]++

	return 0.7*spreadBalance(dayCounts) + 0.3*spreadBalance(bandCounts)
}

// professorFitScore measures how well the slot and course match the
// professor's declared preferences. No declared windows means any time
// matches.
func (e *Engine) professorFitScore(course string, slot TimeInterval, professor string) float64 {
	timeMatch := e.withinPreferredTimes(professor, slot)
	courseMatch := e.prefersCourse(professor, course)
	switch {
	case timeMatch && courseMatch:
		return 1.0
	case timeMatch:
		return 0.7
	case courseMatch:
		return 0.6
	default:
		return 0.3
	}
}

// hallUtilizationScore favors halls at or below the mean usage, decaying
// linearly to zero as a hall reaches three times the mean.
func (e *Engine) hallUtilizationScore(hall string) float64 {
	if len(e.cfg.Halls) == 0 {
		return 1.0
	}
	usage := float64(e.schedule.hallUsage(hall))
	mean := float64(e.schedule.Len()) / float64(len(e.cfg.Halls))
	if usage <= mean {
		return 1.0
	}
	if mean == 0 {
		return 0.0
	}
	return clamp01((3*mean - usage) / (2 * mean))
}

// scheduleGapScore penalizes very tight back-to-back bookings for the
// professor on the slot's day.
func (e *Engine) scheduleGapScore(professor string, slot TimeInterval) float64 {
	sameDay := e.schedule.professorDaySections(professor, slot.Day)
	if len(sameDay) == 0 {
		return 1.0
	}
	minGap := -1
	for _, sec := range sameDay {
		gap := slot.GapMinutes(sec.Interval)
		if minGap < 0 || gap < minGap {
			minGap = gap
		}
	}
	if minGap >= comfortableGap {
		return 1.0
	}
	return clamp01(float64(minGap) / comfortableGap)
}

func (e *Engine) withinPreferredTimes(professor string, slot TimeInterval) bool {
	windows := e.cfg.ProfessorPreferredTimes[professor]
	if len(windows) == 0 {
		return true
	}
	for _, window := range windows {
		if window.Contains(slot) {
			return true
		}
	}
	return false
}

func (e *Engine) prefersCourse(professor, course string) bool {
	for _, preferred := range e.cfg.ProfessorPreferredCourses[professor] {
		if preferred == course {
			return true
		}
	}
	return false
}

func (e *Engine) dayPosition(day string) int {
	for i, d := range e.cfg.SchoolDays {
		if d == day {
			return i
		}
	}
	return -1
}

func clockBand(startMinute int) int {
	switch {
	case startMinute < morningEnd:
		return 0
	case startMinute < afternoonEnd:
		return 1
	default:
		return 2
	}
}

// varianceBalance returns 1 minus the counts' variance normalized by the
// worst case (everything piled on one day), clamped to [0,1].
func varianceBalance(counts []float64) float64 {
	mean, variance, n := meanVariance(counts)
	if n <= 1 || mean == 0 {
		return 1.0
	}
	maxVariance := mean * mean * float64(n-1)
	return clamp01(1 - variance/maxVariance)
}

// spreadBalance is the standard-deviation analogue of varianceBalance.
func spreadBalance(counts []float64) float64 {
	mean, variance, n := meanVariance(counts)
	if n <= 1 || mean == 0 {
		return 1.0
	}
	maxSpread := mean * math.Sqrt(float64(n-1))
	return clamp01(1 - math.Sqrt(variance)/maxSpread)
}

func meanVariance(counts []float64) (mean, variance float64, n int) {
	n = len(counts)
	if n == 0 {
		return 0, 0, 0
	}
	var total float64
	for _, c := range counts {
		total += c
	}
	mean = total / float64(n)
	for _, c := range counts {
		variance += (c - mean) * (c - mean)
	}
	variance /= float64(n)
	return mean, variance, n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
