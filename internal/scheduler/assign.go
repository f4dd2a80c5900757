package scheduler

import (
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Priority weights: a course nobody is qualified to teach gets scheduled
// first so it can still fall back to the full professor pool while the
// timetable is empty.
const (
	orphanCoursePriority       = 1000.0
	constrainedCoursePriority  = 100.0
	parallelScanMinimumWorkers = 2
)

type candidateResult struct {
	ok        bool
	professor string
	hall      string
	score     float64
}

// assign runs the greedy control loop: courses ordered by scheduling
// pressure, then one exhaustive candidate scan per required section. Returns
// the courses that could not be fully provisioned.
func (e *Engine) assign() []Shortfall {
	var shortfalls []Shortfall
	for _, course := range e.coursesByPriority() {
		required := e.cfg.sectionsRequired(course)
		candidates := e.slotsFor(course)
		placed := 0
		for placed < required && len(candidates) > 0 {
			bestIdx := -1
			best := candidateResult{score: -1}
			for i, result := range e.scanCandidates(course, candidates) {
				if !result.ok {
					continue
				}
				// Strict improvement only: the first best candidate wins ties.
				if result.score > best.score {
					best = result
					bestIdx = i
				}
			}
			if bestIdx < 0 {
				break
			}
			e.schedule.Add(Section{
				Course:    course,
				Number:    placed + 1,
				Professor: best.professor,
				Hall:      best.hall,
				Interval:  candidates[bestIdx],
			})
			candidates = append(candidates[:bestIdx], candidates[bestIdx+1:]...)
			placed++
		}
		if placed < required {
			e.logger.Warn("course under-provisioned",
				zap.String("course", course),
				zap.Int("scheduled", placed),
				zap.Int("requested", required),
			)
			shortfalls = append(shortfalls, Shortfall{Course: course, Requested: required, Scheduled: placed})
		}
	}
	return shortfalls
}

// coursesByPriority orders courses by descending scheduling pressure,
// keeping declaration order for ties.
func (e *Engine) coursesByPriority() []string {
	type entry struct {
		course string
		weight float64
	}
	entries := make([]entry, 0, len(e.cfg.Courses))
	for _, course := range e.cfg.Courses {
		required := float64(e.cfg.sectionsRequired(course))
		eligible := len(e.eligibility.EligibleProfessors(course))
		weight := required * orphanCoursePriority
		if eligible > 0 {
			weight = required * constrainedCoursePriority / float64(eligible)
		}
		entries = append(entries, entry{course: course, weight: weight})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].weight > entries[j].weight
	})
	ordered := make([]string, len(entries))
	for i, en := range entries {
		ordered[i] = en.course
	}
	return ordered
}

// scanCandidates evaluates every remaining slot against a fixed schedule
// snapshot. The per-slot evaluations are independent pure reads, so they run
// on a small worker pool; results are collected by index, which keeps the
// first-seen tie-break identical to a sequential scan.
func (e *Engine) scanCandidates(course string, slots []TimeInterval) []candidateResult {
	results := make([]candidateResult, len(slots))
	workers := runtime.GOMAXPROCS(0)
	if workers > len(slots) {
		workers = len(slots)
	}
	if workers < parallelScanMinimumWorkers {
		for i, slot := range slots {
			results[i] = e.evaluateCandidate(course, slot)
		}
		return results
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = e.evaluateCandidate(course, slots[i])
			}
		}()
	}
	for i := range slots {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
	return results
}

func (e *Engine) evaluateCandidate(course string, slot TimeInterval) candidateResult {
	professor, ok := e.pickProfessor(course, slot)
	if !ok {
		return candidateResult{}
	}
	hall, ok := e.pickHall(slot)
	if !ok {
		return candidateResult{}
	}
	return candidateResult{
		ok:        true,
		professor: professor,
		hall:      hall,
		score:     e.scoreCandidate(course, slot, professor, hall),
	}
}

// pickProfessor chooses the best eligible professor free at the slot.
// Preference for the course and the right specialty outweigh a convenient
// time; current workload counts against a professor so assignments spread
// out. First-seen order in the candidate pool breaks ties.
func (e *Engine) pickProfessor(course string, slot TimeInterval) (string, bool) {
	pool := e.eligibility.EligibleProfessors(course)
	if len(pool) == 0 {
		pool = e.cfg.Professors
	}
	dept, hasDept := e.departmentOf(course)

	bestScore := 0.0
	best := ""
	found := false
	for _, professor := range pool {
		if !e.schedule.ProfessorFree(professor, slot) {
			continue
		}
		score := 0.0
		if e.prefersCourse(professor, course) {
			score += 30
		}
		if hasDept && e.hasSpecialty(professor, dept) {
			score += 20
		}
		if e.withinPreferredTimes(professor, slot) {
			score += 10
		}
		score -= 2 * float64(e.schedule.professorLoad(professor))
		if !found || score > bestScore {
			bestScore = score
			best = professor
			found = true
		}
	}
	return best, found
}

// pickHall chooses the least used hall free at the slot; declared hall order
// breaks ties.
func (e *Engine) pickHall(slot TimeInterval) (string, bool) {
	best := ""
	bestLoad := 0
	found := false
	for _, hall := range e.cfg.Halls {
		if !e.schedule.HallFree(hall, slot) {
			continue
		}
		load := e.schedule.hallUsage(hall)
		if !found || load < bestLoad {
			best = hall
			bestLoad = load
			found = true
		}
	}
	return best, found
}

func (e *Engine) hasSpecialty(professor, dept string) bool {
	for _, specialty := range e.cfg.ProfessorSpecialties[professor] {
		if specialty == dept {
			return true
		}
	}
	return false
}
