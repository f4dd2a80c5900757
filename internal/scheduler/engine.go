package scheduler

import (
	"sort"

	"go.uber.org/zap"
)

// Engine builds one timetable from a Config. It is single-use: construct,
// Build, discard. Nothing survives between runs and no ambient randomness is
// consulted, so identical input always yields an identical timetable.
type Engine struct {
	cfg    Config
	logger *zap.Logger

	courseLevel map[string]string
	courseDept  map[string]string
	eligibility *EligibilityIndex
	schedule    *Schedule
}

// Shortfall records a course that received fewer sections than requested.
type Shortfall struct {
	Course    string
	Requested int
	Scheduled int
}

// Result carries the finished timetable together with generation statistics.
type Result struct {
	Sections           []Section
	Shortfalls         []Shortfall
	ConsolidationMoves int
}

// NewEngine prepares a generation run: course level and department lookups
// plus the eligibility index are precomputed here, once per call.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		cfg:         cfg,
		logger:      logger,
		courseLevel: make(map[string]string),
		courseDept:  make(map[string]string),
		schedule:    NewSchedule(),
	}

	// level_courses arrives as an unordered mapping; walk its keys sorted so
	// a course listed under several levels resolves the same way every run.
	levels := make([]string, 0, len(cfg.LevelCourses))
	for level := range cfg.LevelCourses {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	for _, level := range levels {
		for _, course := range cfg.LevelCourses[level] {
			if _, ok := e.courseLevel[course]; !ok {
				e.courseLevel[course] = level
			}
		}
	}

	for _, dept := range cfg.Departments {
		for _, course := range cfg.DepartmentCourses[dept] {
			if _, ok := e.courseDept[course]; !ok {
				e.courseDept[course] = dept
			}
		}
	}

	e.eligibility = buildEligibility(&e.cfg)
	return e
}

// Eligibility exposes the precomputed course/professor qualification index.
func (e *Engine) Eligibility() *EligibilityIndex {
	return e.eligibility
}

// Build runs the full pipeline: greedy section assignment followed by the
// consolidation pass. Under-provisioned courses are reported in the result
// and logged, never returned as errors.
func (e *Engine) Build() (*Result, error) {
	if err := e.cfg.validate(); err != nil {
		return nil, err
	}
	shortfalls := e.assign()
	moves := e.consolidate()
	return &Result{
		Sections:           e.schedule.Sections(),
		Shortfalls:         shortfalls,
		ConsolidationMoves: moves,
	}, nil
}

func (e *Engine) levelOf(course string) (string, bool) {
	level, ok := e.courseLevel[course]
	return level, ok
}

func (e *Engine) departmentOf(course string) (string, bool) {
	dept, ok := e.courseDept[course]
	return dept, ok
}
