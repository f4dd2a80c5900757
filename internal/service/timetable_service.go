package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/university-scheduler-api/internal/dto"
	"github.com/noah-isme/university-scheduler-api/internal/scheduler"
	appErrors "github.com/noah-isme/university-scheduler-api/pkg/errors"
	"github.com/noah-isme/university-scheduler-api/pkg/export"
)

// TimetableServiceConfig governs result retention and export rendering.
type TimetableServiceConfig struct {
	ResultTTL time.Duration
	PDFTitle  string
}

// TimetableService runs the generation engine and keeps finished timetables
// available for re-fetch and export until they expire.
type TimetableService struct {
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	store     *resultStore
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	pdfTitle  string
}

// NewTimetableService wires the timetable dependencies.
func NewTimetableService(validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cfg TimetableServiceConfig) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 30 * time.Minute
	}
	if cfg.PDFTitle == "" {
		cfg.PDFTitle = "University Timetable"
	}
	return &TimetableService{
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		store:     newResultStore(cfg.ResultTTL),
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		pdfTitle:  cfg.PDFTitle,
	}
}

// Generate validates the configuration document, runs one engine build and
// stores the finished timetable under a fresh result id.
func (s *TimetableService) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	if field, ok := missingRequiredField(req); ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "missing required field: "+field)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable configuration")
	}

	engineCfg, err := buildEngineConfig(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, buildErr := scheduler.NewEngine(engineCfg, s.logger).Build()
	if buildErr != nil {
		return nil, appErrors.Wrap(buildErr, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "timetable generation failed")
	}
	elapsed := time.Since(start)

	stats := buildStats(req, result)
	s.metrics.ObserveGeneration(elapsed, stats.SectionsPlaced, sectionShortfall(result), stats.ConsolidationMoves)
	s.logger.Info("timetable generated",
		zap.Int("courses", stats.CoursesRequested),
		zap.Int("sections_requested", stats.SectionsRequested),
		zap.Int("sections_placed", stats.SectionsPlaced),
		zap.Int("under_provisioned_courses", len(stats.UnderProvisioned)),
		zap.Int("consolidation_moves", stats.ConsolidationMoves),
		zap.Duration("elapsed", elapsed),
	)

	resp := &dto.GenerateTimetableResponse{
		ResultID: uuid.NewString(),
		Sections: sectionRecords(result.Sections),
		Stats:    stats,
	}
	s.store.Save(storedTimetable{
		ID:        resp.ResultID,
		Sections:  resp.Sections,
		Stats:     resp.Stats,
		CreatedAt: time.Now().UTC(),
	})
	return resp, nil
}

// Get re-fetches a stored timetable by result id.
func (s *TimetableService) Get(ctx context.Context, id string) (*dto.GenerateTimetableResponse, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "result id is required")
	}
	stored, ok := s.store.Get(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "timetable result not found or expired")
	}
	return &dto.GenerateTimetableResponse{
		ResultID: stored.ID,
		Sections: stored.Sections,
		Stats:    stored.Stats,
	}, nil
}

// Export renders a stored timetable as CSV or PDF and reports the content type.
func (s *TimetableService) Export(ctx context.Context, id, format string) ([]byte, string, error) {
	stored, ok := s.store.Get(id)
	if !ok {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "timetable result not found or expired")
	}
	switch strings.ToLower(format) {
	case "csv":
		out, err := s.csv.Render(stored.Sections)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return out, "text/csv", nil
	case "pdf":
		out, err := s.pdf.Render(timetableDataset(stored.Sections), s.pdfTitle)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return out, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format: %s", format))
	}
}

// missingRequiredField distinguishes an absent collection (nil after JSON
// decoding) from a present-but-empty one, so the error can name the field.
func missingRequiredField(req dto.GenerateTimetableRequest) (string, bool) {
	switch {
	case req.Halls == nil:
		return "halls", true
	case req.SchoolDays == nil:
		return "school_days", true
	case req.Departments == nil:
		return "departments", true
	case req.Professors == nil:
		return "professors", true
	case req.Courses == nil:
		return "courses", true
	case req.LevelCourses == nil:
		return "level_courses", true
	case req.DepartmentCourses == nil:
		return "department_courses", true
	case req.DaysWithHours == nil:
		return "days_with_hours", true
	case req.CourseSectionsCount == nil:
		return "course_sections_count", true
	}
	return "", false
}

func buildEngineConfig(req dto.GenerateTimetableRequest) (scheduler.Config, error) {
	cfg := scheduler.Config{
		Halls:                     req.Halls,
		SchoolDays:                req.SchoolDays,
		Departments:               req.Departments,
		Professors:                req.Professors,
		Courses:                   req.Courses,
		LevelCourses:              req.LevelCourses,
		DepartmentCourses:         req.DepartmentCourses,
		ProfessorSpecialties:      req.ProfessorSpecialties,
		ProfessorPreferredCourses: req.ProfessorPreferredCourses,
		CoursePreferredTimes:      req.CoursePreferredTimes,
		LectureDurations:          req.CourseLectureDurations,
		SectionCounts:             req.CourseSectionsCount,
	}

	cfg.DayHours = make(map[string]scheduler.DayWindow, len(req.DaysWithHours))
	for day, hours := range req.DaysWithHours {
		start, err := scheduler.ParseClock(hours.Start)
		if err != nil {
			return scheduler.Config{}, malformedTime("days_with_hours", day, err)
		}
		end, err := scheduler.ParseClock(hours.End)
		if err != nil {
			return scheduler.Config{}, malformedTime("days_with_hours", day, err)
		}
		cfg.DayHours[day] = scheduler.DayWindow{Start: start, End: end}
	}

	if len(req.ProfessorPreferredTimes) > 0 {
		cfg.ProfessorPreferredTimes = make(map[string][]scheduler.TimeInterval, len(req.ProfessorPreferredTimes))
		for professor, windows := range req.ProfessorPreferredTimes {
			parsed, err := parseWindows(windows)
			if err != nil {
				return scheduler.Config{}, malformedTime("professor_preferred_times", professor, err)
			}
			cfg.ProfessorPreferredTimes[professor] = parsed
		}
	}

	if len(req.RestrictedTimes) > 0 {
		parsed, err := parseWindows(req.RestrictedTimes)
		if err != nil {
			return scheduler.Config{}, malformedTime("restricted_times", "", err)
		}
		cfg.RestrictedTimes = parsed
	}

	return cfg, nil
}

func parseWindows(windows []dto.TimeWindowPayload) ([]scheduler.TimeInterval, error) {
	result := make([]scheduler.TimeInterval, 0, len(windows))
	for _, window := range windows {
		start, err := scheduler.ParseClock(window.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := scheduler.ParseClock(window.EndTime)
		if err != nil {
			return nil, err
		}
		result = append(result, scheduler.TimeInterval{Day: window.Day, Start: start, End: end})
	}
	return result, nil
}

func malformedTime(field, key string, err error) *appErrors.Error {
	msg := fmt.Sprintf("malformed time in %s", field)
	if key != "" {
		msg = fmt.Sprintf("%s (%s)", msg, key)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, msg)
}

// sectionShortfall totals the sections the engine could not place. Summing
// over the per-course shortfalls keeps the value non-negative even when the
// request omits courses from course_sections_count and the engine falls back
// to one required section each.
func sectionShortfall(result *scheduler.Result) int {
	total := 0
	for _, sf := range result.Shortfalls {
		total += sf.Requested - sf.Scheduled
	}
	return total
}

func buildStats(req dto.GenerateTimetableRequest, result *scheduler.Result) dto.TimetableStats {
	// Mirrors the engine's defaulting: a course absent from
	// course_sections_count still requires one section.
	requested := 0
	for _, course := range req.Courses {
		count, ok := req.CourseSectionsCount[course]
		if !ok || count <= 0 {
			count = 1
		}
		requested += count
	}
	shortfalls := make([]dto.CourseShortfall, 0, len(result.Shortfalls))
	for _, sf := range result.Shortfalls {
		shortfalls = append(shortfalls, dto.CourseShortfall{
			CourseID:  sf.Course,
			Requested: sf.Requested,
			Scheduled: sf.Scheduled,
		})
	}
	return dto.TimetableStats{
		CoursesRequested:   len(req.Courses),
		SectionsRequested:  requested,
		SectionsPlaced:     len(result.Sections),
		UnderProvisioned:   shortfalls,
		ConsolidationMoves: result.ConsolidationMoves,
	}
}

func sectionRecords(sections []scheduler.Section) []dto.TimetableSectionRecord {
	records := make([]dto.TimetableSectionRecord, 0, len(sections))
	for _, sec := range sections {
		records = append(records, dto.TimetableSectionRecord{
			CourseID:      sec.Course,
			SectionNumber: sec.Number,
			ProfessorID:   sec.Professor,
			HallID:        sec.Hall,
			Day:           sec.Interval.Day,
			StartTime:     scheduler.FormatClock(sec.Interval.Start),
			EndTime:       scheduler.FormatClock(sec.Interval.End),
		})
	}
	return records
}

func timetableDataset(records []dto.TimetableSectionRecord) export.Dataset {
	headers := []string{"course_id", "section_number", "professor_id", "hall_id", "day", "start_time", "end_time"}
	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, map[string]string{
			"course_id":      rec.CourseID,
			"section_number": fmt.Sprintf("%d", rec.SectionNumber),
			"professor_id":   rec.ProfessorID,
			"hall_id":        rec.HallID,
			"day":            rec.Day,
			"start_time":     rec.StartTime,
			"end_time":       rec.EndTime,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

// --- Result cache ---

type storedTimetable struct {
	ID        string
	Sections  []dto.TimetableSectionRecord
	Stats     dto.TimetableStats
	CreatedAt time.Time
}

type resultStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]storedTimetable
}

func newResultStore(ttl time.Duration) *resultStore {
	return &resultStore{
		ttl:   ttl,
		items: make(map[string]storedTimetable),
	}
}

func (s *resultStore) Save(item storedTimetable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
}

func (s *resultStore) Get(id string) (storedTimetable, bool) {
	s.mu.RLock()
	item, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return storedTimetable{}, false
	}
	if time.Since(item.CreatedAt) > s.ttl {
		s.Delete(id)
		return storedTimetable{}, false
	}
	return item, true
}

func (s *resultStore) Delete(id string) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}
