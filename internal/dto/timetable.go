package dto

// TimeWindowPayload is a day-bound interval expressed with "HH:MM" clock strings.
type TimeWindowPayload struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// DayHoursPayload bounds the operating hours of one school day.
type DayHoursPayload struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// GenerateTimetableRequest is the full configuration document for one
// generation run. Required collections are checked for presence before
// validation so a missing field is reported by name; list order is meaningful
// and preserved all the way into the engine.
type GenerateTimetableRequest struct {
	Halls       []string `json:"halls" validate:"required,min=1,dive,required"`
	SchoolDays  []string `json:"school_days" validate:"required,min=1,dive,required"`
	Departments []string `json:"departments" validate:"required,dive,required"`
	Professors  []string `json:"professors" validate:"required,min=1,dive,required"`
	Courses     []string `json:"courses" validate:"required,min=1,dive,required"`

	LevelCourses        map[string][]string        `json:"level_courses" validate:"required"`
	DepartmentCourses   map[string][]string        `json:"department_courses" validate:"required"`
	DaysWithHours       map[string]DayHoursPayload `json:"days_with_hours" validate:"required,dive"`
	CourseSectionsCount map[string]int             `json:"course_sections_count" validate:"required,dive,min=1"`

	ProfessorSpecialties      map[string][]string            `json:"professor_specialties"`
	ProfessorPreferredCourses map[string][]string            `json:"professor_preferred_courses"`
	ProfessorPreferredTimes   map[string][]TimeWindowPayload `json:"professor_preferred_times" validate:"omitempty,dive,dive"`
	CoursePreferredTimes      map[string]string              `json:"course_preferred_times" validate:"omitempty,dive,oneof=early middle late"`
	RestrictedTimes           []TimeWindowPayload            `json:"restricted_times" validate:"omitempty,dive"`
	CourseLectureDurations    map[string]int                 `json:"course_lecture_durations" validate:"omitempty,dive,min=1"`
}

// TimetableSectionRecord is one placed section, serialized for JSON responses
// and CSV export alike.
type TimetableSectionRecord struct {
	CourseID      string `json:"course_id" csv:"course_id"`
	SectionNumber int    `json:"section_number" csv:"section_number"`
	ProfessorID   string `json:"professor_id" csv:"professor_id"`
	HallID        string `json:"hall_id" csv:"hall_id"`
	Day           string `json:"day" csv:"day"`
	StartTime     string `json:"start_time" csv:"start_time"`
	EndTime       string `json:"end_time" csv:"end_time"`
}

// CourseShortfall reports a course that received fewer sections than requested.
type CourseShortfall struct {
	CourseID  string `json:"course_id"`
	Requested int    `json:"requested"`
	Scheduled int    `json:"scheduled"`
}

// TimetableStats summarises one generation run.
type TimetableStats struct {
	CoursesRequested   int               `json:"courses_requested"`
	SectionsRequested  int               `json:"sections_requested"`
	SectionsPlaced     int               `json:"sections_placed"`
	UnderProvisioned   []CourseShortfall `json:"under_provisioned"`
	ConsolidationMoves int               `json:"consolidation_moves"`
}

// GenerateTimetableResponse returns the built timetable with its result id.
type GenerateTimetableResponse struct {
	ResultID string                   `json:"result_id"`
	Sections []TimetableSectionRecord `json:"sections"`
	Stats    TimetableStats           `json:"stats"`
}
