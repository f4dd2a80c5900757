package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "University Scheduler API",
        "description": "Greedy heuristic timetable generation for university courses",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Timetable", "description": "Timetable generation, retrieval and export"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/timetable/generate": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Generate a university timetable",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateTimetableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing required field or invalid document", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/timetable/{id}": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Re-fetch a generated timetable",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Result not found or expired", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/timetable/{id}/export": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Export a generated timetable",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Rendered document"},
                    "404": {"description": "Result not found or expired", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "TimeWindow": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "start_time": {"type": "string", "example": "09:00"},
                "end_time": {"type": "string", "example": "10:30"}
            },
            "required": ["day", "start_time", "end_time"]
        },
        "DayHours": {
            "type": "object",
            "properties": {
                "start": {"type": "string", "example": "08:00"},
                "end": {"type": "string", "example": "18:00"}
            },
            "required": ["start", "end"]
        },
        "GenerateTimetableRequest": {
            "type": "object",
            "properties": {
                "halls": {"type": "array", "items": {"type": "string"}},
                "school_days": {"type": "array", "items": {"type": "string"}},
                "departments": {"type": "array", "items": {"type": "string"}},
                "professors": {"type": "array", "items": {"type": "string"}},
                "courses": {"type": "array", "items": {"type": "string"}},
                "level_courses": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "department_courses": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "days_with_hours": {"type": "object", "additionalProperties": {"$ref": "#/definitions/DayHours"}},
                "course_sections_count": {"type": "object", "additionalProperties": {"type": "integer"}},
                "professor_specialties": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "professor_preferred_courses": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "professor_preferred_times": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/TimeWindow"}}},
                "course_preferred_times": {"type": "object", "additionalProperties": {"type": "string", "enum": ["early", "middle", "late"]}},
                "restricted_times": {"type": "array", "items": {"$ref": "#/definitions/TimeWindow"}},
                "course_lecture_durations": {"type": "object", "additionalProperties": {"type": "integer"}}
            },
            "required": ["halls", "school_days", "departments", "professors", "courses", "level_courses", "department_courses", "days_with_hours", "course_sections_count"]
        },
        "TimetableSection": {
            "type": "object",
            "properties": {
                "course_id": {"type": "string"},
                "section_number": {"type": "integer"},
                "professor_id": {"type": "string"},
                "hall_id": {"type": "string"},
                "day": {"type": "string"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"}
            }
        },
        "CourseShortfall": {
            "type": "object",
            "properties": {
                "course_id": {"type": "string"},
                "requested": {"type": "integer"},
                "scheduled": {"type": "integer"}
            }
        },
        "TimetableStats": {
            "type": "object",
            "properties": {
                "courses_requested": {"type": "integer"},
                "sections_requested": {"type": "integer"},
                "sections_placed": {"type": "integer"},
                "under_provisioned": {"type": "array", "items": {"$ref": "#/definitions/CourseShortfall"}},
                "consolidation_moves": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/TimetableSection"}},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
