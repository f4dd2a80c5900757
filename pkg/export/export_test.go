package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sectionRow struct {
	Course string `csv:"course_id"`
	Day    string `csv:"day"`
	Start  string `csv:"start_time"`
}

func TestCSVExporterRender(t *testing.T) {
	rows := []sectionRow{
		{Course: "calculus", Day: "Monday", Start: "08:00"},
		{Course: "algebra", Day: "Tuesday", Start: "10:05"},
	}

	out, err := NewCSVExporter().Render(rows)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "course_id,day,start_time", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "calculus")
	assert.Contains(t, lines[2], "algebra")
}

func TestCSVExporterEmptySlice(t *testing.T) {
	out, err := NewCSVExporter().Render([]sectionRow{})

	require.NoError(t, err)
	assert.Equal(t, "course_id,day,start_time", strings.TrimSpace(string(out)))
}

func TestPDFExporterRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"course_id", "day", "start_time"},
		Rows: []map[string]string{
			{"course_id": "calculus", "day": "Monday", "start_time": "08:00"},
		},
	}

	out, err := NewPDFExporter().Render(data, "University Timetable")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	require.Error(t, err)
}
