package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/university-scheduler-api/internal/dto"
	"github.com/noah-isme/university-scheduler-api/internal/service"
	appErrors "github.com/noah-isme/university-scheduler-api/pkg/errors"
	"github.com/noah-isme/university-scheduler-api/pkg/response"
)

const (
	defaultMaxCourses = 512
)

type timetableGenerator interface {
	Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error)
	Get(ctx context.Context, id string) (*dto.GenerateTimetableResponse, error)
	Export(ctx context.Context, id, format string) ([]byte, string, error)
}

// TimetableHandler exposes the timetable generation endpoints.
type TimetableHandler struct {
	service    timetableGenerator
	maxCourses int
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(svc *service.TimetableService, maxCourses int) *TimetableHandler {
	if maxCourses <= 0 {
		maxCourses = defaultMaxCourses
	}
	return &TimetableHandler{service: svc, maxCourses: maxCourses}
}

// Generate godoc
// @Summary Generate a university timetable
// @Description Builds a timetable from the configuration document and returns the placed sections with a result id for re-fetch and export.
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.GenerateTimetableRequest true "Timetable configuration document"
// @Success 200 {object} response.Envelope
// @Router /timetable/generate [post]
func (h *TimetableHandler) Generate(c *gin.Context) {
	var req dto.GenerateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	if len(req.Courses) > h.maxCourses {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "courses exceeds supported limit"))
		return
	}
	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Sections, map[string]interface{}{
		"result_id": result.ResultID,
		"stats":     result.Stats,
	})
}

// Get godoc
// @Summary Re-fetch a generated timetable
// @Tags Timetable
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} response.Envelope
// @Router /timetable/{id} [get]
func (h *TimetableHandler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Sections, map[string]interface{}{
		"result_id": result.ResultID,
		"stats":     result.Stats,
	})
}

// Export godoc
// @Summary Export a generated timetable
// @Description Renders a stored timetable as CSV or PDF.
// @Tags Timetable
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Result ID"
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Router /timetable/{id}/export [get]
func (h *TimetableHandler) Export(c *gin.Context) {
	id := c.Param("id")
	format := c.DefaultQuery("format", "csv")
	out, contentType, err := h.service.Export(c.Request.Context(), id, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=timetable-%s.%s", id, format))
	c.Data(http.StatusOK, contentType, out)
}
