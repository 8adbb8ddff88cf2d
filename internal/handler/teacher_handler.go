package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-eval-api/internal/dto"
	"github.com/noah-isme/teacher-eval-api/internal/models"
	"github.com/noah-isme/teacher-eval-api/internal/stats"
	"github.com/noah-isme/teacher-eval-api/pkg/response"
)

type teacherLookup interface {
	Teacher(ctx context.Context, id string) (*models.Teacher, error)
}

type teacherRatingReader interface {
	TeacherRatingDetails(ctx context.Context, teacherID string) []models.RatingDetail
	TeacherSummary(ctx context.Context, teacher models.Teacher) models.TeacherStats
	WindowStart() time.Time
}

// TeacherHandler serves per-teacher rating views.
type TeacherHandler struct {
	teachers teacherLookup
	ratings  teacherRatingReader
}

// NewTeacherHandler constructs a new TeacherHandler.
func NewTeacherHandler(teachers teacherLookup, ratings teacherRatingReader) *TeacherHandler {
	return &TeacherHandler{teachers: teachers, ratings: ratings}
}

// Ratings godoc
// @Summary List a teacher's recent ratings
// @Description Ratings inside the rolling window, newest first, joined with the teacher name.
// @Tags Teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id}/ratings [get]
func (h *TeacherHandler) Ratings(c *gin.Context) {
	teacher, err := h.teachers.Teacher(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	details := h.ratings.TeacherRatingDetails(c.Request.Context(), teacher.ID)
	if requestDone(c) {
		return
	}
	response.JSON(c, http.StatusOK, details, map[string]interface{}{
		"count": len(details),
		"since": h.ratings.WindowStart(),
	})
}

// Summary godoc
// @Summary Teacher rating summary
// @Tags Teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/{id}/summary [get]
func (h *TeacherHandler) Summary(c *gin.Context) {
	teacher, err := h.teachers.Teacher(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	st := h.ratings.TeacherSummary(c.Request.Context(), *teacher)
	if requestDone(c) {
		return
	}
	avg, ok := 0.0, st.Average != nil
	if ok {
		avg = *st.Average
	}
	response.JSON(c, http.StatusOK, dto.TeacherSummaryResponse{
		TeacherID: teacher.ID,
		Name:      teacher.Name,
		Subject:   teacher.Subject,
		Average:   st.Average,
		Display:   stats.FormatAverage(avg, ok),
		Tier:      stats.ScoreTier(avg, ok),
		Count:     st.Count,
		HasData:   ok,
		Comments:  len(st.Comments),
	})
}
