package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-eval-api/internal/dto"
	"github.com/noah-isme/teacher-eval-api/internal/service"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
	"github.com/noah-isme/teacher-eval-api/pkg/response"
)

type leaderboardService interface {
	ClassLeaderboard(ctx context.Context, className string) (*dto.ClassLeaderboardResponse, bool, error)
}

type totalsService interface {
	Yearly(ctx context.Context, q dto.TotalsQuery) (*dto.TotalsResponse, bool, error)
	Export(ctx context.Context, q dto.TotalsQuery, format string) (*service.ExportFile, error)
}

// AdminHandler serves the administrator statistics views.
type AdminHandler struct {
	leaderboards leaderboardService
	totals       totalsService
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(leaderboards leaderboardService, totals totalsService) *AdminHandler {
	return &AdminHandler{leaderboards: leaderboards, totals: totals}
}

// ClassLeaderboard godoc
// @Summary Class leaderboard
// @Description Teachers of a class ranked by average score over the rolling window. Teachers without ratings are listed last.
// @Tags Admin
// @Produce json
// @Param className path string true "Class name"
// @Success 200 {object} response.Envelope
// @Router /admin/classes/{className}/ratings [get]
func (h *AdminHandler) ClassLeaderboard(c *gin.Context) {
	if h.leaderboards == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	board, cacheHit, err := h.leaderboards.ClassLeaderboard(c.Request.Context(), c.Param("className"))
	if requestDone(c) {
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, board, cachedMeta(c, start, cacheHit))
}

// Totals godoc
// @Summary Yearly totals grid
// @Description Per-teacher monthly averages and vote counts for a year, with a weighted yearly total.
// @Tags Admin
// @Produce json
// @Param year query int false "Year (defaults to the current year)"
// @Param month query string false "all or a zero-based month (defaults to the current month)"
// @Param search query string false "Teacher name filter"
// @Param lang query string false "Display language (uz, ru, en)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/totals [get]
func (h *AdminHandler) Totals(c *gin.Context) {
	if h.totals == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	query, err := totalsQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	grid, cacheHit, err := h.totals.Yearly(c.Request.Context(), query)
	if requestDone(c) {
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grid, cachedMeta(c, start, cacheHit))
}

// Export godoc
// @Summary Export the yearly totals grid
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv, pdf or xlsx" default(csv)
// @Param year query int false "Year"
// @Param month query string false "all or a zero-based month"
// @Param search query string false "Teacher name filter"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /admin/totals/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	if h.totals == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	query, err := totalsQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.totals.Export(c.Request.Context(), query, c.DefaultQuery("format", "csv"))
	if requestDone(c) {
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

func totalsQuery(c *gin.Context) (dto.TotalsQuery, error) {
	q := dto.TotalsQuery{
		Month:    c.Query("month"),
		Search:   c.Query("search"),
		Language: requestLanguage(c),
	}
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return q, appErrors.Clone(appErrors.ErrValidation, "year must be a number")
		}
		q.Year = year
	}
	return q, nil
}
