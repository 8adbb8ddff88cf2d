package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-eval-api/internal/dto"
	"github.com/noah-isme/teacher-eval-api/internal/models"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
	"github.com/noah-isme/teacher-eval-api/pkg/response"
)

type batchSubmitter interface {
	SubmitRatings(ctx context.Context, entries []models.RatingEntry) ([]models.Rating, error)
}

// RatingHandler accepts raw rating batches.
type RatingHandler struct {
	ratings batchSubmitter
}

// NewRatingHandler constructs the handler.
func NewRatingHandler(ratings batchSubmitter) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

// SubmitBatch godoc
// @Summary Submit a batch of ratings
// @Description All entries are stored together or not at all.
// @Tags Ratings
// @Accept json
// @Produce json
// @Param payload body dto.RatingBatchRequest true "Ratings"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /ratings [post]
func (h *RatingHandler) SubmitBatch(c *gin.Context) {
	var req dto.RatingBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid ratings payload"))
		return
	}
	stored, err := h.ratings.SubmitRatings(c.Request.Context(), req.Ratings)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, stored, map[string]interface{}{"count": len(stored)})
}
