package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-eval-api/internal/dto"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
	"github.com/noah-isme/teacher-eval-api/pkg/response"
)

type voteService interface {
	Form(ctx context.Context, className, lang string) dto.VoteFormResponse
	Submit(ctx context.Context, req dto.VoteRequest, lang string) (*dto.VoteResponse, error)
}

// VoteHandler serves the student voting form.
type VoteHandler struct {
	votes voteService
}

// NewVoteHandler constructs the handler.
func NewVoteHandler(votes voteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Form godoc
// @Summary Voting form model
// @Description Lists classes and, when a class is selected, its teachers with the minimum number of ratings required.
// @Tags Vote
// @Produce json
// @Param classCode path string false "Pre-selected class"
// @Param class query string false "Selected class"
// @Param lang query string false "Display language (uz, ru, en)"
// @Success 200 {object} response.Envelope
// @Router /vote [get]
// @Router /vote/{classCode} [get]
func (h *VoteHandler) Form(c *gin.Context) {
	className := c.Param("classCode")
	if strings.TrimSpace(className) == "" {
		className = c.Query("class")
	}
	lang := requestLanguage(c)
	form := h.votes.Form(c.Request.Context(), className, lang)
	if requestDone(c) {
		return
	}
	response.JSON(c, http.StatusOK, form, map[string]interface{}{"language": lang})
}

// Submit godoc
// @Summary Submit a vote
// @Description Stores one rating per rated teacher. At least half of the class teachers must be rated.
// @Tags Vote
// @Accept json
// @Produce json
// @Param payload body dto.VoteRequest true "Vote payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /vote [post]
func (h *VoteHandler) Submit(c *gin.Context) {
	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid vote payload"))
		return
	}
	resp, err := h.votes.Submit(c.Request.Context(), req, requestLanguage(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}
