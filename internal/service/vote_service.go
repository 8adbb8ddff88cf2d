package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-eval-api/internal/dto"
	"github.com/noah-isme/teacher-eval-api/internal/models"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
)

const defaultMinRatedRatio = 0.5

type voteDirectory interface {
	Classes(ctx context.Context) []string
	TeachersByClass(ctx context.Context, className string) []models.Teacher
}

type ratingSubmitter interface {
	SubmitRatings(ctx context.Context, entries []models.RatingEntry) ([]models.Rating, error)
}

// VoteServiceParams groups constructor dependencies.
type VoteServiceParams struct {
	Directory     voteDirectory
	Ratings       ratingSubmitter
	Translator    Translator
	Validator     *validator.Validate
	Logger        *zap.Logger
	MinRatedRatio float64
}

// VoteService backs the student voting form.
type VoteService struct {
	directory  voteDirectory
	ratings    ratingSubmitter
	translator Translator
	validator  *validator.Validate
	logger     *zap.Logger
	ratio      float64
}

// NewVoteService constructs a VoteService.
func NewVoteService(params VoteServiceParams) *VoteService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ratio := params.MinRatedRatio
	if ratio <= 0 || ratio > 1 {
		ratio = defaultMinRatedRatio
	}
	return &VoteService{
		directory:  params.Directory,
		ratings:    params.Ratings,
		translator: params.Translator,
		validator:  validate,
		logger:     logger,
		ratio:      ratio,
	}
}

// RequiredCount is the minimum number of the n listed teachers a student must rate.
func (s *VoteService) RequiredCount(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) * s.ratio))
}

// Form returns the class list and, when className is set, its teachers.
func (s *VoteService) Form(ctx context.Context, className, lang string) dto.VoteFormResponse {
	className = strings.TrimSpace(className)
	form := dto.VoteFormResponse{
		Classes:       s.directory.Classes(ctx),
		SelectedClass: className,
		Teachers:      []models.Teacher{},
		Labels:        s.labels(lang),
	}
	if className != "" {
		form.Teachers = s.directory.TeachersByClass(ctx, className)
		form.RequiredCount = s.RequiredCount(len(form.Teachers))
	}
	return form
}

// Submit checks the vote rules and stores one rating per rated teacher.
func (s *VoteService) Submit(ctx context.Context, req dto.VoteRequest, lang string) (*dto.VoteResponse, error) {
	req.ClassName = strings.TrimSpace(req.ClassName)
	req.StudentName = strings.TrimSpace(req.StudentName)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid vote payload")
	}
	if req.StudentName == "" {
		return nil, appErrors.Clone(appErrors.ErrIncompleteVote, s.translator.T(lang, "error_name_required"))
	}

	teachers := s.directory.TeachersByClass(ctx, req.ClassName)
	if len(teachers) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, s.translator.T(lang, "no_teachers_assigned"))
	}
	listed := make(map[string]struct{}, len(teachers))
	for _, t := range teachers {
		listed[t.ID] = struct{}{}
	}
	for id, score := range req.Ratings {
		if _, ok := listed[id]; !ok && score > 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("teacher %s is not assigned to class %s", id, req.ClassName))
		}
	}

	name := req.StudentName
	entries := make([]models.RatingEntry, 0, len(teachers))
	for _, t := range teachers {
		score := req.Ratings[t.ID]
		if score <= 0 {
			continue
		}
		entry := models.RatingEntry{TeacherID: t.ID, ClassName: req.ClassName, Score: score, StudentName: &name}
		if text, ok := req.Comments[t.ID]; ok && strings.TrimSpace(text) != "" {
			comment := text
			entry.Comment = &comment
		}
		entries = append(entries, entry)
	}

	required := s.RequiredCount(len(teachers))
	if len(entries) < required || len(entries) == 0 {
		msg := s.translator.T(lang, "error_min_ratings", strconv.Itoa(required), strconv.Itoa(len(teachers)))
		return nil, appErrors.Clone(appErrors.ErrIncompleteVote, msg)
	}

	stored, err := s.ratings.SubmitRatings(ctx, entries)
	if err != nil {
		if errors.Is(err, appErrors.ErrSubmissionFailed) {
			return nil, appErrors.WrapAs(appErrors.ErrSubmissionFailed, err, s.translator.T(lang, "submission_failed"))
		}
		return nil, err
	}
	return &dto.VoteResponse{
		Stored:  len(stored),
		Title:   s.translator.T(lang, "success_title"),
		Message: s.translator.T(lang, "success_message"),
	}, nil
}

func (s *VoteService) labels(lang string) map[string]string {
	keys := []string{
		"system_name", "header_subtitle", "select_class",
		"step_1_label", "step_1_placeholder", "step_2_label", "step_2_placeholder", "step_3_label",
		"comment_placeholder", "submit_button", "submit_recommendation", "no_teachers_assigned",
	}
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[key] = s.translator.T(lang, key)
	}
	return out
}
