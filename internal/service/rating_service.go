package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/teacher-eval-api/internal/models"
	"github.com/noah-isme/teacher-eval-api/internal/stats"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
)

const defaultRecencyWindow = 30 * 24 * time.Hour

type ratingStore interface {
	ListSince(ctx context.Context, since time.Time) ([]models.Rating, error)
	ListByClassSince(ctx context.Context, className string, since time.Time) ([]models.Rating, error)
	ListByTeacherSince(ctx context.Context, teacherID string, since time.Time) ([]models.Rating, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]models.Rating, error)
	ListDetailsByTeacher(ctx context.Context, teacherID string, since time.Time) ([]models.RatingDetail, error)
	InsertBatch(ctx context.Context, entries []models.RatingEntry) ([]models.Rating, error)
}

// RatingServiceParams groups constructor dependencies.
type RatingServiceParams struct {
	Store         ratingStore
	Validator     *validator.Validate
	Cache         *CacheService
	Metrics       *MetricsService
	Logger        *zap.Logger
	RecencyWindow time.Duration
}

// RatingService reads rating windows and stores submissions. Reads degrade to
// empty slices on store failure; submissions surface ErrSubmissionFailed.
type RatingService struct {
	store     ratingStore
	validator *validator.Validate
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
	window    time.Duration
	now       func() time.Time
}

// NewRatingService constructs a RatingService.
func NewRatingService(params RatingServiceParams) *RatingService {
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	window := params.RecencyWindow
	if window <= 0 {
		window = defaultRecencyWindow
	}
	return &RatingService{
		store:     params.Store,
		validator: validate,
		cache:     params.Cache,
		metrics:   params.Metrics,
		logger:    logger,
		window:    window,
		now:       time.Now,
	}
}

// WindowStart returns the lower bound of the rolling leaderboard window.
func (s *RatingService) WindowStart() time.Time {
	return s.now().Add(-s.window).UTC()
}

// RecentRatings returns every rating inside the rolling window, newest first.
func (s *RatingService) RecentRatings(ctx context.Context) []models.Rating {
	ratings, err := s.store.ListSince(ctx, s.WindowStart())
	return s.degrade("fetch ratings", ratings, err)
}

// RatingsByClass returns the window's ratings submitted from className.
func (s *RatingService) RatingsByClass(ctx context.Context, className string) []models.Rating {
	ratings, err := s.store.ListByClassSince(ctx, className, s.WindowStart())
	return s.degrade("fetch class ratings", ratings, err, zap.String("class", className))
}

// TeacherRatings returns the window's ratings for one teacher.
func (s *RatingService) TeacherRatings(ctx context.Context, teacherID string) []models.Rating {
	ratings, err := s.store.ListByTeacherSince(ctx, teacherID, s.WindowStart())
	return s.degrade("fetch teacher ratings", ratings, err, zap.String("teacher_id", teacherID))
}

// TeacherRatingDetails returns the window's ratings for a teacher joined with the teacher's name.
func (s *RatingService) TeacherRatingDetails(ctx context.Context, teacherID string) []models.RatingDetail {
	details, err := s.store.ListDetailsByTeacher(ctx, teacherID, s.WindowStart())
	if err != nil {
		s.logger.Error("fetch rating details failed", zap.String("teacher_id", teacherID), zap.Error(err))
		return []models.RatingDetail{}
	}
	if details == nil {
		return []models.RatingDetail{}
	}
	return details
}

// TeacherAverage returns the window average for a teacher and false when there is no data.
func (s *RatingService) TeacherAverage(ctx context.Context, teacherID string) (float64, bool) {
	return stats.Average(s.TeacherRatings(ctx, teacherID))
}

// TeacherRatingCount returns how many ratings a teacher received inside the window.
func (s *RatingService) TeacherRatingCount(ctx context.Context, teacherID string) int {
	return len(s.TeacherRatings(ctx, teacherID))
}

// TeacherSummary aggregates one teacher's window ratings.
func (s *RatingService) TeacherSummary(ctx context.Context, teacher models.Teacher) models.TeacherStats {
	byID := stats.ComputeTeacherStats(s.TeacherRatings(ctx, teacher.ID), []models.Teacher{teacher})
	return byID[teacher.ID]
}

// YearBounds returns the UTC calendar range queried for a yearly grid.
func YearBounds(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return from, to
}

// YearRatings returns all ratings of the calendar year.
func (s *RatingService) YearRatings(ctx context.Context, year int) []models.Rating {
	from, to := YearBounds(year)
	ratings, err := s.store.ListBetween(ctx, from, to)
	return s.degrade("fetch year ratings", ratings, err, zap.Int("year", year))
}

// SubmitRating stores a single rating.
func (s *RatingService) SubmitRating(ctx context.Context, entry models.RatingEntry) (*models.Rating, error) {
	stored, err := s.SubmitRatings(ctx, []models.RatingEntry{entry})
	if err != nil {
		return nil, err
	}
	return &stored[0], nil
}

// SubmitRatings validates and stores entries as one all-or-nothing batch. No
// idempotency key is used, so a retried batch may be stored twice.
func (s *RatingService) SubmitRatings(ctx context.Context, entries []models.RatingEntry) ([]models.Rating, error) {
	if len(entries) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "at least one rating is required")
	}
	normalized := make([]models.RatingEntry, len(entries))
	for i, entry := range entries {
		entry = normalizeEntry(entry)
		if err := s.validator.Struct(entry); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid rating at position %d", i))
		}
		normalized[i] = entry
	}

	stored, err := s.store.InsertBatch(ctx, normalized)
	if err != nil {
		s.metrics.RecordSubmission(len(normalized), false)
		s.logger.Error("submit ratings failed", zap.Int("count", len(normalized)), zap.Error(err))
		return nil, appErrors.WrapAs(appErrors.ErrSubmissionFailed, err, "")
	}
	s.metrics.RecordSubmission(len(stored), true)

	if err := s.cache.InvalidateStats(ctx); err != nil {
		s.logger.Warn("stats cache not invalidated after submission", zap.Error(err))
	}
	s.logger.Info("ratings stored", zap.Int("count", len(stored)), zap.String("class", normalized[0].ClassName))
	return stored, nil
}

func normalizeEntry(entry models.RatingEntry) models.RatingEntry {
	entry.TeacherID = strings.TrimSpace(entry.TeacherID)
	entry.ClassName = strings.TrimSpace(entry.ClassName)
	entry.StudentName = trimmedOrNil(entry.StudentName)
	if entry.Comment != nil && strings.TrimSpace(*entry.Comment) == "" {
		entry.Comment = nil
	}
	return entry
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *RatingService) degrade(op string, ratings []models.Rating, err error, fields ...zap.Field) []models.Rating {
	if err != nil {
		s.logger.Error(op+" failed", append(fields, zap.Error(err))...)
		return []models.Rating{}
	}
	if ratings == nil {
		return []models.Rating{}
	}
	return ratings
}
