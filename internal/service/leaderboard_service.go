package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/teacher-eval-api/internal/dto"
	"github.com/noah-isme/teacher-eval-api/internal/models"
	"github.com/noah-isme/teacher-eval-api/internal/stats"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
)

type classRatingReader interface {
	RatingsByClass(ctx context.Context, className string) []models.Rating
	WindowStart() time.Time
}

type classTeacherReader interface {
	TeachersByClass(ctx context.Context, className string) []models.Teacher
}

// LeaderboardServiceParams groups constructor dependencies.
type LeaderboardServiceParams struct {
	Ratings  classRatingReader
	Teachers classTeacherReader
	Cache    *CacheService
	Metrics  *MetricsService
	Logger   *zap.Logger
	CacheTTL time.Duration
}

// LeaderboardService builds per-class rankings over the rolling window.
type LeaderboardService struct {
	ratings  classRatingReader
	teachers classTeacherReader
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
	ttl      time.Duration
	now      func() time.Time
}

// NewLeaderboardService constructs a LeaderboardService.
func NewLeaderboardService(params LeaderboardServiceParams) *LeaderboardService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaderboardService{
		ratings:  params.Ratings,
		teachers: params.Teachers,
		cache:    params.Cache,
		metrics:  params.Metrics,
		logger:   logger,
		ttl:      params.CacheTTL,
		now:      time.Now,
	}
}

// ClassLeaderboard ranks the teachers of className. The second result reports a
// cache hit. A class without teachers yields an empty ranking, and a cancelled
// ctx discards the result.
func (s *LeaderboardService) ClassLeaderboard(ctx context.Context, className string) (*dto.ClassLeaderboardResponse, bool, error) {
	className = strings.TrimSpace(className)
	if className == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "class name is required")
	}

	cacheKey := StatsKey("leaderboard", className)
	if cached, hit := s.tryCache(ctx, cacheKey); hit {
		return cached, true, nil
	}

	start := time.Now()
	var (
		ratings  []models.Rating
		teachers []models.Teacher
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ratings = s.ratings.RatingsByClass(gctx, className)
		return gctx.Err()
	})
	g.Go(func() error {
		teachers = s.teachers.TeachersByClass(gctx, className)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	resp := &dto.ClassLeaderboardResponse{
		ClassName:   className,
		Since:       s.ratings.WindowStart(),
		Entries:     buildLeaderboard(teachers, ratings),
		GeneratedAt: s.now().UTC(),
	}
	s.metrics.ObserveAggregation("leaderboard", time.Since(start))
	s.persistCache(ctx, cacheKey, resp)
	return resp, false, nil
}

func buildLeaderboard(teachers []models.Teacher, ratings []models.Rating) []dto.LeaderboardEntry {
	if len(teachers) == 0 {
		return []dto.LeaderboardEntry{}
	}
	ranked := stats.RankTeachers(teachers, stats.ComputeTeacherStats(ratings, teachers))
	entries := make([]dto.LeaderboardEntry, 0, len(ranked))
	for i, st := range ranked {
		avg, ok := 0.0, st.Average != nil
		if ok {
			avg = *st.Average
		}
		entries = append(entries, dto.LeaderboardEntry{
			Rank:      i + 1,
			TeacherID: st.ID,
			Name:      st.Name,
			Subject:   st.Subject,
			Average:   st.Average,
			Display:   stats.FormatAverage(avg, ok),
			Tier:      stats.ScoreTier(avg, ok),
			Count:     st.Count,
			Comments:  commentViews(st.Comments),
		})
	}
	return entries
}

func commentViews(ratings []models.Rating) []dto.CommentView {
	out := make([]dto.CommentView, 0, len(ratings))
	for _, r := range ratings {
		if !r.HasComment() {
			continue
		}
		out = append(out, dto.CommentView{
			RatingID:    r.ID,
			StudentName: r.StudentName,
			Score:       r.Score,
			Text:        *r.Comment,
			Timestamp:   r.Timestamp,
		})
	}
	return out
}

func (s *LeaderboardService) tryCache(ctx context.Context, key string) (*dto.ClassLeaderboardResponse, bool) {
	if !s.cache.Enabled() {
		return nil, false
	}
	var cached dto.ClassLeaderboardResponse
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil || !hit {
		return nil, false
	}
	return &cached, true
}

func (s *LeaderboardService) persistCache(ctx context.Context, key string, value interface{}) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("leaderboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
