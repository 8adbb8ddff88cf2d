package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/teacher-eval-api/internal/dto"
	"github.com/noah-isme/teacher-eval-api/internal/models"
	"github.com/noah-isme/teacher-eval-api/internal/stats"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
	"github.com/noah-isme/teacher-eval-api/pkg/export"
)

// MonthAll selects every month of the year in a totals query.
const MonthAll = "all"

const (
	minYear = 2000
	maxYear = 2100
)

type yearRatingReader interface {
	YearRatings(ctx context.Context, year int) []models.Rating
}

type assignmentReader interface {
	TeachersByClassMap(ctx context.Context) models.TeachersByClass
}

// Translator resolves display strings. *i18n.Catalog implements it.
type Translator interface {
	T(lang, key string, params ...string) string
	Months(lang string) []string
	Normalize(lang string) string
}

// TotalsServiceParams groups constructor dependencies.
type TotalsServiceParams struct {
	Ratings    yearRatingReader
	Directory  assignmentReader
	Translator Translator
	Cache      *CacheService
	Metrics    *MetricsService
	Logger     *zap.Logger
	Location   *time.Location
	CacheTTL   time.Duration
}

// TotalsService builds the yearly per-teacher, per-month grid and its exports.
type TotalsService struct {
	ratings    yearRatingReader
	directory  assignmentReader
	translator Translator
	cache      *CacheService
	metrics    *MetricsService
	logger     *zap.Logger
	loc        *time.Location
	ttl        time.Duration
	now        func() time.Time
}

// ExportFile is a rendered totals download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// NewTotalsService constructs a TotalsService.
func NewTotalsService(params TotalsServiceParams) *TotalsService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loc := params.Location
	if loc == nil {
		loc = time.Local
	}
	return &TotalsService{
		ratings:    params.Ratings,
		directory:  params.Directory,
		translator: params.Translator,
		cache:      params.Cache,
		metrics:    params.Metrics,
		logger:     logger,
		loc:        loc,
		ttl:        params.CacheTTL,
		now:        time.Now,
	}
}

// Normalize fills defaults (current year and month) and validates q.
func (s *TotalsService) Normalize(q dto.TotalsQuery) (dto.TotalsQuery, error) {
	now := s.now().In(s.loc)
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Year < minYear || q.Year > maxYear {
		return q, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("year must be between %d and %d", minYear, maxYear))
	}
	q.Month = strings.ToLower(strings.TrimSpace(q.Month))
	switch q.Month {
	case "":
		q.Month = strconv.Itoa(int(now.Month()) - 1)
	case MonthAll:
	default:
		m, err := strconv.Atoi(q.Month)
		if err != nil || m < 0 || m > 11 {
			return q, appErrors.Clone(appErrors.ErrValidation, "month must be \"all\" or 0-11")
		}
		q.Month = strconv.Itoa(m)
	}
	q.Search = strings.TrimSpace(q.Search)
	q.Language = s.translator.Normalize(q.Language)
	return q, nil
}

// Yearly returns the totals grid for q. The second result reports a cache hit.
func (s *TotalsService) Yearly(ctx context.Context, q dto.TotalsQuery) (*dto.TotalsResponse, bool, error) {
	q, err := s.Normalize(q)
	if err != nil {
		return nil, false, err
	}

	cacheKey := StatsKey("totals", strconv.Itoa(q.Year), q.Month, q.Language, strings.ToLower(q.Search))
	if cached, hit := s.tryCache(ctx, cacheKey); hit {
		return cached, true, nil
	}

	start := time.Now()
	var (
		ratings []models.Rating
		byClass models.TeachersByClass
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ratings = s.ratings.YearRatings(gctx, q.Year)
		return gctx.Err()
	})
	g.Go(func() error {
		byClass = s.directory.TeachersByClassMap(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	monthly := stats.ComputeMonthlyStats(ratings, byClass, q.Year, s.loc)
	names := stats.FilterNames(stats.UniqueTeacherNames(byClass), q.Search)
	months := selectedMonths(q.Month)

	monthNames := s.translator.Months(q.Language)
	resp := &dto.TotalsResponse{
		Year:        q.Year,
		Month:       q.Month,
		Search:      q.Search,
		Language:    q.Language,
		Months:      make([]dto.MonthLabel, 0, len(months)),
		Rows:        make([]dto.TotalsRow, 0, len(names)),
		Labels:      s.labels(q.Language),
		GeneratedAt: s.now().UTC(),
	}
	for _, m := range months {
		resp.Months = append(resp.Months, dto.MonthLabel{Index: m, Label: monthNames[m]})
	}
	for _, name := range names {
		buckets := monthly[name]
		row := dto.TotalsRow{Teacher: name, Cells: make([]dto.TotalsCell, 0, len(months))}
		for _, m := range months {
			row.Cells = append(row.Cells, totalsCell(m, buckets[m]))
		}
		row.Yearly = totalsCell(-1, stats.YearTotal(buckets))
		resp.Rows = append(resp.Rows, row)
	}

	s.metrics.ObserveAggregation("totals", time.Since(start))
	s.persistCache(ctx, cacheKey, resp)
	return resp, false, nil
}

// Export renders the grid for q in the requested format.
func (s *TotalsService) Export(ctx context.Context, q dto.TotalsQuery, format string) (*ExportFile, error) {
	renderer, err := export.RendererFor(export.Format(strings.ToLower(strings.TrimSpace(format))))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be csv, pdf or xlsx")
	}
	grid, _, err := s.Yearly(ctx, q)
	if err != nil {
		return nil, err
	}

	payload, err := renderer.Render(s.dataset(grid))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render totals export")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("teacher-totals-%d-%s.%s", grid.Year, grid.Month, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Payload:     payload,
	}, nil
}

func (s *TotalsService) dataset(grid *dto.TotalsResponse) export.Dataset {
	labels := grid.Labels
	title := fmt.Sprintf("%s %d", labels["admin_totals_title"], grid.Year)
	headers := []string{labels["table_teacher"]}
	if grid.Month == MonthAll {
		for _, m := range grid.Months {
			headers = append(headers, m.Label)
		}
	} else if len(grid.Months) == 1 {
		title = fmt.Sprintf("%s, %s", title, grid.Months[0].Label)
		headers = append(headers, grid.Months[0].Label+" "+labels["table_avg_score"], labels["table_vote_count"])
	}
	headers = append(headers, labels["table_yearly_total"])

	rows := make([][]string, 0, len(grid.Rows))
	for _, r := range grid.Rows {
		row := []string{r.Teacher}
		if grid.Month == MonthAll {
			for _, c := range r.Cells {
				row = append(row, c.Display)
			}
		} else {
			for _, c := range r.Cells {
				row = append(row, c.Display, strconv.Itoa(c.Count))
			}
		}
		row = append(row, r.Yearly.Display)
		rows = append(rows, row)
	}
	return export.Dataset{Title: title, Headers: headers, Rows: rows}
}

func (s *TotalsService) labels(lang string) map[string]string {
	keys := []string{
		"admin_totals_title", "all_months", "select_month", "search_teacher",
		"table_teacher", "table_avg_score", "table_vote_count", "table_yearly_total",
		"no_search_results", "footer_info",
	}
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[key] = s.translator.T(lang, key)
	}
	return out
}

func selectedMonths(month string) []int {
	if month == MonthAll {
		out := make([]int, 12)
		for i := range out {
			out[i] = i
		}
		return out
	}
	m, _ := strconv.Atoi(month)
	return []int{m}
}

func totalsCell(month int, bucket models.MonthBucket) dto.TotalsCell {
	avg, ok := bucket.Average()
	cell := dto.TotalsCell{
		Month:   month,
		Sum:     bucket.Sum,
		Count:   bucket.Count,
		Display: stats.FormatAverage(avg, ok),
		Tier:    stats.ScoreTier(avg, ok),
	}
	if ok {
		cell.Average = &avg
	}
	return cell
}

func (s *TotalsService) tryCache(ctx context.Context, key string) (*dto.TotalsResponse, bool) {
	if !s.cache.Enabled() {
		return nil, false
	}
	var cached dto.TotalsResponse
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil || !hit {
		return nil, false
	}
	return &cached, true
}

func (s *TotalsService) persistCache(ctx context.Context, key string, value interface{}) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("totals cache write failed", zap.String("key", key), zap.Error(err))
	}
}
