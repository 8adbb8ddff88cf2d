package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/teacher-eval-api/internal/models"
)

const ratingColumns = `id, teacher_id, student_name, class_name, score, comment, created_at`

// RatingRepository reads and appends ratings. Rows are never updated or deleted.
type RatingRepository struct {
	store
}

// NewRatingRepository constructs a RatingRepository.
func NewRatingRepository(db *sqlx.DB, opts ...Option) *RatingRepository {
	return &RatingRepository{store: newStore(db, opts)}
}

// ListSince returns ratings created at or after since, newest first.
func (r *RatingRepository) ListSince(ctx context.Context, since time.Time) ([]models.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE created_at >= $1 ORDER BY created_at DESC`
	return r.selectRatings(ctx, "ratings.since", query, since)
}

// ListByClassSince returns the ratings submitted from className since the given time.
func (r *RatingRepository) ListByClassSince(ctx context.Context, className string, since time.Time) ([]models.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE class_name = $1 AND created_at >= $2 ORDER BY created_at DESC`
	return r.selectRatings(ctx, "ratings.by_class", query, className, since)
}

// ListByTeacherSince returns one teacher's ratings since the given time.
func (r *RatingRepository) ListByTeacherSince(ctx context.Context, teacherID string, since time.Time) ([]models.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE teacher_id = $1 AND created_at >= $2 ORDER BY created_at DESC`
	return r.selectRatings(ctx, "ratings.by_teacher", query, teacherID, since)
}

// ListBetween returns ratings with from <= created_at <= to.
func (r *RatingRepository) ListBetween(ctx context.Context, from, to time.Time) ([]models.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at DESC`
	return r.selectRatings(ctx, "ratings.between", query, from, to)
}

// ListDetailsByTeacher joins each rating with the teacher's name.
func (r *RatingRepository) ListDetailsByTeacher(ctx context.Context, teacherID string, since time.Time) ([]models.RatingDetail, error) {
	ctx, done := r.begin(ctx, "ratings.details_by_teacher")
	defer done()

	const query = `
SELECT r.id, r.teacher_id, r.student_name, r.class_name, r.score, r.comment, r.created_at, t.name AS teacher_name
FROM ratings r
JOIN teachers t ON t.id = r.teacher_id
WHERE r.teacher_id = $1 AND r.created_at >= $2
ORDER BY r.created_at DESC`
	var rows []ratingDetailRow
	if err := r.db.SelectContext(ctx, &rows, query, teacherID, since); err != nil {
		return nil, fmt.Errorf("list rating details: %w", err)
	}
	details := make([]models.RatingDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, toRatingDetail(row))
	}
	return details, nil
}

func (r *RatingRepository) selectRatings(ctx context.Context, label, query string, args ...interface{}) ([]models.Rating, error) {
	ctx, done := r.begin(ctx, label)
	defer done()

	var rows []ratingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	ratings := make([]models.Rating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, toRating(row))
	}
	return ratings, nil
}

// InsertBatch writes entries in one statement inside a transaction, so either
// every rating is stored or none is. created_at comes from the database.
func (r *RatingRepository) InsertBatch(ctx context.Context, entries []models.RatingEntry) (stored []models.Rating, err error) {
	if len(entries) == 0 {
		return []models.Rating{}, nil
	}
	ctx, done := r.begin(ctx, "ratings.insert_batch")
	defer done()

	stored = make([]models.Rating, len(entries))
	values := make([]string, 0, len(entries))
	args := make([]interface{}, 0, len(entries)*6)
	for i, entry := range entries {
		id := uuid.NewString()
		stored[i] = models.Rating{
			ID:          id,
			TeacherID:   entry.TeacherID,
			StudentName: entry.StudentName,
			ClassName:   entry.ClassName,
			Score:       entry.Score,
			Comment:     entry.Comment,
		}
		n := len(args)
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5, n+6))
		args = append(args, id, entry.TeacherID, nullString(entry.StudentName), entry.ClassName, entry.Score, nullString(entry.Comment))
	}
	query := `INSERT INTO ratings (id, teacher_id, student_name, class_name, score, comment) VALUES ` +
		strings.Join(values, ", ") + ` RETURNING created_at`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin rating batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// RETURNING yields rows in VALUES order for a single INSERT.
	var createdAt []time.Time
	if err = tx.SelectContext(ctx, &createdAt, query, args...); err != nil {
		return nil, fmt.Errorf("insert ratings: %w", err)
	}
	if len(createdAt) != len(entries) {
		err = fmt.Errorf("insert ratings: stored %d of %d rows", len(createdAt), len(entries))
		return nil, err
	}
	for i := range stored {
		stored[i].Timestamp = createdAt[i]
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit rating batch: %w", err)
	}
	return stored, nil
}
