package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/teacher-eval-api/internal/models"
)

var ratingCols = []string{"id", "teacher_id", "student_name", "class_name", "score", "comment", "created_at"}

func TestRatingRepositoryListByClassSince(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRatingRepository(db)

	since := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, time.April, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(ratingCols).
		AddRow("r1", "t1", "Ali", "7A", 5, "great", created).
		AddRow("r2", "t2", nil, "7A", 3, nil, created.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM ratings WHERE class_name = $1 AND created_at >= $2 ORDER BY created_at DESC")).
		WithArgs("7A", since).
		WillReturnRows(rows)

	ratings, err := repo.ListByClassSince(context.Background(), "7A", since)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	require.NotNil(t, ratings[0].Comment)
	assert.Equal(t, "great", *ratings[0].Comment)
	assert.Equal(t, "Ali", *ratings[0].StudentName)
	assert.Equal(t, created, ratings[0].Timestamp)
	assert.Nil(t, ratings[1].Comment)
	assert.Nil(t, ratings[1].StudentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepositoryListBetween(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRatingRepository(db)

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM ratings WHERE created_at >= $1 AND created_at <= $2")).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(ratingCols))

	ratings, err := repo.ListBetween(context.Background(), from, to)
	require.NoError(t, err)
	assert.NotNil(t, ratings)
	assert.Empty(t, ratings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepositoryListSinceError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRatingRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ratings WHERE created_at >= $1")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListSince(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list ratings")
}

func TestRatingRepositoryListDetailsByTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRatingRepository(db)

	since := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(append(append([]string{}, ratingCols...), "teacher_name")).
		AddRow("r1", "t1", nil, "7A", 4, "clear", since.Add(time.Hour), "Aziza Karimova")
	mock.ExpectQuery(regexp.QuoteMeta("JOIN teachers t ON t.id = r.teacher_id WHERE r.teacher_id = $1 AND r.created_at >= $2")).
		WithArgs("t1", since).
		WillReturnRows(rows)

	details, err := repo.ListDetailsByTeacher(context.Background(), "t1", since)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Aziza Karimova", details[0].TeacherName)
	assert.Equal(t, 4, details[0].Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepositoryInsertBatch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRatingRepository(db)

	name := "Ali"
	comment := "thanks"
	entries := []models.RatingEntry{
		{TeacherID: "t1", ClassName: "7A", Score: 5, StudentName: &name, Comment: &comment},
		{TeacherID: "t2", ClassName: "7A", Score: 3, StudentName: &name},
	}
	first := time.Date(2024, time.May, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ratings (id, teacher_id, student_name, class_name, score, comment) VALUES ($1, $2, $3, $4, $5, $6), ($7, $8, $9, $10, $11, $12) RETURNING created_at")).
		WithArgs(sqlmock.AnyArg(), "t1", "Ali", "7A", 5, "thanks", sqlmock.AnyArg(), "t2", "Ali", "7A", 3, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(first).AddRow(first))
	mock.ExpectCommit()

	stored, err := repo.InsertBatch(context.Background(), entries)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.NotEmpty(t, stored[0].ID)
	assert.NotEqual(t, stored[0].ID, stored[1].ID)
	assert.Equal(t, first, stored[1].Timestamp)
	assert.Equal(t, "t2", stored[1].TeacherID)
	assert.Nil(t, stored[1].Comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepositoryInsertBatchRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRatingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ratings")).
		WillReturnError(errors.New("violates foreign key constraint"))
	mock.ExpectRollback()

	stored, err := repo.InsertBatch(context.Background(), []models.RatingEntry{{TeacherID: "ghost", ClassName: "7A", Score: 4}})
	require.Error(t, err)
	assert.Nil(t, stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepositoryInsertBatchEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRatingRepository(db)

	stored, err := repo.InsertBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}
