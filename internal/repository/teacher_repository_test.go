package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

type recordingObserver struct {
	labels []string
}

func (o *recordingObserver) ObserveDBQuery(label string, _ time.Duration) {
	o.labels = append(o.labels, label)
}

func TestTeacherRepositoryListTeachers(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	observer := &recordingObserver{}
	repo := NewTeacherRepository(db, WithQueryObserver(observer), WithQueryTimeout(time.Second))

	rows := sqlmock.NewRows([]string{"id", "name", "subject"}).
		AddRow("t1", "Aziza Karimova", "Mathematics").
		AddRow("t2", "Bobur Aliyev", "Physics")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, subject FROM teachers ORDER BY name ASC")).
		WillReturnRows(rows)

	teachers, err := repo.ListTeachers(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "Aziza Karimova", teachers[0].Name)
	assert.Equal(t, "Physics", teachers[1].Subject)
	assert.Equal(t, []string{"teachers.list"}, observer.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryListTeachersError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM teachers")).WillReturnError(errors.New("boom"))

	_, err := repo.ListTeachers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list teachers")
}

func TestTeacherRepositoryFindTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, subject FROM teachers WHERE id = $1")).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "subject"}).AddRow("t1", "Aziza Karimova", "Mathematics"))

	teacher, err := repo.FindTeacher(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", teacher.ID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, subject FROM teachers WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "subject"}))

	_, err = repo.FindTeacher(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
