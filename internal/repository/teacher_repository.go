package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/teacher-eval-api/internal/models"
)

// TeacherRepository reads the teachers table.
type TeacherRepository struct {
	store
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB, opts ...Option) *TeacherRepository {
	return &TeacherRepository{store: newStore(db, opts)}
}

// ListTeachers returns every teacher ordered by name.
func (r *TeacherRepository) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	ctx, done := r.begin(ctx, "teachers.list")
	defer done()

	const query = `SELECT id, name, subject FROM teachers ORDER BY name ASC`
	var rows []teacherRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	teachers := make([]models.Teacher, 0, len(rows))
	for _, row := range rows {
		teachers = append(teachers, toTeacher(row))
	}
	return teachers, nil
}

// FindTeacher fetches a teacher by ID. It returns sql.ErrNoRows when absent.
func (r *TeacherRepository) FindTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	ctx, done := r.begin(ctx, "teachers.find")
	defer done()

	const query = `SELECT id, name, subject FROM teachers WHERE id = $1`
	var row teacherRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	teacher := toTeacher(row)
	return &teacher, nil
}
