package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/teacher-eval-api/internal/models"
)

// ClassRepository reads classes and their teacher associations.
type ClassRepository struct {
	store
}

// NewClassRepository creates a new repository.
func NewClassRepository(db *sqlx.DB, opts ...Option) *ClassRepository {
	return &ClassRepository{store: newStore(db, opts)}
}

// ListClassNames returns class names as stored, ordered by name.
func (r *ClassRepository) ListClassNames(ctx context.Context) ([]string, error) {
	ctx, done := r.begin(ctx, "classes.list")
	defer done()

	const query = `SELECT name FROM classes ORDER BY name ASC`
	var names []string
	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return names, nil
}

// ListClassTeachers resolves the teachers of a class ordered by name. Associations
// pointing at missing teachers are dropped by the inner join.
func (r *ClassRepository) ListClassTeachers(ctx context.Context, className string) ([]models.Teacher, error) {
	ctx, done := r.begin(ctx, "class_teachers.by_class")
	defer done()

	const query = `
SELECT t.id, t.name, t.subject
FROM class_teachers ct
JOIN teachers t ON t.id = ct.teacher_id
WHERE ct.class_name = $1
ORDER BY t.name ASC`
	var rows []teacherRow
	if err := r.db.SelectContext(ctx, &rows, query, className); err != nil {
		return nil, fmt.Errorf("list class teachers: %w", err)
	}
	teachers := make([]models.Teacher, 0, len(rows))
	for _, row := range rows {
		teachers = append(teachers, toTeacher(row))
	}
	return teachers, nil
}

// ListAssignments returns the full class -> teachers directory.
func (r *ClassRepository) ListAssignments(ctx context.Context) (models.TeachersByClass, error) {
	ctx, done := r.begin(ctx, "class_teachers.all")
	defer done()

	const query = `
SELECT ct.class_name, t.id, t.name, t.subject
FROM class_teachers ct
JOIN teachers t ON t.id = ct.teacher_id
ORDER BY ct.class_name ASC, t.name ASC`
	var rows []classTeacherRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list class assignments: %w", err)
	}
	out := make(models.TeachersByClass)
	for _, row := range rows {
		className, teacher := toClassTeacher(row)
		out[className] = append(out[className], teacher)
	}
	return out, nil
}

// SQLDirectory serves directory reads from the teachers and class tables.
type SQLDirectory struct {
	*TeacherRepository
	*ClassRepository
}

// NewSQLDirectory wires both table repositories with the same options.
func NewSQLDirectory(db *sqlx.DB, opts ...Option) *SQLDirectory {
	return &SQLDirectory{
		TeacherRepository: NewTeacherRepository(db, opts...),
		ClassRepository:   NewClassRepository(db, opts...),
	}
}
