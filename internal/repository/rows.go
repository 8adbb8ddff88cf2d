package repository

import (
	"database/sql"
	"time"

	"github.com/noah-isme/teacher-eval-api/internal/models"
)

// Storage naming stays in this file: snake_case rows and one translation per entity.

type teacherRow struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Subject string `db:"subject"`
}

func toTeacher(row teacherRow) models.Teacher {
	return models.Teacher{ID: row.ID, Name: row.Name, Subject: row.Subject}
}

type classTeacherRow struct {
	ClassName string `db:"class_name"`
	ID        string `db:"id"`
	Name      string `db:"name"`
	Subject   string `db:"subject"`
}

func toClassTeacher(row classTeacherRow) (string, models.Teacher) {
	return row.ClassName, models.Teacher{ID: row.ID, Name: row.Name, Subject: row.Subject}
}

type ratingRow struct {
	ID          string         `db:"id"`
	TeacherID   string         `db:"teacher_id"`
	StudentName sql.NullString `db:"student_name"`
	ClassName   string         `db:"class_name"`
	Score       int            `db:"score"`
	Comment     sql.NullString `db:"comment"`
	CreatedAt   time.Time      `db:"created_at"`
}

func toRating(row ratingRow) models.Rating {
	return models.Rating{
		ID:          row.ID,
		TeacherID:   row.TeacherID,
		StudentName: nullableString(row.StudentName),
		ClassName:   row.ClassName,
		Score:       row.Score,
		Comment:     nullableString(row.Comment),
		Timestamp:   row.CreatedAt,
	}
}

type ratingDetailRow struct {
	ID          string         `db:"id"`
	TeacherID   string         `db:"teacher_id"`
	StudentName sql.NullString `db:"student_name"`
	ClassName   string         `db:"class_name"`
	Score       int            `db:"score"`
	Comment     sql.NullString `db:"comment"`
	CreatedAt   time.Time      `db:"created_at"`
	TeacherName string         `db:"teacher_name"`
}

func toRatingDetail(row ratingDetailRow) models.RatingDetail {
	return models.RatingDetail{
		Rating: toRating(ratingRow{
			ID:          row.ID,
			TeacherID:   row.TeacherID,
			StudentName: row.StudentName,
			ClassName:   row.ClassName,
			Score:       row.Score,
			Comment:     row.Comment,
			CreatedAt:   row.CreatedAt,
		}),
		TeacherName: row.TeacherName,
	}
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
