package models

import "time"

// Rating is one student's score for one teacher. Timestamp is assigned by the store.
type Rating struct {
	ID          string    `json:"id"`
	TeacherID   string    `json:"teacherId"`
	StudentName *string   `json:"studentName,omitempty"`
	ClassName   string    `json:"className"`
	Score       int       `json:"score"`
	Comment     *string   `json:"comment,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// HasComment reports whether the rating carries non-blank feedback.
func (r Rating) HasComment() bool {
	return r.Comment != nil && *r.Comment != ""
}

// RatingDetail is a rating joined with its teacher's display name.
type RatingDetail struct {
	Rating
	TeacherName string `json:"teacherName"`
}

// RatingEntry is one element of a batch submission.
type RatingEntry struct {
	TeacherID   string  `json:"teacherId" validate:"required,max=100"`
	ClassName   string  `json:"className" validate:"required,max=50"`
	Score       int     `json:"score" validate:"min=1,max=5"`
	StudentName *string `json:"studentName,omitempty" validate:"omitempty,max=200"`
	Comment     *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}
