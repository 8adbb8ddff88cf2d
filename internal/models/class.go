package models

// ClassTeacher is one class-to-teacher association.
type ClassTeacher struct {
	ClassName string `json:"className"`
	TeacherID string `json:"teacherId"`
}
