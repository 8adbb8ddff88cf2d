package dto

import "github.com/noah-isme/teacher-eval-api/internal/models"

// VoteFormResponse is everything the voting form needs to render. Teachers is
// empty until a class is chosen.
type VoteFormResponse struct {
	Classes       []string          `json:"classes"`
	SelectedClass string            `json:"selectedClass,omitempty"`
	Teachers      []models.Teacher  `json:"teachers"`
	RequiredCount int               `json:"requiredCount"`
	Labels        map[string]string `json:"labels"`
}

// VoteRequest is a student's submission. Ratings and Comments are keyed by teacher id;
// a zero score means the teacher was skipped.
type VoteRequest struct {
	ClassName   string            `json:"className" validate:"required,max=50"`
	StudentName string            `json:"studentName" validate:"max=200"`
	Ratings     map[string]int    `json:"ratings" validate:"dive,min=0,max=5"`
	Comments    map[string]string `json:"comments" validate:"dive,max=2000"`
}

// VoteResponse acknowledges a stored vote.
type VoteResponse struct {
	Stored  int    `json:"stored"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// RatingBatchRequest is the raw batch submission payload.
type RatingBatchRequest struct {
	Ratings []models.RatingEntry `json:"ratings"`
}

// LanguagePreference reports or sets the display language.
type LanguagePreference struct {
	Language  string   `json:"language" validate:"required"`
	Available []string `json:"available,omitempty"`
}
