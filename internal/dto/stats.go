package dto

import "time"

// ClassLeaderboardResponse ranks the teachers of one class over the recency window.
type ClassLeaderboardResponse struct {
	ClassName   string             `json:"className"`
	Since       time.Time          `json:"since"`
	Entries     []LeaderboardEntry `json:"entries"`
	GeneratedAt time.Time          `json:"generatedAt"`
}

// LeaderboardEntry is one ranked teacher row. Average is null when the teacher
// has no ratings in the window; Display then holds "-".
type LeaderboardEntry struct {
	Rank      int           `json:"rank"`
	TeacherID string        `json:"teacherId"`
	Name      string        `json:"name"`
	Subject   string        `json:"subject"`
	Average   *float64      `json:"average"`
	Display   string        `json:"display"`
	Tier      string        `json:"tier"`
	Count     int           `json:"count"`
	Comments  []CommentView `json:"comments"`
}

// CommentView is a rating that carried feedback text.
type CommentView struct {
	RatingID    string    `json:"ratingId"`
	StudentName *string   `json:"studentName,omitempty"`
	Score       int       `json:"score"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
}

// TeacherSummaryResponse summarises one teacher over the recency window.
type TeacherSummaryResponse struct {
	TeacherID string   `json:"teacherId"`
	Name      string   `json:"name"`
	Subject   string   `json:"subject"`
	Average   *float64 `json:"average"`
	Display   string   `json:"display"`
	Tier      string   `json:"tier"`
	Count     int      `json:"count"`
	HasData   bool     `json:"hasData"`
	Comments  int      `json:"comments"`
}

// TotalsQuery selects a yearly grid. Month is "all" or a zero-based month index.
type TotalsQuery struct {
	Year     int
	Month    string
	Search   string
	Language string
}

// MonthLabel pairs a month index with its translated name.
type MonthLabel struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// TotalsCell is the aggregate of one month or, when Month is -1, the whole year.
type TotalsCell struct {
	Month   int      `json:"month"`
	Sum     int      `json:"sum"`
	Count   int      `json:"count"`
	Average *float64 `json:"average"`
	Display string   `json:"display"`
	Tier    string   `json:"tier"`
}

// TotalsRow is one teacher's line of the grid.
type TotalsRow struct {
	Teacher string       `json:"teacher"`
	Cells   []TotalsCell `json:"cells"`
	Yearly  TotalsCell   `json:"yearly"`
}

// TotalsResponse is the yearly totals grid.
type TotalsResponse struct {
	Year        int               `json:"year"`
	Month       string            `json:"month"`
	Search      string            `json:"search,omitempty"`
	Language    string            `json:"language"`
	Months      []MonthLabel      `json:"months"`
	Rows        []TotalsRow       `json:"rows"`
	Labels      map[string]string `json:"labels"`
	GeneratedAt time.Time         `json:"generatedAt"`
}
